package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osintkit/attest/pkg/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		"error":            {input: "error", want: slog.LevelError},
		"warn":             {input: "warn", want: slog.LevelWarn},
		"warning alias":    {input: "warning", want: slog.LevelWarn},
		"info":             {input: "info", want: slog.LevelInfo},
		"debug":            {input: "debug", want: slog.LevelDebug},
		"case insensitive": {input: "DEBUG", want: slog.LevelDebug},
		"unknown":          {input: "loud", wantErr: true},
		"empty":            {input: "", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetLevel(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	got, err := log.GetFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, log.FormatJSON, got)

	_, err = log.GetFormat("xml")
	require.ErrorIs(t, err, log.ErrUnknownLogFormat)
}

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level   string
		format  string
		wantErr bool
	}{
		"json":           {level: "info", format: "json"},
		"logfmt":         {level: "debug", format: "logfmt"},
		"text":           {level: "warn", format: "text"},
		"invalid level":  {level: "loud", format: "json", wantErr: true},
		"invalid format": {level: "info", format: "xml", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, err := log.CreateHandlerWithStrings(&bytes.Buffer{}, tc.level, tc.format)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrInvalidArgument)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, h)
		})
	}
}

func TestHandlerWritesLogs(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}

	h, err := log.CreateHandlerWithStrings(buf, "info", "json")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("hello", slog.String("k", "v"))
	logger.Debug("filtered")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, `"k":"v"`)
	assert.NotContains(t, out, "filtered")
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	logger := log.WithContext(t.Context())
	require.NotNil(t, logger)
}
