package execs_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osintkit/attest/pkg/execs"
)

func TestNewCommand(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args     []string
		expected string
		wantErr  bool
	}{
		"command only": {
			args:     []string{"sherlock"},
			expected: "sherlock",
		},
		"command with args": {
			args:     []string{"sherlock", "--timeout", "10", "someuser"},
			expected: "sherlock --timeout 10 someuser",
		},
		"empty args": {
			args:    nil,
			wantErr: true,
		},
		"empty command": {
			args:    []string{""},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cmd, err := execs.NewCommand(tc.args)
			if tc.wantErr {
				require.ErrorIs(t, err, execs.ErrEmptyCommand)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, cmd.String())
		})
	}
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		expected execs.Command
		wantErr  bool
	}{
		"plain": {
			input:    "sherlock someuser",
			expected: execs.Command{Command: "sherlock", Args: []string{"someuser"}},
		},
		"quoted argument": {
			input:    `sherlock "user name"`,
			expected: execs.Command{Command: "sherlock", Args: []string{"user name"}},
		},
		"empty": {
			input:   "",
			wantErr: true,
		},
		"unbalanced quote": {
			input:   `sherlock "user`,
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cmd, err := execs.ParseCommand(tc.input)
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, cmd)
		})
	}
}

func TestExecutorExec(t *testing.T) {
	t.Parallel()

	cmd, err := execs.NewCommand([]string{"echo", "hello"})
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer

	e := execs.NewExecutor(cmd, execs.WithStdio(strings.NewReader(""), &stdout, &stderr))

	require.NoError(t, e.Exec(t.Context(), t.TempDir()))
	assert.Equal(t, "hello\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestExecutorExecFailure(t *testing.T) {
	t.Parallel()

	cmd, err := execs.NewCommand([]string{"false"})
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer

	e := execs.NewExecutor(cmd, execs.WithStdio(strings.NewReader(""), &stdout, &stderr))

	execErr := e.Exec(t.Context(), t.TempDir())
	require.ErrorIs(t, execErr, execs.ErrCommandExecution)
}

func TestExecutorEmptyCommand(t *testing.T) {
	t.Parallel()

	e := execs.NewExecutor(execs.Command{})

	require.ErrorIs(t, e.Exec(t.Context(), "."), execs.ErrEmptyCommand)
}
