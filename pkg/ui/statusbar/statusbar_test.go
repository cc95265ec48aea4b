package statusbar_test

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osintkit/attest/pkg/ui/statusbar"
	"github.com/osintkit/attest/pkg/ui/themes"
)

func TestNewRenderer(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		width    int
		expected int
	}{
		"positive width": {
			width:    80,
			expected: 80,
		},
		"zero width": {
			width:    0,
			expected: 30,
		},
		"negative width": {
			width:    -10,
			expected: 30,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			renderer := statusbar.NewRenderer(themes.DefaultTheme, tc.width)
			require.NotNil(t, renderer)

			bar := renderer.Render("test", "")
			assert.Equal(t, tc.expected, ansi.StringWidth(bar))
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		checkFunc func(*testing.T, string)
		opts      []statusbar.RendererOpt
		msg       string
		rightNote string
		width     int
	}{
		"normal state": {
			width:     100,
			msg:       "config.yaml",
			rightNote: "default",
			checkFunc: func(t *testing.T, result string) {
				t.Helper()

				plain := ansi.Strip(result)
				assert.Contains(t, plain, "attest")
				assert.Contains(t, plain, "config.yaml")
				assert.Contains(t, plain, "default")
				assert.Contains(t, plain, "? Help")
			},
		},
		"status message state": {
			width:     100,
			msg:       "config.yaml",
			rightNote: "prominent",
			opts: []statusbar.RendererOpt{
				statusbar.WithMessage("Copied notice to clipboard", statusbar.StyleSuccess),
			},
			checkFunc: func(t *testing.T, result string) {
				t.Helper()

				plain := ansi.Strip(result)
				assert.Contains(t, plain, "Copied notice to clipboard")
				assert.NotContains(t, plain, "config.yaml")
			},
		},
		"error state": {
			width: 100,
			msg:   "config.yaml",
			opts: []statusbar.RendererOpt{
				statusbar.WithError("invalid config"),
			},
			checkFunc: func(t *testing.T, result string) {
				t.Helper()

				plain := ansi.Strip(result)
				assert.Contains(t, plain, "invalid config")
				assert.Contains(t, plain, "! Error")
			},
		},
		"long message truncated": {
			width: 40,
			msg:   "a very long message that cannot possibly fit in the status bar width",
			checkFunc: func(t *testing.T, result string) {
				t.Helper()

				assert.Equal(t, 40, ansi.StringWidth(result))
				assert.Contains(t, ansi.Strip(result), "…")
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			renderer := statusbar.NewRenderer(themes.DefaultTheme, tc.width, tc.opts...)
			tc.checkFunc(t, renderer.Render(tc.msg, tc.rightNote))
		})
	}
}
