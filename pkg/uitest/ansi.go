package uitest

import (
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

// SetupColorProfile sets the color profile to TrueColor for consistent test
// output. Call this at the start of tests that involve styled output.
func SetupColorProfile() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// StyleExpectation defines expected ANSI style attributes.
type StyleExpectation struct {
	Bold       *bool
	Foreground *string // Color code, e.g. "212" or "B45309".
	Background *string
}

// ANSIStyleVerifier inspects ANSI escape sequences in TUI output.
type ANSIStyleVerifier struct {
	output string
}

func NewANSIStyleVerifier(output string) *ANSIStyleVerifier {
	return &ANSIStyleVerifier{output: output}
}

// PlainText strips all ANSI sequences and returns plain text.
func (v *ANSIStyleVerifier) PlainText() string {
	return ansi.Strip(v.output)
}

// ContainsPlainText checks the ANSI-stripped output for the expected string.
func (v *ANSIStyleVerifier) ContainsPlainText(t *testing.T, expected string) {
	t.Helper()

	assert.Contains(t, v.PlainText(), expected, "plain text should contain %q", expected)
}

// ContainsStyledText verifies that text appears with the expected styling.
func (v *ANSIStyleVerifier) ContainsStyledText(t *testing.T, text string, expected StyleExpectation) {
	t.Helper()

	assert.Contains(t, v.PlainText(), text, "output should contain %q", text)

	for _, seg := range v.parseStyledSegments() {
		if !strings.Contains(seg.text, text) {
			continue
		}

		if expected.Bold != nil {
			assert.Equal(t, *expected.Bold, seg.style.bold,
				"text %q: bold mismatch", text)
		}
		if expected.Foreground != nil {
			assert.Equal(t, *expected.Foreground, seg.style.foreground,
				"text %q: foreground mismatch", text)
		}
		if expected.Background != nil {
			assert.Equal(t, *expected.Background, seg.style.background,
				"text %q: background mismatch", text)
		}

		return
	}

	t.Errorf("could not find styled segment containing %q", text)
}

type styledSegment struct {
	text  string
	style parsedStyle
}

type parsedStyle struct {
	foreground string
	background string
	bold       bool
}

func (v *ANSIStyleVerifier) parseStyledSegments() []styledSegment {
	var (
		segments     []styledSegment
		currentStyle parsedStyle
		currentText  strings.Builder
	)

	input := []byte(v.output)

	var state byte

	p := ansi.GetParser()
	defer ansi.PutParser(p)

	for len(input) > 0 {
		seq, width, n, newState := ansi.DecodeSequence(input, state, p)

		if ansi.HasCsiPrefix(seq) && len(seq) > 0 && seq[len(seq)-1] == 'm' {
			if currentText.Len() > 0 {
				segments = append(segments, styledSegment{
					text:  currentText.String(),
					style: currentStyle,
				})
				currentText.Reset()
			}

			currentStyle = parseSGR(p, currentStyle)
		} else if width > 0 {
			currentText.Write(seq)
		}

		input = input[n:]
		state = newState
	}

	if currentText.Len() > 0 {
		segments = append(segments, styledSegment{
			text:  currentText.String(),
			style: currentStyle,
		})
	}

	return segments
}

//nolint:cyclop // SGR dispatch is a flat switch.
func parseSGR(p *ansi.Parser, current parsedStyle) parsedStyle {
	style := current
	params := p.Params()

	for i := 0; i < len(params); i++ {
		param := params[i].Param(0)

		switch {
		case param == 0:
			style = parsedStyle{}
		case param == 1:
			style.bold = true
		case param == 22:
			style.bold = false
		case param == 38 || param == 48:
			color, consumed := parseColorParams(params[i+1:])
			if param == 38 {
				style.foreground = color
			} else {
				style.background = color
			}

			i += consumed
		case param >= 30 && param <= 37:
			style.foreground = strconv.Itoa(param - 30)
		case param >= 40 && param <= 47:
			style.background = strconv.Itoa(param - 40)
		case param >= 90 && param <= 97:
			style.foreground = strconv.Itoa(param - 90 + 8)
		case param >= 100 && param <= 107:
			style.background = strconv.Itoa(param - 100 + 8)
		}
	}

	return style
}

// parseColorParams reads the extended color form following SGR 38/48 and
// returns the color plus the number of params consumed.
func parseColorParams(params []ansi.Param) (string, int) {
	if len(params) == 0 {
		return "", 0
	}

	switch params[0].Param(0) {
	case 5: // 256 color.
		if len(params) >= 2 {
			return strconv.Itoa(params[1].Param(0)), 2
		}

	case 2: // RGB.
		if len(params) >= 4 {
			return formatRGB(
				params[1].Param(0),
				params[2].Param(0),
				params[3].Param(0),
			), 4
		}
	}

	return "", 0
}

func formatRGB(r, g, b int) string {
	const hex = "0123456789ABCDEF"

	out := make([]byte, 0, 6)
	for _, v := range []int{r, g, b} {
		out = append(out, hex[v/16], hex[v%16])
	}

	return string(out)
}

// Ptr is a helper to create a pointer, for optional [StyleExpectation] fields.
func Ptr[T any](v T) *T {
	return &v
}
