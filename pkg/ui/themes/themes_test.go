package themes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osintkit/attest/pkg/ui/themes"
)

func TestNewTheme(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		name string
	}{
		"github":        {name: "github"},
		"github dark":   {name: "github-dark"},
		"dark alias":    {name: "dark"},
		"light alias":   {name: "light"},
		"unknown style": {name: "does-not-exist"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			theme := themes.NewTheme(tc.name)
			require.NotNil(t, theme)
			require.NotNil(t, theme.ChromaStyle)
			assert.Equal(t, themes.Ellipsis, theme.Ellipsis)
		})
	}
}

func TestNoticeStylesDiffer(t *testing.T) {
	t.Parallel()

	theme := themes.NewTheme("github")

	assert.True(t, theme.NoticeHeadingStyle.GetBold())
	assert.True(t, theme.NoticeStatementStyle.GetBold())
	assert.False(t, theme.NoticeFinePrintStyle.GetBold())

	border := theme.NoticeBlockStyle.GetBorderStyle()
	assert.NotEmpty(t, border.Top)
}
