package cli

import (
	"bytes"
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/exp/charmtone"

	"github.com/osintkit/attest/pkg/config"
	"github.com/osintkit/attest/pkg/ui/themes"
	"github.com/osintkit/attest/pkg/yaml"
)

// Try to get the theme from the config, otherwise use the default color scheme.
func ColorSchemeFunc(c lipgloss.LightDarkFunc) fang.ColorScheme {
	return ThemeColorScheme(themes.NewTheme(configuredTheme()), c)
}

func ThemeColorScheme(t *themes.Theme, c lipgloss.LightDarkFunc) fang.ColorScheme {
	return fang.ColorScheme{
		Base:           t.GenericTextStyle.GetForeground(),
		Title:          t.LogoStyle.GetBackground(),
		Codeblock:      c(charmtone.Salt, lipgloss.Color("#2F2E36")),
		Program:        t.SelectedStyle.GetForeground(),
		Command:        t.SelectedStyle.GetForeground(),
		DimmedArgument: t.SubtleStyle.GetForeground(),
		Comment:        t.SubtleStyle.GetForeground(),
		Flag:           t.SelectedStyle.GetForeground(),
		Argument:       t.GenericTextStyle.GetForeground(),
		Description:    t.GenericTextStyle.GetForeground(),
		FlagDefault:    t.SelectedSubtleStyle.GetForeground(),
		QuotedString:   t.GenericTextStyle.GetForeground(),
		ErrorHeader: [2]color.Color{
			t.ErrorTitleStyle.GetForeground(),
			t.ErrorTitleStyle.GetBackground(),
		},
	}
}

// configuredTheme reads ui.theme from the config file, without requiring the
// rest of the config to load.
func configuredTheme() string {
	cl, err := config.NewConfigLoaderFromFile(config.GetPath())
	if err != nil {
		return ""
	}

	var themeName string

	path := yaml.NewPathBuilder().Root().Child("ui").Child("theme").Build()

	err = path.Read(bytes.NewReader(cl.Data()), &themeName)
	if err != nil {
		return ""
	}

	return themeName
}
