package ui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osintkit/attest/pkg/keys"
	"github.com/osintkit/attest/pkg/ui"
	"github.com/osintkit/attest/pkg/uitest"
)

func TestConfigEnsureDefaults(t *testing.T) {
	t.Parallel()

	c := &ui.Config{}
	c.EnsureDefaults()

	require.NotNil(t, c.KeyBinds)
	require.NotNil(t, c.MinimumDelay)
	assert.Equal(t, 500*time.Millisecond, *c.MinimumDelay)
	assert.Equal(t, "auto", c.Theme)

	require.NotNil(t, c.KeyBinds.Quit)
	assert.True(t, c.KeyBinds.Quit.Match("q"))
	assert.True(t, c.KeyBinds.Quit.Match("ctrl+c"))
	assert.True(t, c.KeyBinds.Variant.Match("v"))
	assert.True(t, c.KeyBinds.Reload.Match("r"))
	assert.True(t, c.KeyBinds.Copy.Match("c"))
	assert.True(t, c.KeyBinds.Help.Match("?"))
}

func TestConfigEnsureDefaultsKeepsOverrides(t *testing.T) {
	t.Parallel()

	c := &ui.Config{
		KeyBinds: &ui.KeyBinds{
			Quit: uitest.Ptr(keys.NewBind("quit", keys.New("x"))),
		},
		Theme: "dark",
	}
	c.EnsureDefaults()

	assert.True(t, c.KeyBinds.Quit.Match("x"))
	assert.False(t, c.KeyBinds.Quit.Match("q"))
	assert.Equal(t, "dark", c.Theme)

	// Unset binds still get defaults.
	require.NotNil(t, c.KeyBinds.Reload)
	assert.True(t, c.KeyBinds.Reload.Match("r"))
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	c := ui.NewConfig()
	require.NoError(t, c.Validate())

	c = &ui.Config{
		KeyBinds: &ui.KeyBinds{
			Quit: uitest.Ptr(keys.NewBind("quit", keys.New("q"))),
			Help: uitest.Ptr(keys.NewBind("help", keys.New("q"))),
		},
	}
	c.EnsureDefaults()
	require.Error(t, c.Validate())
}
