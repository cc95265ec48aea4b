package ui

import (
	"fmt"
	"time"

	"github.com/osintkit/attest/pkg/keys"
)

// Config contains TUI-specific configuration.
type Config struct {
	KeyBinds *KeyBinds `json:"keybinds,omitempty" jsonschema:"title=Key Bindings"`
	// MinimumDelay keeps the reload spinner visible long enough to read.
	MinimumDelay *time.Duration `json:"minimumDelay,omitempty" jsonschema:"title=Minimum Delay,type=string"`
	// Theme is a chroma style name, or auto/light/dark.
	Theme string `json:"theme,omitempty" jsonschema:"title=Theme"`
}

// NewConfig returns a fresh config with defaults applied. Callers may mutate
// the result freely.
func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.KeyBinds == nil {
		c.KeyBinds = &KeyBinds{}
	}

	c.KeyBinds.EnsureDefaults()

	if c.MinimumDelay == nil {
		defaultDelay := 500 * time.Millisecond
		c.MinimumDelay = &defaultDelay
	}

	if c.Theme == "" {
		c.Theme = "auto"
	}
}

func (c *Config) Validate() error {
	err := c.KeyBinds.Validate()
	if err != nil {
		return fmt.Errorf("validate key binds: %w", err)
	}

	return nil
}

type KeyBinds struct {
	Quit    *keys.KeyBind `json:"quit,omitempty"`
	Help    *keys.KeyBind `json:"help,omitempty"`
	Variant *keys.KeyBind `json:"variant,omitempty"`
	Reload  *keys.KeyBind `json:"reload,omitempty"`
	Copy    *keys.KeyBind `json:"copy,omitempty"`
}

func (kb *KeyBinds) EnsureDefaults() {
	keys.SetDefaultBind(&kb.Quit, keys.NewBind("quit", keys.New("q")))
	// Always ensure that ctrl+c is bound to quit.
	kb.Quit.AddKey(keys.New("ctrl+c", keys.WithAlias("⌃c"), keys.Hidden()))

	keys.SetDefaultBind(&kb.Help,
		keys.NewBind("toggle help",
			keys.New("?"),
		))
	keys.SetDefaultBind(&kb.Variant,
		keys.NewBind("toggle variant",
			keys.New("v"),
			keys.New("tab", keys.Hidden()),
		))
	keys.SetDefaultBind(&kb.Reload,
		keys.NewBind("reload",
			keys.New("r"),
		))
	keys.SetDefaultBind(&kb.Copy,
		keys.NewBind("copy notice",
			keys.New("c"),
		))
}

func (kb *KeyBinds) GetKeyBinds() []keys.KeyBind {
	return []keys.KeyBind{
		*kb.Quit,
		*kb.Help,
		*kb.Variant,
		*kb.Reload,
		*kb.Copy,
	}
}

func (kb *KeyBinds) Validate() error {
	return keys.ValidateBinds(kb.GetKeyBinds()) //nolint:wrapcheck // Already descriptive.
}
