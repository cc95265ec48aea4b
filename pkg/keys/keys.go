// Package keys provides configurable key bindings for the TUI.
package keys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
)

// Key represents a keyboard key with optional alias and visibility settings.
type Key struct {
	// Code is the key code identifier.
	Code string `json:"code" jsonschema:"title=Code"`
	// Alias is an alternative display name for the key.
	Alias string `json:"alias,omitempty" jsonschema:"title=Alias"`
	// Hidden determines if the key should be hidden from display.
	Hidden bool `json:"hidden,omitempty" jsonschema:"title=Hidden"`
}

type KeyOpt func(k *Key)

func New(code string, opts ...KeyOpt) Key {
	k := &Key{
		Code: code,
	}
	for _, opt := range opts {
		opt(k)
	}

	return *k
}

func WithAlias(alias string) KeyOpt {
	return func(k *Key) {
		k.Alias = alias
	}
}

func Hidden() KeyOpt {
	return func(k *Key) {
		k.Hidden = true
	}
}

func (k Key) String() string {
	if k.Alias != "" {
		return k.Alias
	}

	return k.Code
}

// KeyBind represents a key binding with its description and associated keys.
type KeyBind struct {
	// Description provides a description of what the key binding does.
	Description string `json:"description" jsonschema:"title=Description"`
	// Keys contains the list of keys that trigger this binding.
	Keys []Key `json:"keys" jsonschema:"title=Keys"`
}

func NewBind(description string, keys ...Key) KeyBind {
	return KeyBind{
		Description: description,
		Keys:        keys,
	}
}

func (kb *KeyBind) String() string {
	keys := []string{}
	for _, k := range kb.Keys {
		if k.Hidden {
			continue
		}

		keys = append(keys, k.String())
	}

	return strings.Join(keys, "/")
}

// Match checks if the key matches any of the keys in the binding.
func (kb *KeyBind) Match(key string) bool {
	if kb == nil {
		return false
	}

	for _, k := range kb.Keys {
		if k.Code == key {
			return true
		}
	}

	return false
}

func (kb *KeyBind) AddKey(key Key) {
	if kb == nil {
		return
	}

	for _, k := range kb.Keys {
		if k.Code == key.Code {
			return // Key already bound.
		}
	}

	kb.Keys = append(kb.Keys, key)
}

// InlineHelp renders binds as a single help line, truncated to width.
// Binds with no visible keys are skipped.
func InlineHelp(width int, kbs ...KeyBind) string {
	parts := []string{}

	for _, kb := range kbs {
		keys := kb.String()
		if keys == "" {
			continue
		}

		parts = append(parts, fmt.Sprintf("%s %s", keys, kb.Description))
	}

	line := strings.Join(parts, " • ")
	if width > 0 && ansi.PrintableRuneWidth(line) > width {
		line = truncateLine(line, width)
	}

	return line
}

// ValidateBinds reports an error for every key code bound more than once
// across the provided bind sets.
func ValidateBinds(kbs ...[]KeyBind) error {
	var errs []error

	seen := make(map[string]bool)
	for _, ks := range kbs {
		for _, kb := range ks {
			for _, key := range kb.Keys {
				if seen[key.Code] {
					errs = append(errs, fmt.Errorf("duplicate key binding found: %s", key.Code))
				}

				seen[key.Code] = true
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// SetDefaultBind fills in kb from defaultKb where it is nil or incomplete.
func SetDefaultBind(kb **KeyBind, defaultKb KeyBind) {
	if *kb == nil {
		*kb = &defaultKb

		return
	}

	if len((*kb).Keys) == 0 {
		(*kb).Keys = defaultKb.Keys
	}

	if (*kb).Description == "" {
		(*kb).Description = defaultKb.Description
	}
}

func truncateLine(s string, maxWidth int) string {
	const ellipsis = "…"

	if maxWidth <= 1 {
		return ellipsis
	}

	truncated := strings.Builder{}
	currentWidth := 0

	for _, r := range s {
		runeWidth := ansi.PrintableRuneWidth(string(r))
		if currentWidth+runeWidth > maxWidth-1 {
			break
		}

		truncated.WriteRune(r)
		currentWidth += runeWidth
	}

	return truncated.String() + ellipsis
}
