package gesture

import "strings"

// Button identifies the pointer button of a click.
type Button int

const (
	ButtonOther Button = iota
	ButtonPrimary
	ButtonSecondary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "left"
	case ButtonSecondary:
		return "right"
	}
	return "other"
}

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
	ModMeta

	ModNone Modifiers = 0
	modAll            = ModCtrl | ModShift | ModAlt | ModMeta
)

// Has reports whether every key in m is held.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

// Only reports whether exactly the keys in m are held and nothing else.
func (mods Modifiers) Only(m Modifiers) bool {
	return mods&modAll == m
}

// None reports whether no modifier is held.
func (mods Modifiers) None() bool {
	return mods&modAll == 0
}

func (mods Modifiers) String() string {
	if mods.None() {
		return "none"
	}
	var parts []string
	if mods.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if mods.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if mods.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if mods.Has(ModMeta) {
		parts = append(parts, "meta")
	}
	return strings.Join(parts, "+")
}

// AllModifiers returns the 16 combinations of ctrl, shift, alt and meta.
func AllModifiers() []Modifiers {
	combos := make([]Modifiers, 0, int(modAll)+1)
	for m := ModNone; m <= modAll; m++ {
		combos = append(combos, m)
	}
	return combos
}

// Event is a single click on a card.
type Event struct {
	Button    Button
	Modifiers Modifiers
}

func (e Event) String() string {
	return e.Button.String() + "[" + e.Modifiers.String() + "]"
}
