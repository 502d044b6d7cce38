package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press. It carries no timestamp so that two
// identically decoded presses compare equal.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier beyond plain Shift is pressed. For
// character events Shift is part of the character itself and does not count.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// String returns a canonical representation like "a", "Ctrl+s", or
// "Ctrl+Shift+Enter".
func (e Event) String() string {
	var parts []string

	if e.Modifiers.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if e.Modifiers.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if e.Modifiers.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	// Shift is only meaningful for special keys; for characters it is
	// already reflected in the rune.
	if e.Modifiers.Has(ModShift) && !e.IsRune() {
		parts = append(parts, "Shift")
	}

	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		parts = append(parts, "Space")
	case e.Key == KeyRune:
		parts = append(parts, string(e.Rune))
	default:
		parts = append(parts, e.Key.String())
	}

	return strings.Join(parts, "+")
}
