package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyBackTab, "BackTab"},
		{KeyPageDown, "PageDown"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyClassification(t *testing.T) {
	if KeyRune.IsSpecial() || KeyNone.IsSpecial() {
		t.Error("KeyRune/KeyNone should not be special")
	}
	if !KeyEscape.IsSpecial() || !KeyF5.IsSpecial() {
		t.Error("KeyEscape/KeyF5 should be special")
	}

	for k := KeyF1; k <= KeyF12; k++ {
		if !k.IsFunction() {
			t.Errorf("%v.IsFunction() = false", k)
		}
	}
	if KeyEscape.IsFunction() {
		t.Error("KeyEscape.IsFunction() = true")
	}

	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		if !k.IsArrow() {
			t.Errorf("%v.IsArrow() = false", k)
		}
	}
	if KeyHome.IsArrow() {
		t.Error("KeyHome.IsArrow() = true")
	}
}
