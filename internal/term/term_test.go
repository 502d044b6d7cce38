package term

import "testing"

func TestDisableRawModeIsIdempotent(t *testing.T) {
	// Nothing enabled raw mode, so disabling must be a no-op.
	if err := DisableRawMode(); err != nil {
		t.Errorf("DisableRawMode() = %v, want nil when raw mode is off", err)
	}
	if IsRawModeEnabled() {
		t.Error("IsRawModeEnabled() = true without an enable")
	}
}

func TestPassthroughSwitcher(t *testing.T) {
	var p Passthrough

	if !p.IsRawModeEnabled() {
		t.Error("Passthrough.IsRawModeEnabled() = false, want true")
	}
	if err := p.EnableRawMode(); err != nil {
		t.Errorf("Passthrough.EnableRawMode() = %v", err)
	}
	if err := p.DisableRawMode(); err != nil {
		t.Errorf("Passthrough.DisableRawMode() = %v", err)
	}
	// Toggling a passthrough never changes the process-wide state.
	if IsRawModeEnabled() {
		t.Error("Passthrough toggles leaked into process state")
	}
}

func TestOutputFlushes(t *testing.T) {
	out := Output()
	if out == nil {
		t.Fatal("Output() = nil")
	}
	if _, err := out.Write(nil); err != nil {
		t.Errorf("Write(nil) = %v", err)
	}
}

func TestSizeHasSaneDefaults(t *testing.T) {
	w, h := Size()
	if w <= 0 || h <= 0 {
		t.Errorf("Size() = %dx%d, want positive dimensions", w, h)
	}
}
