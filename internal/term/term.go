package term

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	xterm "golang.org/x/term"
)

var (
	mu sync.Mutex

	// saved holds the pre-raw terminal state while raw mode is active.
	// nil means raw mode is off (or was never enabled by this process).
	saved *xterm.State
)

func stdinFd() int {
	return int(os.Stdin.Fd())
}

// EnableRawMode switches the controlling terminal into raw mode. It is
// idempotent: enabling an already-raw terminal is a no-op.
func EnableRawMode() error {
	mu.Lock()
	defer mu.Unlock()

	if saved != nil {
		return nil
	}
	state, err := xterm.MakeRaw(stdinFd())
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	saved = state
	return nil
}

// DisableRawMode restores the terminal state captured by EnableRawMode. It is
// idempotent: disabling a terminal this process never made raw is a no-op.
func DisableRawMode() error {
	mu.Lock()
	defer mu.Unlock()

	if saved == nil {
		return nil
	}
	if err := xterm.Restore(stdinFd(), saved); err != nil {
		return fmt.Errorf("disable raw mode: %w", err)
	}
	saved = nil
	return nil
}

// IsRawModeEnabled reports whether this process has the terminal in raw mode.
func IsRawModeEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return saved != nil
}

// Output returns a flushable writer over stdout for emitting terminal control
// requests.
func Output() *bufio.Writer {
	return bufio.NewWriter(os.Stdout)
}

// Switcher adapts the package-level raw-mode functions to components that
// accept a mode-switching collaborator.
type Switcher struct{}

// IsRawModeEnabled reports the process-wide raw-mode state.
func (Switcher) IsRawModeEnabled() bool { return IsRawModeEnabled() }

// EnableRawMode enables process-wide raw mode.
func (Switcher) EnableRawMode() error { return EnableRawMode() }

// DisableRawMode disables process-wide raw mode.
func (Switcher) DisableRawMode() error { return DisableRawMode() }

// Passthrough is a mode switcher for hosts whose screen layer already owns
// the terminal modes (a tcell screen, for example). It reports raw mode as
// active and toggles nothing.
type Passthrough struct{}

// IsRawModeEnabled always reports true.
func (Passthrough) IsRawModeEnabled() bool { return true }

// EnableRawMode is a no-op.
func (Passthrough) EnableRawMode() error { return nil }

// DisableRawMode is a no-op.
func (Passthrough) DisableRawMode() error { return nil }
