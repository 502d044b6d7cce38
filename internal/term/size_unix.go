//go:build unix

package term

import "golang.org/x/sys/unix"

// Size returns the terminal dimensions in cells, defaulting to 80x24 when the
// size cannot be determined (not a tty, or the ioctl fails).
func Size() (width, height int) {
	ws, err := unix.IoctlGetWinsize(stdinFd(), unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}
