//go:build !unix

package term

// Size returns the terminal dimensions in cells. Platforms without the
// winsize ioctl report the conventional default.
func Size() (width, height int) {
	return 80, 24
}
