package event

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/dshills/termstream/internal/input/key"
	"github.com/dshills/termstream/internal/input/mouse"
)

// Event is a single decoded terminal notification. Implementations are small
// value types with structural equality, so two events decoded from the same
// terminal reply compare equal.
type Event interface {
	// String returns a human-readable description for logs and the demo viewer.
	String() string

	// sealed limits the variant set to this package.
	sealed()
}

// KeyEvent is a key press.
type KeyEvent struct {
	key.Event
}

func (KeyEvent) sealed() {}

// MouseEvent is a mouse press, release, move, drag, or scroll.
type MouseEvent struct {
	mouse.Event
}

func (MouseEvent) sealed() {}

// ResizeEvent reports the new terminal dimensions in cells.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) sealed() {}

func (e ResizeEvent) String() string {
	return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
}

// PasteEvent carries the full text of one bracketed paste.
type PasteEvent struct {
	Text string
}

func (PasteEvent) sealed() {}

func (e PasteEvent) String() string {
	return fmt.Sprintf("paste %d cols", e.Columns())
}

// Columns returns the display width of the pasted text in terminal cells,
// counting grapheme clusters rather than bytes or runes.
func (e PasteEvent) Columns() int {
	return uniseg.StringWidth(e.Text)
}

// FocusEvent reports the terminal gaining or losing input focus.
type FocusEvent struct {
	Gained bool
}

func (FocusEvent) sealed() {}

func (e FocusEvent) String() string {
	if e.Gained {
		return "focus gained"
	}
	return "focus lost"
}

// CursorPositionEvent is the terminal's answer to a cursor-report request.
// Coordinates are zero-based with (0, 0) the top-left cell. These events are
// consumed by the cursor query protocol and hidden from FilterPublic.
type CursorPositionEvent struct {
	Col int
	Row int
}

func (CursorPositionEvent) sealed() {}

func (e CursorPositionEvent) String() string {
	return fmt.Sprintf("cursor at (%d, %d)", e.Col, e.Row)
}
