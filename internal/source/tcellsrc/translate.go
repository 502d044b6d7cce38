package tcellsrc

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termstream/internal/event"
	"github.com/dshills/termstream/internal/input/key"
	"github.com/dshills/termstream/internal/input/mouse"
)

// translate converts one tcell event into the event union. A nil result with
// a nil error means the event was consumed internally (paste fragments and
// markers). The waker's interrupt event surfaces as event.ErrInterrupted.
func (s *Source) translate(tev tcell.Event) (event.Event, error) {
	switch e := tev.(type) {
	case *tcell.EventInterrupt:
		return nil, event.ErrInterrupted

	case *tcell.EventKey:
		ke := convertKey(e)
		if s.pasting {
			// Pasted text arrives as rune keys between the markers.
			if ke.Key == key.KeyRune {
				s.pasted = append(s.pasted, ke.Rune)
			} else if ke.Key == key.KeyEnter {
				s.pasted = append(s.pasted, '\n')
			}
			return nil, nil
		}
		return event.KeyEvent{Event: ke}, nil

	case *tcell.EventMouse:
		return event.MouseEvent{Event: convertMouse(e)}, nil

	case *tcell.EventResize:
		w, h := e.Size()
		return event.ResizeEvent{Width: w, Height: h}, nil

	case *tcell.EventPaste:
		if e.Start() {
			s.pasting = true
			s.pasted = s.pasted[:0]
			return nil, nil
		}
		s.pasting = false
		return event.PasteEvent{Text: string(s.pasted)}, nil

	case *tcell.EventFocus:
		return event.FocusEvent{Gained: e.Focused}, nil

	case *tcell.EventError:
		return nil, e

	default:
		return nil, nil
	}
}

// convertKey maps a tcell key event onto the key package's value type.
// tcell reports Ctrl+letter chords as dedicated control-key codes carrying
// the control rune; those are normalized back to KeyRune plus ModCtrl.
func convertKey(e *tcell.EventKey) key.Event {
	mods := convertMods(e.Modifiers())

	k := e.Key()
	switch k {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyBackTab, mods.With(key.ModShift))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.NewSpecialEvent(key.KeyF1+key.Key(k-tcell.KeyF1), mods)
	}

	// Ctrl+letter chords: tcell reuses the ASCII control codes 1..26.
	// KeyEnter, KeyTab, and KeyBackspace alias into that range and were
	// already handled above.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent(rune('a'+k-tcell.KeyCtrlA), mods.With(key.ModCtrl))
	}

	return key.NewSpecialEvent(key.KeyNone, mods)
}

// convertMods maps tcell's modifier mask onto the key package's bitmask.
func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

// convertMouse maps a tcell mouse event onto the mouse package's value type.
// tcell exposes the current button mask rather than press/release edges, so
// the action is derived from the mask alone: a held button reads as a press
// (or a scroll tick), an empty mask as movement.
func convertMouse(e *tcell.EventMouse) mouse.Event {
	x, y := e.Position()
	btn, action := convertButtons(e.Buttons())
	return mouse.Event{
		Button:    btn,
		Action:    action,
		Position:  mouse.Position{X: x, Y: y},
		Modifiers: convertMods(e.Modifiers()),
	}
}

func convertButtons(mask tcell.ButtonMask) (mouse.Button, mouse.Action) {
	switch {
	case mask&tcell.WheelUp != 0:
		return mouse.ButtonScrollUp, mouse.ActionPress
	case mask&tcell.WheelDown != 0:
		return mouse.ButtonScrollDown, mouse.ActionPress
	case mask&tcell.WheelLeft != 0:
		return mouse.ButtonScrollLeft, mouse.ActionPress
	case mask&tcell.WheelRight != 0:
		return mouse.ButtonScrollRight, mouse.ActionPress
	case mask&tcell.Button1 != 0:
		return mouse.ButtonLeft, mouse.ActionPress
	case mask&tcell.Button3 != 0:
		return mouse.ButtonMiddle, mouse.ActionPress
	case mask&tcell.Button2 != 0:
		return mouse.ButtonRight, mouse.ActionPress
	default:
		return mouse.ButtonNone, mouse.ActionMove
	}
}
