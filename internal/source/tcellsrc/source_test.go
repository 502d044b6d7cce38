package tcellsrc

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termstream/internal/event"
	"github.com/dshills/termstream/internal/input/key"
	"github.com/dshills/termstream/internal/input/mouse"
)

func newTestSource(t *testing.T) (*Source, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}

	s := NewFromScreen(sim)
	t.Cleanup(func() { _ = s.Close() })
	return s, sim
}

func TestTryReadTranslatesInjectedKey(t *testing.T) {
	s, sim := newTestSource(t)

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	ev, err := s.TryRead(time.Second)
	if err != nil {
		t.Fatalf("TryRead failed: %v", err)
	}

	ke, ok := ev.(event.KeyEvent)
	if !ok {
		t.Fatalf("TryRead = %T, want KeyEvent", ev)
	}
	if ke.Key != key.KeyRune || ke.Rune != 'a' {
		t.Errorf("key event = %v, want rune 'a'", ke)
	}
}

func TestTryReadTimesOutWithNothingPending(t *testing.T) {
	s, _ := newTestSource(t)

	ev, err := s.TryRead(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("TryRead failed: %v", err)
	}
	if ev != nil {
		t.Errorf("TryRead = %v, want nil on timeout", ev)
	}
}

func TestWakerInterruptsRead(t *testing.T) {
	s, _ := newTestSource(t)

	if err := s.Waker().Wake(); err != nil {
		t.Fatalf("Wake failed: %v", err)
	}

	if _, err := s.TryRead(time.Second); !errors.Is(err, event.ErrInterrupted) {
		t.Fatalf("TryRead error = %v, want ErrInterrupted", err)
	}
	if !s.Waker().Woken() {
		t.Error("waker flag not latched")
	}
}

func TestTryReadAfterClose(t *testing.T) {
	s, _ := newTestSource(t)
	_ = s.Close()

	if _, err := s.TryRead(0); !errors.Is(err, event.ErrSourceClosed) {
		t.Errorf("TryRead error = %v, want ErrSourceClosed", err)
	}
}

func TestTranslateKeys(t *testing.T) {
	s := &Source{}

	tests := []struct {
		name string
		in   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), key.NewRuneEvent('x', key.ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEscape, key.ModNone)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone)},
		{"arrow with shift", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), key.NewSpecialEvent(key.KeyUp, key.ModShift)},
		{"function", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyF5, key.ModNone)},
		{"ctrl chord", tcell.NewEventKey(tcell.KeyCtrlQ, 'q', tcell.ModCtrl), key.NewRuneEvent('q', key.ModCtrl)},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt), key.NewRuneEvent('f', key.ModAlt)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := s.translate(tt.in)
			if err != nil {
				t.Fatalf("translate failed: %v", err)
			}
			ke, ok := ev.(event.KeyEvent)
			if !ok {
				t.Fatalf("translate = %T, want KeyEvent", ev)
			}
			if ke.Event != tt.want {
				t.Errorf("translate = %+v, want %+v", ke.Event, tt.want)
			}
		})
	}
}

func TestTranslateMouse(t *testing.T) {
	s := &Source{}

	tests := []struct {
		name string
		in   *tcell.EventMouse
		want mouse.Event
	}{
		{
			"left press",
			tcell.NewEventMouse(3, 7, tcell.Button1, tcell.ModNone),
			mouse.Event{Button: mouse.ButtonLeft, Action: mouse.ActionPress, Position: mouse.Position{X: 3, Y: 7}},
		},
		{
			"wheel up",
			tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone),
			mouse.Event{Button: mouse.ButtonScrollUp, Action: mouse.ActionPress},
		},
		{
			"motion",
			tcell.NewEventMouse(5, 6, tcell.ButtonNone, tcell.ModNone),
			mouse.Event{Action: mouse.ActionMove, Position: mouse.Position{X: 5, Y: 6}},
		},
		{
			"ctrl click",
			tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModCtrl),
			mouse.Event{Button: mouse.ButtonLeft, Action: mouse.ActionPress, Position: mouse.Position{X: 1, Y: 1}, Modifiers: key.ModCtrl},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := s.translate(tt.in)
			if err != nil {
				t.Fatalf("translate failed: %v", err)
			}
			me, ok := ev.(event.MouseEvent)
			if !ok {
				t.Fatalf("translate = %T, want MouseEvent", ev)
			}
			if me.Event != tt.want {
				t.Errorf("translate = %+v, want %+v", me.Event, tt.want)
			}
		})
	}
}

func TestTranslateResize(t *testing.T) {
	s := &Source{}

	ev, err := s.translate(tcell.NewEventResize(100, 40))
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if ev != (event.ResizeEvent{Width: 100, Height: 40}) {
		t.Errorf("translate = %v, want resize 100x40", ev)
	}
}

func TestTranslateFocus(t *testing.T) {
	s := &Source{}

	ev, err := s.translate(tcell.NewEventFocus(true))
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if ev != (event.FocusEvent{Gained: true}) {
		t.Errorf("translate = %v, want focus gained", ev)
	}
}

func TestTranslateInterrupt(t *testing.T) {
	s := &Source{}

	if _, err := s.translate(tcell.NewEventInterrupt(nil)); !errors.Is(err, event.ErrInterrupted) {
		t.Errorf("translate error = %v, want ErrInterrupted", err)
	}
}

func TestTranslatePasteAccumulatesRunes(t *testing.T) {
	s := &Source{}

	steps := []tcell.Event{
		tcell.NewEventPaste(true),
		tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, '!', tcell.ModNone),
	}
	for _, step := range steps {
		ev, err := s.translate(step)
		if err != nil {
			t.Fatalf("translate failed: %v", err)
		}
		if ev != nil {
			t.Fatalf("translate = %v mid-paste, want nothing until the end marker", ev)
		}
	}

	ev, err := s.translate(tcell.NewEventPaste(false))
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if ev != (event.PasteEvent{Text: "hi\n!"}) {
		t.Errorf("translate = %v, want paste %q", ev, "hi\n!")
	}

	// Keys after the end marker flow through normally again.
	ev, err = s.translate(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if _, ok := ev.(event.KeyEvent); !ok {
		t.Errorf("translate = %T after paste, want KeyEvent", ev)
	}
}
