package tcellsrc

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termstream/internal/event"
)

// Source is a tcell-backed event source. It owns the screen lifecycle and a
// pump goroutine feeding the screen's events into a channel that TryRead
// drains with timeout semantics.
type Source struct {
	screen tcell.Screen
	ch     chan tcell.Event
	quit   chan struct{}
	waker  *event.Waker

	closeOnce sync.Once
	closed    chan struct{}

	// pasting accumulates rune keys between bracketed-paste markers.
	pasting bool
	pasted  []rune
}

// Option configures a Source.
type Option func(*config)

type config struct {
	mouse bool
	paste bool
}

// WithMouse enables mouse capture.
func WithMouse(enable bool) Option {
	return func(c *config) {
		c.mouse = enable
	}
}

// WithPaste enables bracketed-paste capture.
func WithPaste(enable bool) Option {
	return func(c *config) {
		c.paste = enable
	}
}

// New allocates a screen for the controlling terminal, initializes it, and
// returns a Source over it.
func New(opts ...Option) (*Source, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewFromScreen(screen, opts...), nil
}

// NewFromScreen returns a Source over an already-initialized screen. The
// caller hands over ownership; Close finalizes the screen.
func NewFromScreen(screen tcell.Screen, opts ...Option) *Source {
	cfg := config{paste: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.mouse {
		screen.EnableMouse()
	}
	if cfg.paste {
		screen.EnablePaste()
	}

	s := &Source{
		screen: screen,
		ch:     make(chan tcell.Event, 32),
		quit:   make(chan struct{}),
		closed: make(chan struct{}),
	}
	s.waker = event.NewWakerFunc(func() error {
		return screen.PostEvent(tcell.NewEventInterrupt(nil))
	})

	go screen.ChannelEvents(s.ch, s.quit)

	return s
}

// Screen exposes the underlying screen so a host application can draw on it.
func (s *Source) Screen() tcell.Screen {
	return s.screen
}

// Waker returns the cancellation handle for this source.
func (s *Source) Waker() *event.Waker {
	return s.waker
}

// TryRead returns the next translated event, waiting at most timeout. It
// returns (nil, nil) when the timeout passes with nothing available and
// event.ErrInterrupted when the waker fires.
func (s *Source) TryRead(timeout time.Duration) (event.Event, error) {
	deadline := event.NewPollTimeout(timeout)

	for {
		tev, err := s.next(deadline.Leftover())
		if err != nil {
			return nil, err
		}
		if tev == nil {
			return nil, nil
		}

		ev, err := s.translate(tev)
		if err != nil {
			return nil, err
		}
		if ev != nil {
			return ev, nil
		}

		// Swallowed event (paste fragment or marker). Only keep pulling
		// while budget remains.
		if deadline.Elapsed() {
			return nil, nil
		}
	}
}

// next receives one raw tcell event within the remaining budget.
func (s *Source) next(leftover time.Duration) (tcell.Event, error) {
	select {
	case <-s.closed:
		return nil, event.ErrSourceClosed
	default:
	}

	switch {
	case leftover < 0:
		select {
		case tev, ok := <-s.ch:
			if !ok {
				return nil, event.ErrSourceClosed
			}
			return tev, nil
		case <-s.closed:
			return nil, event.ErrSourceClosed
		}
	case leftover == 0:
		select {
		case tev, ok := <-s.ch:
			if !ok {
				return nil, event.ErrSourceClosed
			}
			return tev, nil
		default:
			return nil, nil
		}
	default:
		timer := time.NewTimer(leftover)
		defer timer.Stop()
		select {
		case tev, ok := <-s.ch:
			if !ok {
				return nil, event.ErrSourceClosed
			}
			return tev, nil
		case <-s.closed:
			return nil, event.ErrSourceClosed
		case <-timer.C:
			return nil, nil
		}
	}
}

// Close stops the pump and finalizes the screen.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		close(s.closed)
		close(s.quit)
		s.screen.Fini()
	})
	return nil
}
