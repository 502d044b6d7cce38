package cursor

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dshills/termstream/internal/event"
)

// ErrTimeout is returned when the terminal does not answer the cursor-report
// request within the query window.
var ErrTimeout = errors.New("cursor position could not be read within a normal duration")

// DefaultWindow is how long a query waits for the terminal's reply.
const DefaultWindow = 2 * time.Second

// reportRequest is the ANSI "report cursor position" control sequence (DSR).
const reportRequest = "\x1b[6n"

// Poller is the slice of the event multiplexer the query needs.
type Poller interface {
	Poll(timeout time.Duration, filter event.Filter) (bool, error)
	Read(filter event.Filter) (event.Event, error)
}

// Output is a flushable byte sink connected to the terminal.
type Output interface {
	io.Writer
	Flush() error
}

// ModeSwitcher toggles and reports terminal raw mode. The query enables raw
// mode only when it is not already active, and always restores what it
// changed.
type ModeSwitcher interface {
	IsRawModeEnabled() bool
	EnableRawMode() error
	DisableRawMode() error
}

// Query performs cursor-position lookups against one terminal.
type Query struct {
	events Poller
	out    Output
	modes  ModeSwitcher
	window time.Duration
}

// Option configures a Query.
type Option func(*Query)

// WithWindow overrides the reply wait window. Values of zero or below keep
// the default.
func WithWindow(d time.Duration) Option {
	return func(q *Query) {
		if d > 0 {
			q.window = d
		}
	}
}

// New returns a Query over the given collaborators.
func New(events Poller, out Output, modes ModeSwitcher, opts ...Option) *Query {
	q := &Query{
		events: events,
		out:    out,
		modes:  modes,
		window: DefaultWindow,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Position returns the terminal's current cursor coordinates, zero-based with
// (0, 0) the top-left cell.
//
// The terminal only answers the report request in raw mode, so Position
// enables raw mode for the duration of the call when it is not already active
// and restores it afterward on every path. A restore failure is reported only
// when the query itself succeeded; it never masks a more specific failure.
//
// Transient poll errors re-arm a full wait window and the query retries. A
// waker fired during the wait surfaces as the timeout branch, so waking a
// blocked query aborts it with ErrTimeout rather than re-arming.
func (q *Query) Position() (col, row int, err error) {
	if q.modes.IsRawModeEnabled() {
		return q.position()
	}

	if err := q.modes.EnableRawMode(); err != nil {
		return 0, 0, err
	}
	col, row, err = q.position()
	if derr := q.modes.DisableRawMode(); derr != nil && err == nil {
		err = derr
	}
	return col, row, err
}

func (q *Query) position() (int, int, error) {
	if _, err := q.out.Write([]byte(reportRequest)); err != nil {
		return 0, 0, fmt.Errorf("write cursor report request: %w", err)
	}
	if err := q.out.Flush(); err != nil {
		return 0, 0, fmt.Errorf("flush cursor report request: %w", err)
	}

	for {
		ok, err := q.events.Poll(q.window, event.FilterCursorReply())
		if err != nil {
			// A reader with no source fails every poll the same way;
			// retrying would spin forever.
			if errors.Is(err, event.ErrSourceUnavailable) {
				return 0, 0, err
			}
			// Transient failure; the reply may still arrive.
			continue
		}
		if !ok {
			return 0, 0, ErrTimeout
		}

		ev, err := q.events.Read(event.FilterCursorReply())
		if err != nil {
			continue
		}
		if reply, isReply := ev.(event.CursorPositionEvent); isReply {
			return reply.Col, reply.Row, nil
		}
	}
}
