package event

import (
	"errors"
	"time"

	"github.com/eapache/queue"
)

// Reader multiplexes a Source into filtered reads. It owns an ordered queue
// of decoded-but-unconsumed events; events rejected by one call's filter stay
// queued, in arrival order, for later calls.
//
// A Reader is not safe for concurrent use. The one supported cross-goroutine
// interaction is waking a blocked Poll or Read through the source's Waker.
type Reader struct {
	events []Event
	source Source

	// skipped holds events pulled from the source during a Poll that failed
	// the active filter. It drains back into events before Poll returns, but
	// survives an error return so nothing is lost when the caller retries.
	skipped *queue.Queue
}

// NewReader returns a Reader over src. A nil src produces a reader whose Poll
// and Read always fail with ErrSourceUnavailable, representing a platform
// whose input could not be initialized.
func NewReader(src Source) *Reader {
	return &Reader{
		events:  make([]Event, 0, 32),
		source:  src,
		skipped: queue.New(),
	}
}

// Waker returns the cancellation handle of the configured source.
func (r *Reader) Waker() (*Waker, error) {
	if r.source == nil {
		return nil, ErrSourceUnavailable
	}
	return r.source.Waker(), nil
}

// Poll reports whether an event matching filter is ready to be taken with
// TryRead. The queue is scanned first; on a miss the source is driven until a
// match arrives, the timeout elapses, or the read is interrupted. A zero
// timeout still performs the queue scan and one non-blocking source probe.
//
// Events read from the source that fail the filter are retained and rejoin
// the queue in arrival order; a match is placed at the queue front. A waker
// firing during the wait yields (false, nil). Any other source failure is
// returned as an error with all retained events intact.
func (r *Reader) Poll(timeout time.Duration, filter Filter) (bool, error) {
	for _, ev := range r.events {
		if filter(ev) {
			return true, nil
		}
	}

	if r.source == nil {
		return false, ErrSourceUnavailable
	}

	deadline := NewPollTimeout(timeout)

	for {
		var match Event

		ev, err := r.source.TryRead(deadline.Leftover())
		switch {
		case err != nil:
			if errors.Is(err, ErrInterrupted) {
				return false, nil
			}
			return false, err
		case ev != nil:
			if filter(ev) {
				match = ev
			} else {
				r.skipped.Add(ev)
			}
		}

		if deadline.Elapsed() || match != nil {
			r.drainSkipped()
			if match != nil {
				r.pushFront(match)
				return true, nil
			}
			return false, nil
		}
	}
}

// TryRead removes and returns the first queued event matching filter. It
// never touches the source. Non-matching events scanned on the way are
// reappended behind the remaining queue, preserving their relative order, so
// a never-matching filter leaves the queue contents unchanged.
func (r *Reader) TryRead(filter Filter) (Event, bool) {
	var skipped []Event

	for len(r.events) > 0 {
		ev := r.events[0]
		r.events = r.events[1:]
		if filter(ev) {
			r.events = append(r.events, skipped...)
			return ev, true
		}
		skipped = append(skipped, ev)
	}

	r.events = append(r.events, skipped...)
	return nil, false
}

// Read blocks until an event matching filter can be returned. It alternates
// TryRead with an unbounded Poll, so it cannot time out; it returns only with
// a matching event or with an error propagated from the source.
func (r *Reader) Read(filter Filter) (Event, error) {
	for {
		if ev, ok := r.TryRead(filter); ok {
			return ev, nil
		}

		if _, err := r.Poll(Forever, filter); err != nil {
			return nil, err
		}
	}
}

// drainSkipped moves this poll's rejected events to the back of the queue in
// their original receipt order.
func (r *Reader) drainSkipped() {
	for r.skipped.Length() > 0 {
		r.events = append(r.events, r.skipped.Remove().(Event))
	}
}

// pushFront queues ev ahead of everything else so the next TryRead sees it
// first.
func (r *Reader) pushFront(ev Event) {
	r.events = append(r.events, nil)
	copy(r.events[1:], r.events)
	r.events[0] = ev
}
