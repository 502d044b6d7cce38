// Package event provides the terminal input multiplexer for termstream.
//
// The multiplexer is the single funnel between a platform event source and
// application code: it buffers decoded terminal notifications (keys, mouse,
// resizes, pastes, cursor-position replies) in arrival order and serves them
// to callers through filtered, optionally bounded reads.
//
// # Architecture
//
//	┌────────────┐   TryRead(timeout)   ┌──────────────────────────┐
//	│   Source    │ ───────────────────▶ │          Reader           │
//	│ (tcellsrc,  │                      │  - ordered event queue    │
//	│  fakes)     │ ◀─────────────────── │  - per-call skip buffer   │
//	└────────────┘        Waker          │  - Poll / Read / TryRead  │
//	                                     └──────────────────────────┘
//
// A caller supplies a Filter with every read. Events that fail the filter are
// never dropped: during a source-driven Poll they collect in a skip buffer and
// rejoin the queue before the call returns, so a later caller with a different
// filter still sees them in arrival order. This is what lets the cursor-position
// protocol wait for its reply without swallowing the user's keystrokes.
//
// # Blocking and cancellation
//
// Poll blocks the calling goroutine for at most the given timeout (Forever for
// no bound, zero for a single non-blocking probe). There are no internal worker
// goroutines. The one concession to concurrency is the Waker: another goroutine
// may call Wake to make a blocked Poll return (false, nil) promptly. Waking is
// queue-latched, so a Wake issued before the Poll starts is not lost.
//
// # Basic usage
//
//	reader := event.NewReader(src)
//
//	// Block until any application-visible event arrives.
//	ev, err := reader.Read(event.FilterPublic())
//
//	// Wait up to 50ms for a resize, leaving other events queued.
//	ok, err := reader.Poll(50*time.Millisecond, event.FilterResize())
//	if ok {
//	    ev, _ := reader.TryRead(event.FilterResize())
//	    ...
//	}
package event
