package event

import "errors"

// Sentinel errors for the multiplexer and its sources.
var (
	// ErrSourceUnavailable is returned by Poll and Read when the reader has no
	// event source, typically because platform initialization failed.
	ErrSourceUnavailable = errors.New("no input source available")

	// ErrInterrupted is returned by a Source whose blocking read was cut short
	// by a Waker or an OS-level interruption. Poll collapses it to a clean
	// (false, nil); it is never surfaced to Poll's callers.
	ErrInterrupted = errors.New("read interrupted")

	// ErrSourceClosed is returned by a Source after Close, when no further
	// events can ever be produced.
	ErrSourceClosed = errors.New("input source closed")
)
