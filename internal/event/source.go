package event

import "time"

// Source is the platform capability the Reader drives: produce the next
// decoded event, or report that none arrived in time, or fail. Concrete
// implementations (the tcell adapter, test fakes) own all raw decoding; the
// Reader only sees typed events.
type Source interface {
	// TryRead returns the next decoded event, waiting at most timeout.
	// A nil event with a nil error means the timeout passed with nothing
	// available. Zero means a non-blocking probe; a negative timeout
	// (Forever) blocks until an event arrives or the read is interrupted.
	//
	// TryRead returns ErrInterrupted when a Waker fires, ErrSourceClosed
	// after Close, and any other error on unrecoverable failure.
	TryRead(timeout time.Duration) (Event, error)

	// Waker returns the cancellation handle tied to this source. The same
	// handle is returned on every call and may be shared across goroutines.
	Waker() *Waker

	// Close releases the source. Subsequent reads return ErrSourceClosed.
	Close() error
}
