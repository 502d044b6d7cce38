package event

import "sync/atomic"

// Waker forces a blocked Poll or Read to return early without producing an
// event. It is the only object in this package intended to be shared across
// goroutines: any holder may call Wake while the owning goroutine is blocked
// in Poll, or before it gets there.
//
// Wake latches a flag and then runs the source-supplied notify hook, so the
// signal is observed whether it races ahead of the wait or lands mid-wait: a
// source checks the flag before blocking and the hook unblocks a wait already
// in progress.
type Waker struct {
	woken  atomic.Bool
	notify func() error
}

// NewWaker returns a flag-only waker, sufficient for sources that check the
// flag at the top of every read.
func NewWaker() *Waker {
	return &Waker{}
}

// NewWakerFunc returns a waker that additionally runs notify on every Wake.
// Sources use the hook to unblock an in-flight read, for example by posting a
// sentinel event to their input queue.
func NewWakerFunc(notify func() error) *Waker {
	return &Waker{notify: notify}
}

// Wake requests that the current or next blocking read return promptly.
// Safe for concurrent use.
func (w *Waker) Wake() error {
	w.woken.Store(true)
	if w.notify != nil {
		return w.notify()
	}
	return nil
}

// Woken reports whether Wake has been called since the last Reset.
func (w *Waker) Woken() bool {
	return w.woken.Load()
}

// Reset clears the latch so the waker can be reused for a later wait.
func (w *Waker) Reset() {
	w.woken.Store(false)
}
