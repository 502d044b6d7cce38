package event

import "time"

// Forever is the timeout value meaning "no deadline". Any negative duration is
// treated the same way.
const Forever time.Duration = -1

// PollTimeout converts a single timeout value into a fixed deadline so that a
// poll loop can ask repeatedly how much wait budget remains. It has no side
// effects and is safe to query any number of times.
type PollTimeout struct {
	deadline  time.Time
	unbounded bool
}

// NewPollTimeout starts the clock for one top-level poll call. A negative
// timeout produces an unbounded deadline; zero produces one that has already
// elapsed (but still permits a single non-blocking probe via Leftover).
func NewPollTimeout(timeout time.Duration) PollTimeout {
	if timeout < 0 {
		return PollTimeout{unbounded: true}
	}
	return PollTimeout{deadline: time.Now().Add(timeout)}
}

// Leftover reports the remaining wait budget, clamped at zero once the
// deadline has passed. For an unbounded timeout it returns Forever.
func (t PollTimeout) Leftover() time.Duration {
	if t.unbounded {
		return Forever
	}
	left := time.Until(t.deadline)
	if left < 0 {
		return 0
	}
	return left
}

// Elapsed reports whether the deadline has passed. An unbounded timeout never
// elapses.
func (t PollTimeout) Elapsed() bool {
	if t.unbounded {
		return false
	}
	return !time.Now().Before(t.deadline)
}
