package session

import "time"

// Clock returns the current time.
type Clock func() time.Time

// Timer is a stopwatch measuring one contiguous interval.
type Timer struct {
	clock     Clock
	startedAt time.Time
	stoppedAt time.Time
	running   bool
	stopped   bool
}

// NewTimer returns a stopped timer reading clock, or time.Now when clock is nil.
func NewTimer(clock Clock) Timer {
	if clock == nil {
		clock = time.Now
	}
	return Timer{clock: clock}
}

// Start begins a new measurement. It is a no-op while running.
func (t *Timer) Start() {
	if t.running {
		return
	}
	t.startedAt = t.now()
	t.stoppedAt = time.Time{}
	t.running = true
	t.stopped = false
}

// Stop ends the current measurement.
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.stoppedAt = t.now()
	t.running = false
	t.stopped = true
}

// Running reports whether a measurement is in progress.
func (t Timer) Running() bool {
	return t.running
}

// StartedAt returns when the current or last measurement began.
func (t Timer) StartedAt() time.Time {
	return t.startedAt
}

// Elapsed returns the measured interval. It is zero until Stop is called.
func (t Timer) Elapsed() time.Duration {
	if !t.stopped {
		return 0
	}
	return t.stoppedAt.Sub(t.startedAt)
}

func (t *Timer) now() time.Time {
	if t.clock == nil {
		t.clock = time.Now
	}
	return t.clock()
}
