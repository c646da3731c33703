package core

import "time"

// Clock abstracts wall-clock time so frame timing can be driven in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// FrameTimer measures elapsed seconds between consecutive frames.
// The first call to Delta returns 0.
type FrameTimer struct {
	clock   Clock
	last    time.Time
	started bool
	maxStep float64
}

// NewFrameTimer creates a frame timer. maxStep caps a single delta in seconds
// (0 disables the cap) so a stalled frontend does not teleport the player.
func NewFrameTimer(clock Clock, maxStep float64) *FrameTimer {
	if clock == nil {
		clock = SystemClock()
	}
	return &FrameTimer{clock: clock, maxStep: maxStep}
}

// Delta returns seconds since the previous call.
func (t *FrameTimer) Delta() float64 {
	now := t.clock.Now()
	if !t.started {
		t.started = true
		t.last = now
		return 0
	}

	dt := now.Sub(t.last).Seconds()
	t.last = now

	if dt < 0 {
		return 0
	}
	if t.maxStep > 0 && dt > t.maxStep {
		return t.maxStep
	}
	return dt
}

// Restart forgets the previous frame so the next Delta returns 0.
func (t *FrameTimer) Restart() {
	t.started = false
}
