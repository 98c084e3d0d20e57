package benchmark

import "time"

// Timer measures a single invocation of fn.
type Timer interface {
	Time(fn func()) time.Duration
}

// WallTimer times calls with the monotonic wall clock.
type WallTimer struct{}

// NewWallTimer returns the default Timer.
func NewWallTimer() *WallTimer {
	return &WallTimer{}
}

func (WallTimer) Time(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// TimerFunc adapts a plain function to the Timer interface.
type TimerFunc func(fn func()) time.Duration

func (f TimerFunc) Time(fn func()) time.Duration {
	return f(fn)
}

// Measure invokes fn exactly once under timer and returns its output along
// with the elapsed nanoseconds. The result is never negative.
func Measure[T any](timer Timer, fn func() T) (T, int64) {
	var out T
	elapsed := timer.Time(func() {
		out = fn()
	})
	ns := elapsed.Nanoseconds()
	if ns < 0 {
		ns = 0
	}
	return out, ns
}
