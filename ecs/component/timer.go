package component

import "math"

// AnimationPeriod is the fixed interval between sprite frame advances, in seconds.
const AnimationPeriod = 0.05

// AnimationTimer is a frame-rate independent clock. Finished is true only for the tick
// in which Elapsed crossed Duration; a repeating timer wraps and keeps running.
type AnimationTimer struct {
	Duration  float64
	Elapsed   float64
	Repeating bool
	Finished  bool
}

var AnimationTimerComponent = NewComponent[AnimationTimer]()

// NewAnimationTimer returns a repeating timer with the given period.
func NewAnimationTimer(period float64) *AnimationTimer {
	return &AnimationTimer{Duration: period, Repeating: true}
}

// Tick accrues dt. At most one fire is reported per tick however large dt is.
func (t *AnimationTimer) Tick(dt float64) {
	t.Finished = false
	if t.Duration <= 0 {
		return
	}
	if !t.Repeating && t.Elapsed >= t.Duration {
		return
	}
	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return
	}
	t.Finished = true
	if t.Repeating {
		t.Elapsed = math.Mod(t.Elapsed, t.Duration)
	} else {
		t.Elapsed = t.Duration
	}
}

// Reset clears the fire flag. Elapsed keeps the carry-over of a repeating timer.
func (t *AnimationTimer) Reset() {
	t.Finished = false
}
