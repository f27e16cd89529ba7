package ecs

import "github.com/alprun/alprun/input"

// Tick is everything a system may read about the current frame besides the world itself.
type Tick struct {
	// Frame counts ticks since the scheduler started, starting at 1.
	Frame uint64
	// DT is the elapsed frame time in seconds. It is passed through unclamped.
	DT float64
	// Keys is the input snapshot sampled at the start of the frame.
	Keys input.Snapshot
}

// Pressed reports whether k is held this tick. A tick without a snapshot holds nothing.
func (t Tick) Pressed(k input.Key) bool {
	return t.Keys != nil && t.Keys.Pressed(k)
}
