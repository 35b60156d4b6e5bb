package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Gameplay runs on wall-clock time so ghost pacing and the stopwatch stay
// honest under any target-fps setting.
var (
	lastTick time.Time
	tickDT   float64
)

// UpdateClock computes the wall-clock delta for this frame. Must run before
// every other update system.
func UpdateClock(e *ecs.ECS) {
	now := time.Now()
	if lastTick.IsZero() {
		lastTick = now
	}
	tickDT = now.Sub(lastTick).Seconds()
	lastTick = now
	// A stall (window drag, suspend) should not teleport the ghost.
	if tickDT > 0.25 {
		tickDT = 0.25
	}
}

// DT returns the seconds elapsed since the previous frame.
func DT() float64 { return tickDT }

// ResetClock clears the frame timer, e.g. when a new session starts.
func ResetClock() { lastTick = time.Time{} }
