package config

import (
	"math"
	"time"
)

// Duration returns the drop duration for a level:
// max(base - step*(level-1), min). Levels below 1 are treated as 1.
func (d DropConfig) Duration(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	secs := math.Max(d.Base-d.Step*float64(level-1), d.Min)
	return time.Duration(math.Round(secs * float64(time.Second)))
}

// FloorLevel returns the first level at which the drop duration hits its floor.
func (d DropConfig) FloorLevel() int {
	if d.Step <= 0 || d.Base <= d.Min {
		return 1
	}
	floor := d.Duration(1 << 20)
	level := 1
	for d.Duration(level) > floor {
		level++
	}
	return level
}
