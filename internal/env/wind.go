package env

import (
	"howitzer/internal/physics"
)

// Wind represents a constant horizontal wind in the firing plane.
type Wind struct {
	// Speed in m/s (positive = blowing downrange, negative = head wind)
	Speed float64
}

// Relative returns the velocity of the projectile through the air.
// Wind changes the air speed, and so the drag, but not gravity.
func (w Wind) Relative(vel physics.Velocity) physics.Velocity {
	air := vel
	air.AddDX(-w.Speed)
	return air
}

// Calm returns a Wind with zero velocity (no wind).
func Calm() Wind {
	return Wind{}
}
