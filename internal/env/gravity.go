package env

import (
	"howitzer/internal/physics"
)

// Gravity pulls the projectile down with the strength found at its altitude.
type Gravity struct{}

func (Gravity) Acceleration(pos physics.Position, _ physics.Velocity) physics.Acceleration {
	return physics.NewAcceleration(0, -GravityFromAltitude(pos.Altitude()))
}
