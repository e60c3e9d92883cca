package env

import (
	"howitzer/internal/physics"
)

// Effect is an interface for environmental forces acting on the projectile.
// Each implementation returns the acceleration it contributes at the given
// position and velocity, for example gravity or air resistance.
type Effect interface {
	Acceleration(pos physics.Position, vel physics.Velocity) physics.Acceleration
}

// Chain is a composite effect that sums the accelerations of its effects.
type Chain struct {
	Effects []Effect
}

// Acceleration returns the total acceleration of all effects in the chain.
func (c *Chain) Acceleration(pos physics.Position, vel physics.Velocity) physics.Acceleration {
	var total physics.Acceleration
	for _, effect := range c.Effects {
		total.Add(effect.Acceleration(pos, vel))
	}
	return total
}

// Standard returns gravity plus drag for the given shell in the given wind.
func Standard(mass, diameter float64, wind Wind) *Chain {
	return &Chain{
		Effects: []Effect{
			Gravity{},
			Drag{Mass: mass, Diameter: diameter, Wind: wind},
		},
	}
}

// NoOp is an effect that does nothing.
var NoOp Effect = noOpEffect{}

type noOpEffect struct{}

func (noOpEffect) Acceleration(physics.Position, physics.Velocity) physics.Acceleration {
	return physics.Acceleration{}
}
