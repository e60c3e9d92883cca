// Package physics holds the kinematic quantities of a projectile in the
// firing plane: acceleration, velocity and position.
//
// Components follow the angle package convention: x is horizontal
// (downrange), y is vertical (up), and a direction of 0 points up.
package physics

import (
	"math"

	"howitzer/internal/geometry/angle"
)

// Accelerator is anything a Velocity can be integrated against.
type Accelerator interface {
	DDX() float64
	DDY() float64
}

var _ Accelerator = Acceleration{}

// Acceleration is a 2D acceleration in m/s².
type Acceleration struct {
	ddx float64 // horizontal
	ddy float64 // vertical
}

// NewAcceleration creates an Acceleration from its components.
func NewAcceleration(ddx, ddy float64) Acceleration {
	return Acceleration{ddx: ddx, ddy: ddy}
}

// AccelerationFromAngle resolves magnitude along a into components.
func AccelerationFromAngle(magnitude float64, a angle.Angle) Acceleration {
	var acc Acceleration
	acc.Set(a, magnitude)
	return acc
}

func (a Acceleration) DDX() float64 { return a.ddx }
func (a Acceleration) DDY() float64 { return a.ddy }

// Magnitude returns the length of the acceleration vector.
func (a Acceleration) Magnitude() float64 { return math.Hypot(a.ddx, a.ddy) }

func (a *Acceleration) SetDDX(ddx float64) { a.ddx = ddx }
func (a *Acceleration) SetDDY(ddy float64) { a.ddy = ddy }
func (a *Acceleration) AddDDX(ddx float64) { a.ddx += ddx }
func (a *Acceleration) AddDDY(ddy float64) { a.ddy += ddy }

// Set overwrites both components from a direction and magnitude.
func (a *Acceleration) Set(dir angle.Angle, magnitude float64) {
	a.ddx = dir.Dx() * magnitude
	a.ddy = dir.Dy() * magnitude
}

// Add accumulates o into a.
func (a *Acceleration) Add(o Acceleration) {
	a.ddx += o.ddx
	a.ddy += o.ddy
}
