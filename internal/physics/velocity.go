package physics

import (
	"math"

	"howitzer/internal/geometry/angle"
)

// Velocity is a 2D velocity in m/s.
type Velocity struct {
	dx float64 // horizontal
	dy float64 // vertical
}

// NewVelocity creates a Velocity from its components.
func NewVelocity(dx, dy float64) Velocity {
	return Velocity{dx: dx, dy: dy}
}

// VelocityFromAngle resolves speed along a into components.
func VelocityFromAngle(speed float64, a angle.Angle) Velocity {
	var v Velocity
	v.Set(a, speed)
	return v
}

func (v Velocity) DX() float64 { return v.dx }
func (v Velocity) DY() float64 { return v.dy }

// Speed is the magnitude of the velocity.
func (v Velocity) Speed() float64 {
	return math.Sqrt(v.dx*v.dx + v.dy*v.dy)
}

// Angle is the direction of travel, 0 being straight up.
func (v Velocity) Angle() angle.Angle {
	return angle.FromDxDy(v.dx, v.dy)
}

func (v *Velocity) SetDX(dx float64) { v.dx = dx }
func (v *Velocity) SetDY(dy float64) { v.dy = dy }
func (v *Velocity) AddDX(dx float64) { v.dx += dx }
func (v *Velocity) AddDY(dy float64) { v.dy += dy }

// Set overwrites both components from a direction and speed.
func (v *Velocity) Set(dir angle.Angle, speed float64) {
	v.dx = dir.Dx() * speed
	v.dy = dir.Dy() * speed
}

// Add accumulates o into v.
func (v *Velocity) Add(o Velocity) {
	v.dx += o.dx
	v.dy += o.dy
}

// AddAcceleration applies a over dt seconds: v = v + a t
func (v *Velocity) AddAcceleration(a Accelerator, dt float64) {
	v.dx += a.DDX() * dt
	v.dy += a.DDY() * dt
}
