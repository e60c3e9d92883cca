package physics

import "howitzer/internal/geometry/vector"

// Position is a point in the firing plane in meters: X downrange, Y altitude.
type Position struct {
	vector.Vec2
}

func NewPosition(x, y float64) Position {
	return Position{vector.NewVec2(x, y)}
}

// Altitude is the height above the muzzle datum.
func (p Position) Altitude() float64 { return p.Y }

// Distance returns the straight line distance to o.
func (p Position) Distance(o Position) float64 {
	return p.Sub(o.Vec2).Norm()
}

// Advance moves the position over dt seconds under constant
// acceleration: s = s + v t + ½ a t²
func (p *Position) Advance(v Velocity, a Accelerator, dt float64) {
	p.X += v.DX()*dt + 0.5*a.DDX()*dt*dt
	p.Y += v.DY()*dt + 0.5*a.DDY()*dt*dt
}
