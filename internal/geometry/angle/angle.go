// Package angle provides a direction in the firing plane.
//
// Angles are measured clockwise from straight up: 0 points up, π/2 points
// right (downrange), π points down.
//
//	        dx
//	   +-------/
//	   |      /
//	dy |     /
//	   |    / 1.0
//	   | a /
//	   |  /
//	   | /
//
//	dx = sin a
//	dy = cos a
package angle

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// Angle is a direction stored in radians, always in [0, 2π).
// The zero value points up.
type Angle struct {
	radians float64
}

// FromRadians creates an Angle from radians of any magnitude.
func FromRadians(r float64) Angle {
	return Angle{radians: Normalize(r)}
}

// FromDegrees creates an Angle from degrees of any magnitude.
func FromDegrees(d float64) Angle {
	return Angle{radians: Normalize(ToRadians(d))}
}

// FromDxDy creates the Angle pointing along (dx, dy).
func FromDxDy(dx, dy float64) Angle {
	var a Angle
	a.SetDxDy(dx, dy)
	return a
}

// Normalize maps r into [0, 2π).
func Normalize(r float64) float64 {
	switch {
	case r >= twoPi:
		r -= twoPi * math.Floor(r/twoPi)
	case r < 0:
		r += twoPi * math.Ceil(-r/twoPi)
	}
	// Rounding can land exactly on 2π (e.g. -1e-18) or drift a hair past it.
	if r >= twoPi || r < 0 {
		return 0
	}
	return r
}

// NormalizeDegrees maps d into [0, 360).
func NormalizeDegrees(d float64) float64 {
	return ToDegrees(Normalize(ToRadians(d)))
}

// ToDegrees converts radians to degrees: radians / 2π = degrees / 360.
func ToDegrees(r float64) float64 { return r / twoPi * 360.0 }

// ToRadians converts degrees to radians.
func ToRadians(d float64) float64 { return d / 360.0 * twoPi }

func (a Angle) Radians() float64 { return a.radians }
func (a Angle) Degrees() float64 { return ToDegrees(a.radians) }

// Dx is the horizontal component of the unit vector.
func (a Angle) Dx() float64 { return math.Sin(a.radians) }

// Dy is the vertical component of the unit vector.
func (a Angle) Dy() float64 { return math.Cos(a.radians) }

// IsRight reports whether the angle points into the right half plane.
func (a Angle) IsRight() bool { return a.radians > 0 && a.radians < math.Pi }

// IsLeft reports whether the angle points into the left half plane.
func (a Angle) IsLeft() bool { return a.radians > math.Pi }

func (a *Angle) SetRadians(r float64) { a.radians = Normalize(r) }
func (a *Angle) SetDegrees(d float64) { a.SetRadians(ToRadians(d)) }

func (a *Angle) SetUp()    { a.SetRadians(0) }
func (a *Angle) SetDown()  { a.SetRadians(math.Pi) }
func (a *Angle) SetRight() { a.SetRadians(math.Pi / 2) }
func (a *Angle) SetLeft()  { a.SetRadians(math.Pi + math.Pi/2) }

// SetDxDy points the angle along (dx, dy). Note the argument order to
// Atan2 is swapped because 0 is up, not right.
func (a *Angle) SetDxDy(dx, dy float64) { a.SetRadians(math.Atan2(dx, dy)) }

// Reverse turns the angle around by π.
func (a *Angle) Reverse() { a.SetRadians(a.radians + math.Pi) }

// AddRadians rotates the angle clockwise by r.
func (a *Angle) AddRadians(r float64) { a.SetRadians(a.radians + r) }

// Add returns the sum of two angles.
func (a Angle) Add(o Angle) Angle { return FromRadians(a.radians + o.radians) }

// AddDegrees returns a copy rotated clockwise by d degrees.
func (a Angle) AddDegrees(d float64) Angle { return FromRadians(a.radians + ToRadians(d)) }

// String renders the angle in degrees, e.g. "90degree".
func (a Angle) String() string {
	return fmt.Sprintf("%gdegree", a.Degrees())
}
