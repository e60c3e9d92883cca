package env

import (
	"math"

	"howitzer/internal/physics"
)

// Drag is air resistance on a round-nosed shell.
//
//	force = ½ c ρ v² a
//
// where c is the drag coefficient at the current Mach number, ρ the air
// density at altitude, v the speed through the air and a the frontal area.
type Drag struct {
	// Mass of the shell in kg
	Mass float64
	// Diameter of the shell in m
	Diameter float64
	// Wind the shell flies through
	Wind Wind
}

// Area is the frontal area of the shell in m².
func (d Drag) Area() float64 {
	r := d.Diameter / 2
	return math.Pi * r * r
}

// Force returns the drag force in newtons at the given altitude and airspeed.
func (d Drag) Force(altitude, airspeed float64) float64 {
	mach := airspeed / SpeedOfSoundFromAltitude(altitude)
	c := DragFromMach(mach)
	rho := DensityFromAltitude(altitude)
	return 0.5 * c * rho * airspeed * airspeed * d.Area()
}

// Acceleration points against the shell's motion relative to the air.
func (d Drag) Acceleration(pos physics.Position, vel physics.Velocity) physics.Acceleration {
	air := d.Wind.Relative(vel)
	speed := air.Speed()
	if speed == 0 || d.Mass <= 0 {
		return physics.Acceleration{}
	}

	dir := air.Angle()
	dir.Reverse()
	return physics.AccelerationFromAngle(d.Force(pos.Altitude(), speed)/d.Mass, dir)
}

// Mach returns the speed as a multiple of the local speed of sound.
func Mach(altitude float64, vel physics.Velocity) float64 {
	return vel.Speed() / SpeedOfSoundFromAltitude(altitude)
}
