package sim

import (
	"howitzer/internal/physics"
)

// Sample is the projectile state at one instant.
type Sample struct {
	T float64 `json:"t" yaml:"t"` // seconds since firing

	X        float64 `json:"x" yaml:"x"`               // meters downrange
	Altitude float64 `json:"altitude" yaml:"altitude"` // meters

	Vx float64 `json:"vx" yaml:"vx"`
	Vy float64 `json:"vy" yaml:"vy"`

	Speed    float64 `json:"speed" yaml:"speed"` // m/s
	Mach     float64 `json:"mach" yaml:"mach"`
	AngleDeg float64 `json:"angleDeg" yaml:"angle_deg"` // direction of travel
}

func newSample(t float64, pos physics.Position, vel physics.Velocity, mach float64) Sample {
	return Sample{
		T:        t,
		X:        pos.X,
		Altitude: pos.Altitude(),
		Vx:       vel.DX(),
		Vy:       vel.DY(),
		Speed:    vel.Speed(),
		Mach:     mach,
		AngleDeg: vel.Angle().Degrees(),
	}
}

func (s Sample) Position() physics.Position { return physics.NewPosition(s.X, s.Altitude) }
func (s Sample) Velocity() physics.Velocity { return physics.NewVelocity(s.Vx, s.Vy) }

// Trajectory is the flight of one shot from muzzle to impact.
type Trajectory struct {
	Shot    Shot
	Samples []Sample // first is the muzzle, last is the impact
}

func (t *Trajectory) Impact() Sample { return t.Samples[len(t.Samples)-1] }

// Distance is how far downrange the shell landed.
func (t *Trajectory) Distance() float64 { return t.Impact().X }

// HangTime is the time of flight in seconds.
func (t *Trajectory) HangTime() float64 { return t.Impact().T }

// MaxAltitude is the apex of the flight.
func (t *Trajectory) MaxAltitude() float64 {
	apex := t.Samples[0].Altitude
	for _, s := range t.Samples[1:] {
		apex = max(apex, s.Altitude)
	}
	return apex
}

// Report summarizes the trajectory, keeping every nth sample. n <= 0 keeps
// no samples.
func (t *Trajectory) Report(n int) Report {
	r := Report{
		ShotID:      t.Shot.ID.String(),
		AngleDeg:    t.Shot.Angle.Degrees(),
		MuzzleSpeed: t.Shot.MuzzleSpeed,
		Distance:    t.Distance(),
		HangTime:    t.HangTime(),
		MaxAltitude: t.MaxAltitude(),
		ImpactSpeed: t.Impact().Speed,
		Impact:      t.Impact(),
	}
	if n > 0 {
		for i := 0; i < len(t.Samples); i += n {
			r.Samples = append(r.Samples, t.Samples[i])
		}
	}
	return r
}

// Report is the printable result of a shot.
type Report struct {
	ShotID      string  `json:"shotId" yaml:"shot_id"`
	AngleDeg    float64 `json:"angleDeg" yaml:"angle_deg"`
	MuzzleSpeed float64 `json:"muzzleSpeed" yaml:"muzzle_speed"`

	Distance    float64 `json:"distance" yaml:"distance"`        // meters
	HangTime    float64 `json:"hangTime" yaml:"hang_time"`       // seconds
	MaxAltitude float64 `json:"maxAltitude" yaml:"max_altitude"` // meters
	ImpactSpeed float64 `json:"impactSpeed" yaml:"impact_speed"` // m/s

	Impact  Sample   `json:"impact" yaml:"impact"`
	Samples []Sample `json:"samples,omitempty" yaml:"samples,omitempty"`
}
