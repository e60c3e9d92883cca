package sim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"howitzer/internal/env"
	"howitzer/internal/physics"
)

var ErrNoImpact = errors.New("projectile did not land")

type Config struct {
	TimeStep      float64 // seconds per tick
	MaxFlightTime float64 // seconds before giving up on a shot

	Wind    env.Wind
	Terrain env.Terrain

	// Environment overrides the standard gravity and drag chain built for
	// each shot.
	Environment env.Effect
}

// Simulator flies shots through the environment one tick at a time.
type Simulator struct {
	cfg    Config
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Simulator {
	if !(cfg.TimeStep > 0) {
		cfg.TimeStep = 0.01
	}
	if !(cfg.MaxFlightTime > 0) {
		cfg.MaxFlightTime = 600
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{cfg: cfg, logger: logger}
}

func (s *Simulator) environment(shot Shot) env.Effect {
	if s.cfg.Environment != nil {
		return s.cfg.Environment
	}
	return env.Standard(shot.Mass, shot.Diameter, s.cfg.Wind)
}

// Fire flies the shot from the muzzle, at the origin, until it drops below
// the terrain. The last sample is the interpolated point of impact.
func (s *Simulator) Fire(ctx context.Context, shot Shot) (*Trajectory, error) {
	if err := shot.Validate(); err != nil {
		return nil, err
	}

	pos := physics.Position{}
	if s.cfg.Terrain.Below(pos) {
		return nil, fmt.Errorf("%w: muzzle is below terrain at %gm",
			ErrInvalidShot, s.cfg.Terrain.GroundAltitude(pos.X))
	}

	log := s.logger.With(zap.Stringer("shot", shot.ID))
	log.Debug("firing",
		zap.Stringer("angle", shot.Angle),
		zap.Float64("muzzleSpeed", shot.MuzzleSpeed),
		zap.Float64("timeStep", s.cfg.TimeStep))

	effects := s.environment(shot)
	dt := s.cfg.TimeStep
	vel := physics.VelocityFromAngle(shot.MuzzleSpeed, shot.Angle)

	traj := &Trajectory{
		Shot:    shot,
		Samples: []Sample{newSample(0, pos, vel, env.Mach(pos.Altitude(), vel))},
	}

	for tick := 1; ; tick++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t := float64(tick) * dt
		if t > s.cfg.MaxFlightTime {
			log.Warn("no impact", zap.Float64("maxFlightTime", s.cfg.MaxFlightTime))
			return nil, fmt.Errorf("%w after %gs", ErrNoImpact, s.cfg.MaxFlightTime)
		}

		a := effects.Acceleration(pos, vel)
		prev, prevVel := pos, vel
		pos.Advance(vel, a, dt)
		vel.AddAcceleration(a, dt)

		if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
			return nil, fmt.Errorf("%w: state diverged at %gs", ErrNoImpact, t)
		}

		if s.cfg.Terrain.Below(pos) {
			impact := s.impact(t-dt, prev, prevVel, pos, vel)
			traj.Samples = append(traj.Samples, impact)
			log.Info("impact",
				zap.Float64("distance", impact.X),
				zap.Float64("hangTime", impact.T),
				zap.Float64("impactSpeed", impact.Speed))
			return traj, nil
		}

		traj.Samples = append(traj.Samples, newSample(t, pos, vel, env.Mach(pos.Altitude(), vel)))
	}
}

// impact interpolates between the last sample above ground and the first
// one below it.
func (s *Simulator) impact(t0 float64, above physics.Position, aboveVel physics.Velocity,
	below physics.Position, belowVel physics.Velocity) Sample {
	ground := s.cfg.Terrain.GroundAltitude(below.X)

	f := 1.0
	if drop := above.Altitude() - below.Altitude(); drop > 0 {
		f = (above.Altitude() - ground) / drop
	}

	pos := physics.Position{Vec2: above.Lerp(below.Vec2, f)}
	pos.Y = ground
	vel := physics.NewVelocity(
		aboveVel.DX()+(belowVel.DX()-aboveVel.DX())*f,
		aboveVel.DY()+(belowVel.DY()-aboveVel.DY())*f,
	)
	return newSample(t0+f*s.cfg.TimeStep, pos, vel, env.Mach(ground, vel))
}
