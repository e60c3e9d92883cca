package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"howitzer/internal/geometry/angle"
)

// M795 155mm high explosive shell fired at charge 8.
const (
	DefaultMuzzleSpeed = 827.0   // m/s
	DefaultMass        = 46.7    // kg
	DefaultDiameter    = 0.15489 // m
)

var ErrInvalidShot = errors.New("invalid shot")

// Shot describes one round leaving the barrel.
type Shot struct {
	ID uuid.UUID

	// Angle of the barrel, 0 = straight up, 90° = level downrange
	Angle       angle.Angle
	MuzzleSpeed float64 // m/s
	Mass        float64 // kg
	Diameter    float64 // m
}

// NewShot returns an M795 round fired at the given barrel angle in degrees.
func NewShot(angleDegrees, muzzleSpeed float64) Shot {
	return Shot{
		ID:          uuid.New(),
		Angle:       angle.FromDegrees(angleDegrees),
		MuzzleSpeed: muzzleSpeed,
		Mass:        DefaultMass,
		Diameter:    DefaultDiameter,
	}
}

func (s Shot) Validate() error {
	switch {
	case !(s.MuzzleSpeed > 0) || math.IsInf(s.MuzzleSpeed, 0):
		return fmt.Errorf("%w: muzzle speed %g", ErrInvalidShot, s.MuzzleSpeed)
	case !(s.Mass > 0):
		return fmt.Errorf("%w: mass %g", ErrInvalidShot, s.Mass)
	case !(s.Diameter >= 0):
		return fmt.Errorf("%w: diameter %g", ErrInvalidShot, s.Diameter)
	}
	return nil
}
