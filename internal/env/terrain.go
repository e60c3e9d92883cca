package env

import (
	"howitzer/internal/physics"
)

// Terrain is flat ground at a fixed elevation relative to the muzzle.
type Terrain struct {
	// Elevation of the ground in meters (negative = below the gun)
	Elevation float64
}

// GroundAltitude returns the terrain height at downrange distance x.
func (t Terrain) GroundAltitude(x float64) float64 {
	return t.Elevation
}

// Below reports whether pos is under the ground.
func (t Terrain) Below(pos physics.Position) bool {
	return pos.Altitude() < t.GroundAltitude(pos.X)
}

// DefaultTerrain returns level ground at the gun's height.
func DefaultTerrain() Terrain {
	return Terrain{}
}
