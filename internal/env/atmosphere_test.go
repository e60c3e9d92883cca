package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravityFromAltitude(t *testing.T) {
	assert.Equal(t, 9.807, GravityFromAltitude(0))
	assert.InDelta(t, 9.8055, GravityFromAltitude(500), 1e-9)
	assert.Equal(t, 9.807, GravityFromAltitude(-100))
	assert.Equal(t, 9.730, GravityFromAltitude(100000))
	assert.InDelta(t, 9.753, GravityFromAltitude(17500), 1e-9)
}

func TestDensityFromAltitude(t *testing.T) {
	assert.Equal(t, 1.225, DensityFromAltitude(0))
	assert.InDelta(t, (1.225+1.112)/2, DensityFromAltitude(500), 1e-9)
	assert.Equal(t, 0.0000185, DensityFromAltitude(1e6))
	assert.Equal(t, 1.225, DensityFromAltitude(-50))
}

func TestSpeedOfSoundFromAltitude(t *testing.T) {
	assert.Equal(t, 340.0, SpeedOfSoundFromAltitude(0))
	assert.InDelta(t, 338.0, SpeedOfSoundFromAltitude(500), 1e-9)
	assert.Equal(t, 295.0, SpeedOfSoundFromAltitude(22000))
	assert.Equal(t, 324.0, SpeedOfSoundFromAltitude(50000))
}

func TestDragFromMach(t *testing.T) {
	assert.Equal(t, 0.1629, DragFromMach(0))
	assert.Equal(t, 0.4258, DragFromMach(1))
	assert.InDelta(t, (0.1629+0.1659)/2, DragFromMach(0.4), 1e-9)
	assert.Equal(t, 0.2656, DragFromMach(9))
}
