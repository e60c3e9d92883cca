package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := NewVec2(3, 4)
	b := Vec2{X: 1, Y: -2}

	assert.Equal(t, Vec2{4, 2}, a.Add(b))
	assert.Equal(t, Vec2{2, 6}, a.Sub(b))
	assert.Equal(t, Vec2{6, 8}, a.Mul(2))
	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Norm())
}

func TestLerp(t *testing.T) {
	a := Vec2{0, 10}
	b := Vec2{10, 0}

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec2{5, 5}, a.Lerp(b, 0.5))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())

	n := Vec2{3, 4}.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.InDelta(t, 1.0, n.Norm(), 1e-12)
}
