package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/protocols/internal/geometry"
)

func TestZeroRect(t *testing.T) {
	var r geometry.Rect
	assert.Equal(t, geometry.Point{}, r.Origin)
	assert.Equal(t, geometry.Size{}, r.Size)
}

func TestNewRectCentered(t *testing.T) {
	r := geometry.NewRectCentered(geometry.Point{X: 4, Y: 4}, geometry.Size{Width: 3, Height: 3})
	assert.Equal(t, geometry.Point{X: 2.5, Y: 2.5}, r.Origin)
	assert.Equal(t, geometry.Size{Width: 3, Height: 3}, r.Size)
}

func TestProperty_CenterRoundTrips(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := geometry.Point{
			X: rapid.Float64Range(-1e6, 1e6).Draw(rt, "x"),
			Y: rapid.Float64Range(-1e6, 1e6).Draw(rt, "y"),
		}
		s := geometry.Size{
			Width:  rapid.Float64Range(0, 1e6).Draw(rt, "w"),
			Height: rapid.Float64Range(0, 1e6).Draw(rt, "h"),
		}
		got := geometry.NewRectCentered(c, s).Center()
		assert.InDelta(rt, c.X, got.X, 1e-6)
		assert.InDelta(rt, c.Y, got.Y, 1e-6)
	})
}
