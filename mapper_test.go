package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapper_ToScreen(t *testing.T) {
	m := NewMapper(4, 400)

	tests := []struct {
		name   string
		x, y   float64
		sx, sy float64
	}{
		{"origin is bottom left", 0, 0, 0, 400},
		{"centre", 50, 50, 200, 200},
		{"top right", 100, 100, 400, 0},
		{"upper left quadrant", 20, 80, 80, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := m.ToScreen(tt.x, tt.y)
			assert.Equal(t, tt.sx, sx)
			assert.Equal(t, tt.sy, sy)
		})
	}
}

func TestMapper_ToDataFlipsVertical(t *testing.T) {
	m := NewMapper(4, 400)

	dx, dy := m.ToData(80, 40)
	assert.Equal(t, 20.0, dx)
	assert.Equal(t, -10.0, dy)
}

func TestMapper_RoundTrip(t *testing.T) {
	m := NewMapper(4, 400)
	ox, oy := m.ToScreen(0, 0)

	for _, p := range [][2]float64{{0, 0}, {12.5, 87.25}, {-3, 140}, {99.999, 0.001}, {50, 50}} {
		sx, sy := m.ToScreen(p[0], p[1])
		x, y := m.ToData(sx-ox, sy-oy)
		assert.InDelta(t, p[0], x, 1e-9)
		assert.InDelta(t, p[1], y, 1e-9)
	}
}
