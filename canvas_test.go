package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid() Grid {
	return NewGrid(NewMapper(4, 400), 400, 8, 16)
}

func TestGrid_Dimensions(t *testing.T) {
	g := testGrid()
	assert.Equal(t, 50, g.Cols)
	assert.Equal(t, 25, g.Rows)
}

func TestGrid_CellConversions(t *testing.T) {
	g := testGrid()

	px, py := g.CellCenter(25, 12)
	assert.Equal(t, 204.0, px)
	assert.Equal(t, 200.0, py)

	col, row := g.PixelToCell(px, py)
	assert.Equal(t, 25, col)
	assert.Equal(t, 12, row)

	col, row = g.PixelToCell(-1, -1)
	assert.Equal(t, -1, col)
	assert.Equal(t, -1, row)
}

func TestGrid_PointCell(t *testing.T) {
	g := testGrid()

	tests := []struct {
		name     string
		p        Point
		col, row int
		ok       bool
	}{
		{"centre", Point{X: Number(50), Y: Number(50)}, 25, 12, true},
		{"upper left", Point{X: Number(20), Y: Number(80)}, 10, 5, true},
		{"origin clamps to last row", Point{X: Number(0), Y: Number(0)}, 0, 24, true},
		{"top right clamps to last column", Point{X: Number(100), Y: Number(100)}, 49, 0, true},
		{"outside", Point{X: Number(150), Y: Number(50)}, 0, 0, false},
		{"below", Point{X: Number(10), Y: Number(-5)}, 0, 0, false},
		{"text coerces to zero", Point{X: Text("abc"), Y: Text("50")}, 0, 12, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := g.PointCell(tt.p)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.col, col)
				assert.Equal(t, tt.row, row)
			}
		})
	}
}

func TestCanvas_RenderGridDrawsDotsAndLabels(t *testing.T) {
	c := NewCanvas(testGrid())

	grid, kinds := c.renderGrid(testPoints(), -1)
	require.Len(t, grid, 25)
	require.Len(t, grid[0], 50)

	assert.Equal(t, dotRune, grid[12][25])
	assert.Equal(t, kindDot, kinds[12][25])
	assert.Equal(t, 'A', grid[12][27])
	assert.Equal(t, dotRune, grid[5][10])
	assert.Equal(t, 'B', grid[5][12])
	assert.Equal(t, dotRune, grid[20][40])
}

func TestCanvas_RenderGridMarksActivePoint(t *testing.T) {
	c := NewCanvas(testGrid())

	grid, kinds := c.renderGrid(testPoints(), 2)
	assert.Equal(t, activeDotRune, grid[5][10])
	assert.Equal(t, kindActiveDot, kinds[5][10])
	assert.Equal(t, dotRune, grid[12][25])
	assert.Equal(t, dotRune, grid[20][40])
}

func TestCanvas_RenderGridDrawsAxesAndQuadrants(t *testing.T) {
	c := NewCanvas(testGrid())

	grid, _ := c.renderGrid(nil, -1)
	assert.Equal(t, '┼', grid[12][25])
	assert.Equal(t, '│', grid[3][25])
	assert.Equal(t, '─', grid[12][3])
	assert.True(t, strings.Contains(string(grid[0]), "Challengers"))
	assert.True(t, strings.Contains(string(grid[0]), "Leaders"))
	assert.True(t, strings.Contains(string(grid[24]), "Niche Players"))
	assert.True(t, strings.Contains(string(grid[24]), "Visionaries"))
}

func TestCanvas_RenderHasOneLinePerRow(t *testing.T) {
	c := NewCanvas(testGrid())
	lines := c.Render(testPoints(), 1)
	assert.Len(t, lines, 25)
}

func TestCanvas_LabelsAreClippedAndFlattened(t *testing.T) {
	c := NewCanvas(testGrid())
	points := []Point{{ID: 1, X: Number(95), Y: Number(50), Label: "a very long\nlabel"}}

	grid, _ := c.renderGrid(points, -1)
	assert.Len(t, grid[12], 50)
	assert.Equal(t, 'a', grid[12][49])
}

func TestCanvas_PointAt(t *testing.T) {
	c := NewCanvas(testGrid())
	points := testPoints()

	assert.Equal(t, 1, c.PointAt(points, 25, 12))
	assert.Equal(t, 1, c.PointAt(points, 27, 12), "label is grabbable")
	assert.Equal(t, 2, c.PointAt(points, 10, 5))
	assert.Equal(t, -1, c.PointAt(points, 26, 12), "gap between dot and label")
	assert.Equal(t, -1, c.PointAt(points, 0, 0))
}

func TestCanvas_PointAtPrefersTopMost(t *testing.T) {
	c := NewCanvas(testGrid())
	points := []Point{
		{ID: 1, X: Number(50), Y: Number(50), Label: "under"},
		{ID: 2, X: Number(50), Y: Number(50), Label: "over"},
	}
	assert.Equal(t, 2, c.PointAt(points, 25, 12))
}
