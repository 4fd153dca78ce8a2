package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Grid lays the screen-space plane over terminal cells.
type Grid struct {
	Mapper     Mapper
	Size       float64
	CellWidth  float64
	CellHeight float64
	Cols       int
	Rows       int
}

func NewGrid(mapper Mapper, size, cellWidth, cellHeight float64) Grid {
	g := Grid{
		Mapper:     mapper,
		Size:       size,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Cols:       int(size / cellWidth),
		Rows:       int(size / cellHeight),
	}
	if g.Cols < 1 {
		g.Cols = 1
	}
	if g.Rows < 1 {
		g.Rows = 1
	}
	return g
}

// CellCenter returns the pixel at the centre of a cell. Cells outside the
// chart still map to pixels, which a drag may need.
func (g Grid) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * g.CellWidth, (float64(row) + 0.5) * g.CellHeight
}

func (g Grid) PixelToCell(px, py float64) (int, int) {
	return int(math.Floor(px / g.CellWidth)), int(math.Floor(py / g.CellHeight))
}

// PointCell returns the cell a point is drawn in, and false when the point
// lies outside the chart.
func (g Grid) PointCell(p Point) (int, int, bool) {
	px, py := g.Mapper.ToScreen(p.X.Float(), p.Y.Float())
	if px < 0 || py < 0 || px > g.Size || py > g.Size {
		return 0, 0, false
	}
	col, row := g.PixelToCell(px, py)
	if col >= g.Cols {
		col = g.Cols - 1
	}
	if row >= g.Rows {
		row = g.Rows - 1
	}
	return col, row, true
}

type cellKind int

const (
	kindEmpty cellKind = iota
	kindAxis
	kindQuadrant
	kindDot
	kindActiveDot
	kindLabel
)

const (
	dotRune       = '●'
	activeDotRune = '◉'
	labelGap      = 2
)

var quadrantNames = [4]string{"Challengers", "Leaders", "Niche Players", "Visionaries"}

var (
	axisStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#243141"))
	quadrantStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})
	dotStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
	activeDotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6"))
)

type Canvas struct {
	grid Grid
}

func NewCanvas(grid Grid) *Canvas {
	return &Canvas{grid: grid}
}

func (c *Canvas) Grid() Grid {
	return c.grid
}

// renderGrid draws the chart. activeID marks the dragged point, -1 for none.
func (c *Canvas) renderGrid(points []Point, activeID int) ([][]rune, [][]cellKind) {
	cols, rows := c.grid.Cols, c.grid.Rows
	canvas := make([][]rune, rows)
	kinds := make([][]cellKind, rows)
	for y := range canvas {
		canvas[y] = []rune(strings.Repeat(" ", cols))
		kinds[y] = make([]cellKind, cols)
	}

	midX, midY := cols/2, rows/2
	for y := 0; y < rows; y++ {
		canvas[y][midX] = '│'
		kinds[y][midX] = kindAxis
	}
	for x := 0; x < cols; x++ {
		canvas[midY][x] = '─'
		kinds[midY][x] = kindAxis
	}
	canvas[midY][midX] = '┼'

	c.drawTextAt(canvas, kinds, quadrantNames[0], 1, 0, kindQuadrant)
	c.drawTextAt(canvas, kinds, quadrantNames[1], cols-1-len(quadrantNames[1]), 0, kindQuadrant)
	c.drawTextAt(canvas, kinds, quadrantNames[2], 1, rows-1, kindQuadrant)
	c.drawTextAt(canvas, kinds, quadrantNames[3], cols-1-len(quadrantNames[3]), rows-1, kindQuadrant)

	for _, p := range points {
		col, row, ok := c.grid.PointCell(p)
		if !ok {
			continue
		}
		marker, kind := dotRune, kindDot
		if p.ID == activeID {
			marker, kind = activeDotRune, kindActiveDot
		}
		canvas[row][col] = marker
		kinds[row][col] = kind
		c.drawTextAt(canvas, kinds, displayLabel(p.Label), col+labelGap, row, kindLabel)
	}

	return canvas, kinds
}

// Render returns the styled chart lines.
func (c *Canvas) Render(points []Point, activeID int) []string {
	canvas, kinds := c.renderGrid(points, activeID)
	lines := make([]string, len(canvas))
	for y, line := range canvas {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(line); x++ {
			if x < len(line) && kinds[y][x] == kinds[y][start] {
				continue
			}
			b.WriteString(styleFor(kinds[y][start]).Render(string(line[start:x])))
			start = x
		}
		lines[y] = b.String()
	}
	return lines
}

func styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case kindAxis:
		return axisStyle
	case kindQuadrant:
		return quadrantStyle
	case kindDot:
		return dotStyle
	case kindActiveDot:
		return activeDotStyle
	case kindLabel:
		return labelStyle
	default:
		return lipgloss.NewStyle()
	}
}

func (c *Canvas) drawTextAt(canvas [][]rune, kinds [][]cellKind, text string, x, y int, kind cellKind) {
	if y < 0 || y >= len(canvas) {
		return
	}
	for i, r := range []rune(text) {
		if c.isValidPos(canvas, x+i, y) {
			canvas[y][x+i] = r
			kinds[y][x+i] = kind
		}
	}
}

func (c *Canvas) isValidPos(canvas [][]rune, x, y int) bool {
	return y >= 0 && y < len(canvas) && x >= 0 && x < len(canvas[y])
}

// PointAt returns the id of the top-most point whose dot or label covers the
// cell, or -1.
func (c *Canvas) PointAt(points []Point, col, row int) int {
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		pc, pr, ok := c.grid.PointCell(p)
		if !ok || pr != row {
			continue
		}
		if col == pc {
			return p.ID
		}
		labelLen := len([]rune(displayLabel(p.Label)))
		if labelLen > 0 && col >= pc+labelGap && col < pc+labelGap+labelLen {
			return p.ID
		}
	}
	return -1
}

func displayLabel(label string) string {
	label = strings.ReplaceAll(label, "\r", " ")
	return strings.ReplaceAll(label, "\n", " ")
}
