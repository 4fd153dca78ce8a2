package main

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	pngMargin     = 48.0
	pngDotRadius  = 7.5
	pngRingRadius = 27.0
)

func (m *model) exportVisualTXT(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	canvas, _ := m.canvas.renderGrid(m.store.Points(), m.drag.TargetID())
	for _, line := range canvas {
		fmt.Fprintln(file, string(line))
	}
	fmt.Fprintln(file, xAxisCaption)
	return nil
}

// exportChartPNG draws the chart at its screen-space pixel size, plus a
// margin for the axis captions.
func exportChartPNG(filename string, points []Point, grid Grid, activeID int) error {
	size := grid.Size
	total := int(size + 2*pngMargin)

	dc := gg.NewContext(total, total)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// Frame and axes.
	dc.SetColor(color.Black)
	dc.SetLineWidth(2)
	dc.DrawRectangle(pngMargin, pngMargin, size, size)
	dc.Stroke()
	dc.SetLineWidth(1)
	dc.DrawLine(pngMargin, pngMargin+size/2, pngMargin+size, pngMargin+size/2)
	dc.DrawLine(pngMargin+size/2, pngMargin, pngMargin+size/2, pngMargin+size)
	dc.Stroke()

	dc.SetColor(color.Gray{Y: 0x6B})
	pad := 8.0
	dc.DrawStringAnchored(quadrantNames[0], pngMargin+pad, pngMargin+pad, 0, 1)
	dc.DrawStringAnchored(quadrantNames[1], pngMargin+size-pad, pngMargin+pad, 1, 1)
	dc.DrawStringAnchored(quadrantNames[2], pngMargin+pad, pngMargin+size-pad, 0, 0)
	dc.DrawStringAnchored(quadrantNames[3], pngMargin+size-pad, pngMargin+size-pad, 1, 0)

	dc.SetColor(color.Black)
	dc.DrawStringAnchored(xAxisCaption, pngMargin, pngMargin+size+pngMargin/2, 0, 0.5)
	dc.Push()
	dc.RotateAbout(-math.Pi/2, pngMargin/2, pngMargin+size)
	dc.DrawStringAnchored(yAxisCaption, pngMargin/2, pngMargin+size, 0, 0.5)
	dc.Pop()

	dc.Push()
	dc.DrawRectangle(pngMargin, pngMargin, size, size)
	dc.Clip()
	for _, p := range points {
		drawPointPNG(dc, p, grid.Mapper, p.ID == activeID)
	}
	dc.Pop()

	return dc.SavePNG(filename)
}

func drawPointPNG(dc *gg.Context, p Point, mapper Mapper, active bool) {
	sx, sy := mapper.ToScreen(p.X.Float(), p.Y.Float())
	x, y := pngMargin+sx, pngMargin+sy

	if active {
		dc.SetRGBA255(0xFF, 0xA5, 0x00, 0x60)
		dc.DrawCircle(x, y, pngRingRadius)
		dc.Fill()
	}
	dc.SetRGB255(0x7C, 0x3A, 0xED)
	dc.DrawCircle(x, y, pngDotRadius)
	dc.Fill()

	dc.SetColor(color.Black)
	dc.DrawString(displayLabel(p.Label), x+5, y+20)
}
