/*
Copyright © 2026 the lqtld authors.
This file is part of lqtld.

lqtld is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

lqtld is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with lqtld.  If not, see <http://www.gnu.org/licenses/>.
*/

package lqtld

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/ctessum/geom"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// valueColor maps a grid value to a pixel: 0 is black, 1 is white and
// anything else is read as 0xRRGGBB.
func valueColor(v int) color.RGBA {
	switch v {
	case 0:
		return color.RGBA{A: 255}
	case 1:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	default:
		return color.RGBA{
			R: uint8(v >> 16 & 255),
			G: uint8(v >> 8 & 255),
			B: uint8(v & 255),
			A: 255,
		}
	}
}

// GridImage renders g one pixel per value.
func GridImage(g *Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	for row := 0; row < g.Rows; row++ {
		for col, v := range g.Row(row) {
			img.SetRGBA(col, row, valueColor(v))
		}
	}
	return img
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("lqtld.WritePNG: %v", err)
	}
	return nil
}

// LeafOutline is the line style PlotLeaves outlines leaves with.
var LeafOutline = draw.LineStyle{
	Color: valueColor(BorderMarker),
	Width: vg.Points(0.5),
}

// PlotLeaves draws the leaves of t onto a width×height image canvas.
// Uniform leaves are filled with their color and forced Gray leaves are
// shaded by generation.
func PlotLeaves(t *Tree, width, height vg.Length) (*vgimg.Canvas, error) {
	c := vgimg.New(width, height)
	dc := draw.New(c)

	cm := moreland.ExtendedBlackBody()
	cm.SetMin(0)
	cm.SetMax(math.Max(float64(t.r), 1))

	for _, leaf := range t.Leaves() {
		var fill color.Color
		switch leaf.Color {
		case White:
			fill = color.White
		case Black:
			fill = color.Black
		default:
			var err error
			fill, err = cm.At(float64(leaf.Generation))
			if err != nil {
				return nil, fmt.Errorf("lqtld.PlotLeaves: %v", err)
			}
		}
		pts := canvasPoints(dc, float64(t.Side()), t.Bounds(leaf))
		dc.FillPolygon(fill, pts)
		dc.StrokeLines(LeafOutline, append(pts, pts[0]))
	}
	return c, nil
}

// WritePlotPNG encodes a canvas made by PlotLeaves to w.
func WritePlotPNG(w io.Writer, c *vgimg.Canvas) error {
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("lqtld.WritePlotPNG: %v", err)
	}
	return nil
}

// canvasPoints converts the pixel-space box b of an n-pixel grid to the
// corners of a canvas polygon. Grid rows run downward and canvas Y runs
// upward.
func canvasPoints(dc draw.Canvas, n float64, b *geom.Bounds) []vg.Point {
	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	x := func(v float64) vg.Length { return dc.Min.X + vg.Length(v/n)*w }
	y := func(v float64) vg.Length { return dc.Max.Y - vg.Length(v/n)*h }
	return []vg.Point{
		{X: x(b.Min.X), Y: y(b.Min.Y)},
		{X: x(b.Max.X), Y: y(b.Min.Y)},
		{X: x(b.Max.X), Y: y(b.Max.Y)},
		{X: x(b.Min.X), Y: y(b.Max.Y)},
	}
}
