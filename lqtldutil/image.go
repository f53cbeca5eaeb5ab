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

package lqtldutil

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/lqtld"
	"gonum.org/v1/plot/vg"
)

// DecodeGrid decodes a PNG image into an occupancy grid. A pixel is
// occupied (1) if its red channel is at least threshold and empty (0)
// otherwise.
func DecodeGrid(r io.Reader, threshold int) (*lqtld.Grid, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("lqtld: decoding grid image: %v", err)
	}
	b := img.Bounds()
	g := lqtld.NewGrid(b.Dy(), b.Dx())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+col, b.Min.Y+row)).(color.NRGBA)
			if int(c.R) >= threshold {
				g.Set(row, col, 1)
			}
		}
	}
	return g, nil
}

// ReadGrid reads the PNG file at path into an occupancy grid.
func ReadGrid(path string, threshold int) (*lqtld.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lqtld: %v", err)
	}
	defer f.Close()
	return DecodeGrid(f, threshold)
}

// EncodeGrid writes g as a PNG image to w.
func EncodeGrid(w io.Writer, g *lqtld.Grid) error {
	return lqtld.WritePNG(w, lqtld.GridImage(g))
}

// WriteBorders writes a copy of the grid of t to path as a PNG, with the
// borders of usable cells drawn in marker.
func WriteBorders(path string, t *lqtld.Tree, marker int) error {
	g := t.Grid().Copy()
	n := lqtld.DrawUsableCells(g, t, marker)
	if err := writeFile(path, func(w io.Writer) error { return EncodeGrid(w, g) }); err != nil {
		return err
	}
	Log.WithFields(logrus.Fields{"file": path, "cells": n}).Info("wrote cell borders")
	return nil
}

// WritePlot renders the leaves of t to a width×height point PNG at path.
func WritePlot(path string, t *lqtld.Tree, width, height float64) error {
	if !(width > 0) || !(height > 0) {
		return fmt.Errorf("lqtld: plot size is %gx%g but should be >0", width, height)
	}
	c, err := lqtld.PlotLeaves(t, vg.Length(width), vg.Length(height))
	if err != nil {
		return err
	}
	if err := writeFile(path, func(w io.Writer) error { return lqtld.WritePlotPNG(w, c) }); err != nil {
		return err
	}
	Log.WithFields(logrus.Fields{"file": path, "leaves": t.Len()}).Info("wrote leaf plot")
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lqtld: %v", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
