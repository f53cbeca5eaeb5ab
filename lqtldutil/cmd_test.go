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
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spatialmodel/lqtld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetCfg restores the settings the tests below change.
func resetCfg() {
	Cfg.Set("config", "")
	Cfg.Set("LogLevel", "error")
	Cfg.Set("Threshold", 255)
	Cfg.Set("Fill", lqtld.DefaultFill)
	Cfg.Set("Polarity", lqtld.EmptyIsBlack.String())
	Cfg.Set("Measure", lqtld.SumValues.String())
	Cfg.Set("Validate", true)
	Cfg.Set("Marker", lqtld.BorderMarker)
	Cfg.Set("PlotWidth", 144.0)
	Cfg.Set("PlotHeight", 144.0)
}

func TestVersion(t *testing.T) {
	resetCfg()
	b := new(bytes.Buffer)
	Root.SetOutput(b)
	defer Root.SetOutput(nil)
	Root.SetArgs([]string{"version"})
	require.NoError(t, Root.Execute())
	assert.Equal(t, "lqtld v"+Version+"\n", b.String())
}

func TestBuild(t *testing.T) {
	resetCfg()
	dir := t.TempDir()
	Cfg.Set("InputFile", writeGrid(t, dir, "grid.png", quadrantGrid()))
	out := filepath.Join(dir, "out.png")
	Cfg.Set("OutputFile", out)
	Root.SetArgs([]string{"build"})
	require.NoError(t, Root.Execute())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	marker := color.NRGBAModel.Convert(img.At(4, 0)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 0xe7, G: 0x4c, B: 0xff, A: 255}, marker)
	inside := color.NRGBAModel.Convert(img.At(5, 1)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, inside)
}

func TestBuildNoOutput(t *testing.T) {
	resetCfg()
	dir := t.TempDir()
	Cfg.Set("InputFile", writeGrid(t, dir, "grid.png", quadrantGrid()))
	Cfg.Set("OutputFile", "")
	Root.SetArgs([]string{"build"})
	require.NoError(t, Root.Execute())
}

func TestBuildTreePadded(t *testing.T) {
	resetCfg()
	dir := t.TempDir()
	Cfg.Set("InputFile", writeGrid(t, dir, "grid.png", lqtld.NewGrid(3, 5)))

	tree, err := BuildTree(Cfg)
	require.NoError(t, err)
	assert.Equal(t, 8, tree.Side())
	assert.Equal(t, 22, tree.Len())

	Cfg.Set("Fill", 0)
	tree, err = BuildTree(Cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Len())
}

func TestBuildTreeErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeGrid(t, dir, "grid.png", quadrantGrid())
	for _, test := range []struct{ key, value string }{
		{"InputFile", filepath.Join(dir, "missing.png")},
		{"Threshold", "300"},
		{"Polarity", "sideways"},
		{"Measure", "mean"},
	} {
		t.Run(test.key, func(t *testing.T) {
			resetCfg()
			Cfg.Set("InputFile", in)
			Cfg.Set(test.key, test.value)
			_, err := BuildTree(Cfg)
			assert.Error(t, err)
		})
	}
}

func TestRender(t *testing.T) {
	resetCfg()
	dir := t.TempDir()
	g := quadrantGrid()
	g.Set(7, 0, 1)
	Cfg.Set("InputFile", writeGrid(t, dir, "grid.png", g))
	out := filepath.Join(dir, "leaves.png")
	Cfg.Set("PlotFile", out)
	Root.SetArgs([]string{"render"})
	require.NoError(t, Root.Execute())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.True(t, img.Bounds().Dx() > 0)

	t.Run("bad size", func(t *testing.T) {
		Cfg.Set("PlotWidth", 0.0)
		defer Cfg.Set("PlotWidth", 144.0)
		Root.SetArgs([]string{"render"})
		assert.Error(t, Root.Execute())
	})
}

func TestBadLogLevel(t *testing.T) {
	resetCfg()
	Cfg.Set("LogLevel", "loud")
	Root.SetArgs([]string{"version"})
	err := Root.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "LogLevel"))
}

func TestConfigExample(t *testing.T) {
	resetCfg()
	dir := t.TempDir()
	os.Setenv("LQTLD_TESTDATA", dir)
	defer os.Unsetenv("LQTLD_TESTDATA")
	writeGrid(t, dir, "grid.png", quadrantGrid())

	Cfg.Set("config", "configExample.toml")
	defer Cfg.Set("config", "")
	Cfg.Set("InputFile", "${LQTLD_TESTDATA}/grid.png")
	Cfg.Set("OutputFile", "${LQTLD_TESTDATA}/lqtld_output.png")
	Root.SetArgs([]string{"build"})
	require.NoError(t, Root.Execute())

	_, err := os.Stat(filepath.Join(dir, "lqtld_output.png"))
	assert.NoError(t, err)
}
