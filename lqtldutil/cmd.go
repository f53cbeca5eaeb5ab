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

// Package lqtldutil holds the command-line interface for lqtld: it reads
// occupancy grids from PNG images, builds quadtrees from them and renders
// the results.
package lqtldutil

import (
	"fmt"
	"os"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/lqtld"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is the version of the command-line tool.
const Version = "0.1.0"

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log is the logger the commands write to.
var Log = logrus.New()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to lqtld.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the minimum level of log messages to print. Valid
              options are "debug", "info", "warning" and "error". At "debug"
              every cell division is logged.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "InputFile",
			usage: `
              InputFile is the path to the PNG image holding the occupancy grid.
              It can include environment variables.`,
			shorthand:  "i",
			defaultVal: "input.png",
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "Threshold",
			usage: `
              Threshold is the smallest red channel intensity (0-255) that counts
              as an occupied pixel. Pixels below it are empty.`,
			defaultVal: 255,
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "Fill",
			usage: `
              Fill is the value given to the cells added when the grid is padded
              to a square with a power-of-two side. 0 pads with empty cells and
              1 pads with occupied cells.`,
			defaultVal: lqtld.DefaultFill,
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "Polarity",
			usage: `
              Polarity specifies which uniform color means empty. Valid options
              are "empty-black" and "empty-white".`,
			defaultVal: lqtld.EmptyIsBlack.String(),
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "Measure",
			usage: `
              Measure specifies how a block is scored when it is classified.
              "sum" adds up the grid values and "count" counts nonzero values.`,
			defaultVal: lqtld.SumValues.String(),
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "Validate",
			usage: `
              Validate specifies whether to check that the finished tree tiles
              the grid and that every leaf matches its block.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path to the debug PNG with the borders of usable
              cells drawn in. If it is empty no image is written. It can include
              environment variables.`,
			shorthand:  "o",
			defaultVal: "lqtld_output.png",
			flagsets:   []*pflag.FlagSet{buildCmd.Flags()},
		},
		{
			name: "Marker",
			usage: `
              Marker is the value written on the borders of usable cells in the
              debug image, read as an 0xRRGGBB color.`,
			defaultVal: lqtld.BorderMarker,
			flagsets:   []*pflag.FlagSet{buildCmd.Flags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile is the path to the PNG the leaf rendering is written to.
              It can include environment variables.`,
			shorthand:  "o",
			defaultVal: "lqtld_leaves.png",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "PlotWidth",
			usage: `
              PlotWidth is the width of the leaf rendering in points.`,
			defaultVal: 432.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "PlotHeight",
			usage: `
              PlotHeight is the height of the leaf rendering in points.`,
			defaultVal: 432.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
	}

	Cfg = viper.New()

	Cfg.SetEnvPrefix("LQTLD")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	Root.AddCommand(versionCmd)
	Root.AddCommand(buildCmd)
	Root.AddCommand(renderCmd)

	Log.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	}
	Log.Out = os.Stderr
}

func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("lqtld: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("lqtld: LogLevel: %v", err)
	}
	Log.Level = level
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "lqtld",
	Short: "Build linear quadtrees with level differences.",
	Long: `lqtld builds balanced region quadtrees over binary occupancy grids
read from PNG images. The tree is stored as a flat list of leaves addressed
by interleaved location codes, each tracking the generation difference to its
neighbors.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'LQTLD_var' where 'var' is
the name of the variable to be set.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of lqtld.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("lqtld v%s\n", Version)
	},
	DisableAutoGenTag: true,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a quadtree and write a debug image.",
	Long: `build reads the occupancy grid in InputFile, pads it if necessary,
builds the linear quadtree and logs a summary. If OutputFile is set, the
grid is written there as a PNG with the borders of usable cells drawn in
the Marker color.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := BuildTree(Cfg)
		if err != nil {
			return err
		}
		out, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil || out == "" {
			return err
		}
		return WriteBorders(out, t, Cfg.GetInt("Marker"))
	},
	DisableAutoGenTag: true,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Build a quadtree and render its leaves.",
	Long: `render builds the linear quadtree of the grid in InputFile and draws
every leaf as a filled, outlined square into PlotFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := BuildTree(Cfg)
		if err != nil {
			return err
		}
		out, err := checkOutputFile(Cfg.GetString("PlotFile"))
		if err != nil {
			return err
		}
		if out == "" {
			return fmt.Errorf("lqtld: PlotFile is not specified")
		}
		return WritePlot(out, t, Cfg.GetFloat64("PlotWidth"), Cfg.GetFloat64("PlotHeight"))
	},
	DisableAutoGenTag: true,
}
