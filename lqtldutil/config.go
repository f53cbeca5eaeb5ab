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
	"os"
	"path/filepath"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/lqtld"
	"github.com/spf13/cast"
)

// checkInputFile expands environment variables in the input file path and
// makes sure the file exists.
func checkInputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an input file configuration variable (for example: InputFile="grid.png")`)
	}
	f = os.ExpandEnv(f)
	if _, err := os.Stat(f); err != nil {
		return f, fmt.Errorf("lqtld: the InputFile can't be read: %v", err)
	}
	return f, nil
}

// checkOutputFile expands environment variables in an output file path and
// makes sure its directory exists. An empty path means no output.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", nil
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("lqtld: the output directory doesn't exist: %v", err)
	}
	return f, nil
}

// checkThreshold makes sure a pixel threshold is a channel intensity.
func checkThreshold(v interface{}) (int, error) {
	t, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("lqtld: Threshold: %v", err)
	}
	if t < 0 || t > 255 {
		return t, fmt.Errorf("lqtld: Threshold=%d but should be between 0 and 255", t)
	}
	return t, nil
}

// polarityFromString parses the Polarity configuration variable.
func polarityFromString(v interface{}) (lqtld.Polarity, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return 0, fmt.Errorf("lqtld: Polarity: %v", err)
	}
	switch strings.ToLower(strings.TrimSpace(os.ExpandEnv(s))) {
	case lqtld.EmptyIsBlack.String():
		return lqtld.EmptyIsBlack, nil
	case lqtld.EmptyIsWhite.String():
		return lqtld.EmptyIsWhite, nil
	default:
		return 0, fmt.Errorf("the Polarity variable in the configuration file "+
			"needs to be set to either %s or %s, but is currently set to `%s`",
			lqtld.EmptyIsBlack, lqtld.EmptyIsWhite, s)
	}
}

// measureFromString parses the Measure configuration variable.
func measureFromString(v interface{}) (lqtld.Measure, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return 0, fmt.Errorf("lqtld: Measure: %v", err)
	}
	switch strings.ToLower(strings.TrimSpace(os.ExpandEnv(s))) {
	case lqtld.SumValues.String():
		return lqtld.SumValues, nil
	case lqtld.CountOccupied.String():
		return lqtld.CountOccupied, nil
	default:
		return 0, fmt.Errorf("the Measure variable in the configuration file "+
			"needs to be set to either %s or %s, but is currently set to `%s`",
			lqtld.SumValues, lqtld.CountOccupied, s)
	}
}

// ClassifierConfig unmarshals the classification settings of a viper
// configuration.
func ClassifierConfig(cfg *viper.Viper) (lqtld.Classifier, error) {
	p, err := polarityFromString(cfg.Get("Polarity"))
	if err != nil {
		return lqtld.Classifier{}, err
	}
	m, err := measureFromString(cfg.Get("Measure"))
	if err != nil {
		return lqtld.Classifier{}, err
	}
	return lqtld.Classifier{Polarity: p, Measure: m}, nil
}

// BuildTree reads the grid named in cfg, pads it and builds its quadtree.
func BuildTree(cfg *viper.Viper) (*lqtld.Tree, error) {
	in, err := checkInputFile(cfg.GetString("InputFile"))
	if err != nil {
		return nil, err
	}
	threshold, err := checkThreshold(cfg.Get("Threshold"))
	if err != nil {
		return nil, err
	}
	classifier, err := ClassifierConfig(cfg)
	if err != nil {
		return nil, err
	}
	fill := cfg.GetInt("Fill")

	g, err := ReadGrid(in, threshold)
	if err != nil {
		return nil, err
	}
	log := Log.WithField("file", in)
	if lqtld.NeedsPadding(g) {
		padded := lqtld.Pad(g, fill)
		log.WithFields(logrus.Fields{
			"rows": g.Rows, "cols": g.Cols,
			"side": padded.Rows, "fill": fill,
		}).Info("padded grid")
		g = padded
	}

	t, err := lqtld.Build(g, lqtld.WithClassifier(classifier), lqtld.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if cfg.GetBool("Validate") {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return t, nil
}
