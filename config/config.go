// seehuhn.de/go/clockface - an analog watch face with a movable date window
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the optional configuration file of the watch
// face.
//
// A configuration file looks like this; all fields are optional:
//
//	face:
//	  use_24_hour: true
//	  top_label: "24"    # "0" or "24", shown at the top in 24 hour mode
//	  show_seconds: false
//	  invert_date: true
//	  strategy: large    # "subtle" or "large"
//	display:
//	  invert: true       # black on white
//	  scale: 3           # pixel size of PNG output
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/clockface"
	"seehuhn.de/go/clockface/placement"
)

// ErrInvalid is returned for configuration values which are not
// understood.
var ErrInvalid = errors.New("invalid configuration value")

// Config is the resolved configuration.
type Config struct {
	Face    clockface.Config
	Display Display
}

// Display holds the options of the output device.
type Display struct {
	// Invert shows the face black on white.
	Invert bool

	// Scale is the size of one canvas pixel in output pixels.
	Scale int
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Face:    clockface.DefaultConfig(),
		Display: Display{Scale: 1},
	}
}

// file is the structure of the YAML file. Pointers distinguish missing
// fields from zero values.
type file struct {
	Face struct {
		Use24Hour   *bool  `yaml:"use_24_hour"`
		TopLabel    string `yaml:"top_label"`
		ShowSeconds *bool  `yaml:"show_seconds"`
		InvertDate  *bool  `yaml:"invert_date"`
		Strategy    string `yaml:"strategy"`
	} `yaml:"face"`
	Display struct {
		Invert *bool `yaml:"invert"`
		Scale  *int  `yaml:"scale"`
	} `yaml:"display"`
}

// LoadOptional reads the configuration file at path, if present.
// A missing file gives the default configuration.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration from YAML. Fields missing from data keep
// their default values.
func Parse(data []byte) (*Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := Default()
	face := &cfg.Face
	if f.Face.Use24Hour != nil {
		face.Use24Hour = *f.Face.Use24Hour
	}
	switch f.Face.TopLabel {
	case "":
		// keep the default
	case "0":
		face.ZeroInsteadOf24 = true
	case "24":
		face.ZeroInsteadOf24 = false
	default:
		return nil, fmt.Errorf("top_label %q: %w", f.Face.TopLabel, ErrInvalid)
	}
	if f.Face.ShowSeconds != nil {
		face.ShowSeconds = *f.Face.ShowSeconds
	}
	if f.Face.InvertDate != nil {
		face.InvertDate = *f.Face.InvertDate
	}
	if f.Face.Strategy != "" {
		s, err := placement.ParseStrategy(f.Face.Strategy)
		if err != nil {
			return nil, fmt.Errorf("strategy %q: %w", f.Face.Strategy, ErrInvalid)
		}
		face.Strategy = s
	}

	if f.Display.Invert != nil {
		cfg.Display.Invert = *f.Display.Invert
	}
	if f.Display.Scale != nil {
		if *f.Display.Scale < 1 {
			return nil, fmt.Errorf("scale %d: %w", *f.Display.Scale, ErrInvalid)
		}
		cfg.Display.Scale = *f.Display.Scale
	}
	return cfg, nil
}
