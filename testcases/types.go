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

// Package testcases is a catalogue of named watch face scenes.
//
// The scenes pin down the times at which the face changes appearance:
// the boundaries of the date window placement, the clamped positions of
// the second indicator, the label variants and one and two digit dates.
package testcases

import (
	"seehuhn.de/go/clockface"
	"seehuhn.de/go/clockface/canvas"
	"seehuhn.de/go/clockface/font"
	"seehuhn.de/go/clockface/placement"
)

// Scene is a single state of the watch face.
type Scene struct {
	Name   string // lowercase a-z, 0-9 and _ only
	State  clockface.ClockState
	Config clockface.Config
}

// Render paints the scene onto cv. If face is nil, the hour labels are
// left out.
func Render(sc Scene, cv canvas.Canvas, face *font.Face) error {
	c, err := clockface.NewController(sc.Config, sc.State, face)
	if err != nil {
		return err
	}
	if err := c.Redraw(cv); err != nil {
		return err
	}
	return c.Close()
}

// at is a helper to create a clock state.
func at(hour, minute, second, day int) clockface.ClockState {
	return clockface.ClockState{Hour: hour, Minute: minute, Second: second, Day: day}
}

// config returns the default configuration, modified by the given
// functions.
func config(mods ...func(*clockface.Config)) clockface.Config {
	cfg := clockface.DefaultConfig()
	for _, m := range mods {
		m(&cfg)
	}
	return cfg
}

func use24(cfg *clockface.Config)      { cfg.Use24Hour = true }
func noSeconds(cfg *clockface.Config)  { cfg.ShowSeconds = false }
func invertDate(cfg *clockface.Config) { cfg.InvertDate = true }
func largeMoves(cfg *clockface.Config) { cfg.Strategy = placement.Large }
func twentyFour(cfg *clockface.Config) { cfg.ZeroInsteadOf24 = false }
