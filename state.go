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

// Package clockface draws an analog watch face with hour, minute and
// second hands, a ring of tick marks, hour labels and a date window which
// moves out of the way of the hands.
//
// The face is drawn onto a canvas.Canvas of shape.Width×shape.Height
// units. A Controller receives tick events from a TickSource, keeps track
// of which layers need repainting, and paints them on request.
package clockface

import (
	"fmt"
	"time"

	"seehuhn.de/go/clockface/placement"
)

// ClockState is the calendar time shown on the face.
type ClockState struct {
	Hour   int // 0–23
	Minute int // 0–59
	Second int // 0–59
	Day    int // day of month, 1–31
}

// FromTime returns the clock state for t, in t's location.
func FromTime(t time.Time) ClockState {
	hour, minute, second := t.Clock()
	return ClockState{
		Hour:   hour,
		Minute: minute,
		Second: second,
		Day:    t.Day(),
	}
}

func (s ClockState) String() string {
	return fmt.Sprintf("%02d:%02d:%02d day %d", s.Hour, s.Minute, s.Second, s.Day)
}

// Config selects the variants of the face. It is fixed for the lifetime
// of a Controller.
type Config struct {
	// Use24Hour replaces the labels 12/3/6/9 by 0/15/18/21 in the
	// afternoon.
	Use24Hour bool

	// ZeroInsteadOf24 selects "0" rather than "24" as the top label in
	// 24 hour mode.
	ZeroInsteadOf24 bool

	// ShowSeconds enables the second indicator and the continuous sweep
	// of the minute hand. Without it, the face is updated once a minute.
	ShowSeconds bool

	// InvertDate draws the date window as a filled box with the digits
	// cut out, instead of an outline.
	InvertDate bool

	// Strategy chooses how the date window avoids the hands.
	Strategy placement.Strategy
}

// DefaultConfig returns the standard configuration of the face.
func DefaultConfig() Config {
	return Config{
		ZeroInsteadOf24: true,
		ShowSeconds:     true,
		Strategy:        placement.Subtle,
	}
}

// Granularity returns the tick interval the configuration requires.
func (cfg Config) Granularity() Granularity {
	if cfg.ShowSeconds {
		return SecondUnit
	}
	return MinuteUnit
}
