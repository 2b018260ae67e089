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

package clockface

import (
	"seehuhn.de/go/clockface/canvas"
	"seehuhn.de/go/clockface/font"
	"seehuhn.de/go/clockface/shape"
	"seehuhn.de/go/clockface/trig"
)

// label is one of the four large hour labels.
type label struct {
	text12, text24 string
	box            shape.Rect
	align          font.Alignment
}

// labels returns the hour labels clockwise from the top.
func labels(cfg Config) [4]label {
	const w, h = shape.Width, shape.Height

	top24 := "24"
	if cfg.ZeroInsteadOf24 {
		top24 = "0"
	}
	return [4]label{
		{"12", top24, shape.R(w/2-30, 4, 60, 50), font.AlignCenter},
		{"3", "15", shape.R(w/2, h/2-26, 70, 50), font.AlignRight},
		{"6", "18", shape.R(w/2-30, 110, 60, 50), font.AlignCenter},
		{"9", "21", shape.R(w/2-70, h/2-26, 60, 50), font.AlignLeft},
	}
}

// drawTicks paints the sixty marks around the dial.
func drawTicks(c canvas.Canvas) {
	hourTick := shape.Lookup(shape.HourTick)
	majorTick := shape.Lookup(shape.MajorTick)
	minorTick := shape.Lookup(shape.MinorTick)

	for minute := range 60 {
		angle := trig.Fraction(minute, 60)
		switch {
		case minute%15 == 0:
			c.FillPolygon(shape.Rotate(hourTick, angle, shape.Center), canvas.Foreground)
		case minute%5 == 0:
			c.FillPolygon(shape.Rotate(majorTick, angle, shape.Center), canvas.Foreground)
		default:
			c.StrokePolygon(shape.Rotate(minorTick, angle, shape.Center), canvas.Foreground)
		}
	}
}

// drawLabels paints the hour labels. In 24 hour mode the afternoon
// labels are used from noon on.
func drawLabels(c canvas.Canvas, f *font.Face, s ClockState, cfg Config) {
	afternoon := cfg.Use24Hour && s.Hour >= 12
	for _, l := range labels(cfg) {
		text := l.text12
		if afternoon {
			text = l.text24
		}
		c.DrawText(text, f, l.box, font.TrailingEllipsis, l.align, canvas.Foreground)
	}
}
