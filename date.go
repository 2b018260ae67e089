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
	"seehuhn.de/go/clockface/placement"
	"seehuhn.de/go/clockface/shape"
)

// strokeOffsets are the shifts used to draw every glyph edge four
// times, giving digits a stroke width of two units.
var strokeOffsets = [4]shape.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}

// drawDateWindow paints the date box and the day of month at the
// position chosen for the current time.
func drawDateWindow(c canvas.Canvas, glyphs map[placement.Slot]*shape.GlyphSet, s ClockState, cfg Config) {
	d := placement.Decide(cfg.Strategy, s.Hour, s.Minute, s.Second)

	box := shape.Rotate(shape.Lookup(shape.DateBox), d.Angle(), shape.Center)
	digitColor := canvas.Foreground
	if cfg.InvertDate {
		c.FillPolygon(box, canvas.Foreground)
		digitColor = canvas.Background
	} else {
		c.StrokePolygon(box, canvas.Foreground)
	}

	strokeNumber(c, glyphs[d.Slot], d, s.Day, digitColor)
}

// strokeNumber draws a number with one or two decimal digits, using the
// glyphs of the chosen slot. The glyphs are polylines; every edge is
// drawn four times with one unit shifts to make the strokes thicker.
//
// With two digits the most significant digit is drawn last, so that it
// ends up on top where the two glyphs touch.
func strokeNumber(c canvas.Canvas, gs *shape.GlyphSet, d placement.Decision, n int, col canvas.Color) {
	twoDigits := n >= 10
	if twoDigits {
		strokeDigit(c, gs.Digit(n%10), d, true, false, col)
		strokeDigit(c, gs.Digit(n/10%10), d, true, true, col)
	} else {
		strokeDigit(c, gs.Digit(n), d, false, false, col)
	}
}

func strokeDigit(c canvas.Canvas, glyph shape.Polygon, d placement.Decision, twoDigits, mostSignificant bool, col canvas.Color) {
	dx, dy := d.Offset(twoDigits, mostSignificant)
	shift := shape.Point{X: dx, Y: dy}
	for i := 0; i+1 < len(glyph); i++ {
		p1 := glyph[i].Add(shift)
		p2 := glyph[i+1].Add(shift)
		for _, o := range strokeOffsets {
			c.StrokeLine(p1.Add(o), p2.Add(o), col)
		}
	}
}
