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
	"seehuhn.de/go/clockface/shape"
	"seehuhn.de/go/clockface/trig"
)

// Dimensions of the hand layer.
const (
	faceRadius      = shape.Width/2 - 2
	secondDotOrbit  = faceRadius + 8
	secondDotRadius = 2
	secondRingSize  = 3
	pivotDiskRadius = 20
	pivotRingRadius = 3
	dotEdgeMargin   = 2
)

// MinuteAngle returns the rotation of the minute hand. With sweep set,
// the hand moves every second instead of jumping once a minute.
func MinuteAngle(s ClockState, sweep bool) int32 {
	if sweep {
		return trig.Fraction(s.Minute*60+s.Second, 3600)
	}
	return trig.Fraction(s.Minute, 60)
}

// HourAngle returns the rotation of the hour hand, which moves on every
// minute.
func HourAngle(s ClockState) int32 {
	return trig.Fraction((s.Hour%12)*60+s.Minute, 720)
}

// SecondDot returns the centre of the second indicator.
//
// The orbit of the dot is wider than the canvas. Near the 3 and 9
// o'clock positions the dot is pushed back to the canvas edge.
func SecondDot(second int) shape.Point {
	angle := trig.Fraction(second, 60)
	p := shape.RotatePoint(shape.Point{Y: -secondDotOrbit}, angle, shape.Center)
	switch {
	case second > 10 && second < 20:
		p.X = shape.Width - dotEdgeMargin
	case second > 40 && second < 50:
		p.X = dotEdgeMargin
	}
	return p
}

// secondRing reports whether the second indicator is marked with a ring.
// TODO: the first condition is implied by the second; check whether
// the quarter hours were meant to look different.
func secondRing(second int) bool {
	return second%15 == 0 || second%5 == 0
}

// drawHands paints the hand layer.
func drawHands(c canvas.Canvas, s ClockState, cfg Config) {
	minute := shape.Rotate(shape.Lookup(shape.MinuteHand), MinuteAngle(s, cfg.ShowSeconds), shape.Center)
	c.FillPolygon(minute, canvas.Foreground)
	c.StrokePolygon(minute, canvas.Background)

	// the hour hand goes on top of the minute hand
	hour := shape.Rotate(shape.Lookup(shape.HourHand), HourAngle(s), shape.Center)
	c.FillPolygon(hour, canvas.Foreground)
	c.StrokePolygon(hour, canvas.Background)

	c.FillCircle(shape.Center, pivotDiskRadius, canvas.Background)
	c.StrokeCircle(shape.Center, pivotRingRadius, canvas.Foreground)

	if !cfg.ShowSeconds {
		return
	}
	dot := SecondDot(s.Second)
	c.FillCircle(dot, secondDotRadius, canvas.Foreground)
	if secondRing(s.Second) {
		c.StrokeCircle(dot, secondRingSize, canvas.Background)
	}
}
