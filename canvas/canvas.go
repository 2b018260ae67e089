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

// Package canvas defines the drawing commands the watch face issues.
//
// The watch face paints with two symbolic colours. A canvas maps them to
// real colours, possibly swapping them to show the face inverted.
package canvas

import (
	"seehuhn.de/go/clockface/font"
	"seehuhn.de/go/clockface/shape"
)

// Color is one of the two colours of the palette.
type Color int

// The palette.
const (
	Background Color = iota
	Foreground
)

func (c Color) String() string {
	if c == Foreground {
		return "fg"
	}
	return "bg"
}

// Canvas receives drawing commands in canvas coordinates.
//
// Polygon points refer to pixel positions. Filled polygons are closed
// implicitly; StrokePolygon draws the closed outline. Lines are one unit
// wide.
type Canvas interface {
	FillPolygon(pts shape.Polygon, c Color)
	StrokePolygon(pts shape.Polygon, c Color)
	StrokeLine(p1, p2 shape.Point, c Color)
	FillCircle(center shape.Point, radius int, c Color)
	StrokeCircle(center shape.Point, radius int, c Color)
	DrawText(text string, f *font.Face, box shape.Rect, overflow font.Overflow, align font.Alignment, c Color)
}
