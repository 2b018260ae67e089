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

package canvas

import (
	"fmt"

	"seehuhn.de/go/clockface/font"
	"seehuhn.de/go/clockface/shape"
)

// Op identifies a drawing command.
type Op int

// The drawing commands.
const (
	OpFillPolygon Op = iota
	OpStrokePolygon
	OpStrokeLine
	OpFillCircle
	OpStrokeCircle
	OpDrawText
)

func (op Op) String() string {
	switch op {
	case OpFillPolygon:
		return "FillPolygon"
	case OpStrokePolygon:
		return "StrokePolygon"
	case OpStrokeLine:
		return "StrokeLine"
	case OpFillCircle:
		return "FillCircle"
	case OpStrokeCircle:
		return "StrokeCircle"
	case OpDrawText:
		return "DrawText"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Command is one recorded drawing command. Only the fields relevant for
// the operation are set.
type Command struct {
	Op     Op
	Color  Color
	Points shape.Polygon // polygon, line endpoints, or circle centre
	Radius int
	Text   string
	Box    shape.Rect
	Align  font.Alignment
}

// Recorder is a Canvas which stores all commands it receives.
type Recorder struct {
	Commands []Command
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Filter returns the recorded commands with the given operation.
func (r *Recorder) Filter(op Op) []Command {
	var res []Command
	for _, c := range r.Commands {
		if c.Op == op {
			res = append(res, c)
		}
	}
	return res
}

// FillPolygon implements the Canvas interface.
func (r *Recorder) FillPolygon(pts shape.Polygon, c Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillPolygon, Color: c, Points: pts.Clone()})
}

// StrokePolygon implements the Canvas interface.
func (r *Recorder) StrokePolygon(pts shape.Polygon, c Color) {
	r.Commands = append(r.Commands, Command{Op: OpStrokePolygon, Color: c, Points: pts.Clone()})
}

// StrokeLine implements the Canvas interface.
func (r *Recorder) StrokeLine(p1, p2 shape.Point, c Color) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeLine, Color: c, Points: shape.Polygon{p1, p2}})
}

// FillCircle implements the Canvas interface.
func (r *Recorder) FillCircle(center shape.Point, radius int, c Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillCircle, Color: c, Points: shape.Polygon{center}, Radius: radius})
}

// StrokeCircle implements the Canvas interface.
func (r *Recorder) StrokeCircle(center shape.Point, radius int, c Color) {
	r.Commands = append(r.Commands, Command{Op: OpStrokeCircle, Color: c, Points: shape.Polygon{center}, Radius: radius})
}

// DrawText implements the Canvas interface.
func (r *Recorder) DrawText(text string, _ *font.Face, box shape.Rect, _ font.Overflow, align font.Alignment, c Color) {
	r.Commands = append(r.Commands, Command{Op: OpDrawText, Color: c, Text: text, Box: box, Align: align})
}
