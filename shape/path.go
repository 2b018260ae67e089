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

package shape

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path converts the polygon into a path in canvas units.
// If closed is true, the last point is connected back to the first.
func (p Polygon) Path(closed bool) *path.Data {
	res := &path.Data{}
	if len(p) == 0 {
		return res
	}
	res.MoveTo(p[0].Vec())
	for _, pt := range p[1:] {
		res.LineTo(pt.Vec())
	}
	if closed {
		res.Close()
	}
	return res
}

// Vec converts p into a floating point vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// circleK is the control point distance for approximating a quarter
// circle of radius 1 by a cubic Bézier curve.
const circleK = 0.5522847498

// AppendCircle appends a closed circle of radius r around c to d, made
// from four cubic Bézier curves. The circle starts at the top and runs
// clockwise on screen, or counter-clockwise if reverse is set.
func AppendCircle(d *path.Data, c vec.Vec2, r float64, reverse bool) *path.Data {
	kr := circleK * r
	top := vec.Vec2{X: c.X, Y: c.Y - r}
	d.Cmds = append(d.Cmds, path.CmdMoveTo)
	d.Coords = append(d.Coords, top)

	sx := 1.0
	if reverse {
		sx = -1
	}
	quadrants := [4][3]vec.Vec2{
		{{X: c.X + sx*kr, Y: c.Y - r}, {X: c.X + sx*r, Y: c.Y - kr}, {X: c.X + sx*r, Y: c.Y}},
		{{X: c.X + sx*r, Y: c.Y + kr}, {X: c.X + sx*kr, Y: c.Y + r}, {X: c.X, Y: c.Y + r}},
		{{X: c.X - sx*kr, Y: c.Y + r}, {X: c.X - sx*r, Y: c.Y + kr}, {X: c.X - sx*r, Y: c.Y}},
		{{X: c.X - sx*r, Y: c.Y - kr}, {X: c.X - sx*kr, Y: c.Y - r}, top},
	}
	for _, q := range quadrants {
		d.Cmds = append(d.Cmds, path.CmdCubeTo)
		d.Coords = append(d.Coords, q[0], q[1], q[2])
	}
	d.Cmds = append(d.Cmds, path.CmdClose)
	return d
}
