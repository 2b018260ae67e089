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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke draws the outline of p with the current Width and Cap.
//
// Every segment of the flattened path becomes a quadrilateral, and all
// quadrilaterals are filled together with the nonzero rule, so that
// overlaps are painted only once. Segments of closed subpaths are
// extended by half the width at both ends, which fills the corners.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.outline.Cmds = r.outline.Cmds[:0]
	r.outline.Coords = r.outline.Coords[:0]
	r.polyline = r.polyline[:0]

	appendPoint := func(_, b vec.Vec2) {
		r.polyline = append(r.polyline, b)
	}

	// current is kept after a Close, so that drawing may continue from
	// the start of the closed subpath
	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		if cmd != path.CmdMoveTo && cmd != path.CmdClose && len(r.polyline) == 0 {
			r.polyline = append(r.polyline, current)
		}
		switch cmd {
		case path.CmdMoveTo:
			r.strokePolyline(false)
			current = p.Coords[k]
			start = current
			r.polyline = append(r.polyline, current)
			k++
		case path.CmdLineTo:
			current = p.Coords[k]
			r.polyline = append(r.polyline, current)
			k++
		case path.CmdQuadTo:
			r.flattenQuad(current, p.Coords[k], p.Coords[k+1], appendPoint)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], appendPoint)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.strokePolyline(true)
			current = start
		}
	}
	r.strokePolyline(false)

	if len(r.outline.Cmds) > 0 {
		r.FillNonZero(r.outline, emit)
	}
}

// strokePolyline adds the outline of the current polyline and empties
// it.
func (r *Rasterizer) strokePolyline(closed bool) {
	pts := r.polyline
	defer func() { r.polyline = r.polyline[:0] }()
	if len(pts) == 0 {
		return
	}

	d := r.Width / 2
	extend := closed || r.Cap != graphics.LineCapButt
	drawn := false
	for i := 0; i+1 < len(pts); i++ {
		drawn = r.addSegment(pts[i], pts[i+1], d, extend) || drawn
	}
	if closed && len(pts) > 2 {
		drawn = r.addSegment(pts[len(pts)-1], pts[0], d, extend) || drawn
	}

	// a subpath without length has no direction; only square caps
	// make it visible
	if !drawn && r.Cap != graphics.LineCapButt {
		c := pts[0]
		r.addQuad(
			vec.Vec2{X: c.X - d, Y: c.Y + d},
			vec.Vec2{X: c.X + d, Y: c.Y + d},
			vec.Vec2{X: c.X + d, Y: c.Y - d},
			vec.Vec2{X: c.X - d, Y: c.Y - d},
		)
	}
}

// addSegment adds the quadrilateral covering the segment from a to b.
// With extend set, the segment is lengthened by d at both ends.
// It reports whether the segment had a direction.
func (r *Rasterizer) addSegment(a, b vec.Vec2, d float64, extend bool) bool {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return false
	}
	t := v.Mul(1 / l)
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
	if extend {
		a = a.Sub(t.Mul(d))
		b = b.Add(t.Mul(d))
	}
	r.addQuad(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	return true
}

func (r *Rasterizer) addQuad(p0, p1, p2, p3 vec.Vec2) {
	r.outline.MoveTo(p0)
	r.outline.LineTo(p1)
	r.outline.LineTo(p2)
	r.outline.LineTo(p3)
	r.outline.Close()
}
