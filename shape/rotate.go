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

import "seehuhn.de/go/clockface/trig"

// RotatePoint turns p about the origin by angle and then moves the origin
// to center. The fixed-point products are divided by trig.MaxRatio with
// truncation toward zero, so each coordinate may be off by up to one
// unit from the exact value.
func RotatePoint(p Point, angle int32, center Point) Point {
	cos := int(trig.Cos(angle))
	sin := int(trig.Sin(angle))
	return Point{
		X: center.X + (cos*p.X-sin*p.Y)/trig.MaxRatio,
		Y: center.Y + (sin*p.X+cos*p.Y)/trig.MaxRatio,
	}
}

// Rotate returns the polygon p turned by angle about the origin and
// placed at center. The input polygon is not modified.
func Rotate(p Polygon, angle int32, center Point) Polygon {
	res := make(Polygon, len(p))
	for i, pt := range p {
		res[i] = RotatePoint(pt, angle, center)
	}
	return res
}
