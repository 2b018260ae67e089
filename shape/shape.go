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

// Package shape holds the integer polygons of the watch face and the
// fixed-point rotation which places them on the canvas.
//
// All literal coordinates are authored against a canvas of Width×Height
// units with the origin of every shape at the canvas centre. The y axis
// points down, and a positive angle turns clockwise on screen.
package shape

import "fmt"

// Canvas geometry.
const (
	Width  = 144
	Height = 168
)

// Center is the midpoint of the canvas.
var Center = Point{X: Width / 2, Y: Height / 2}

// Point is a location in integer canvas units.
type Point struct {
	X, Y int
}

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle with origin Min and size W×H.
type Rect struct {
	Min  Point
	W, H int
}

// R is shorthand for Rect{Point{x, y}, w, h}.
func R(x, y, w, h int) Rect {
	return Rect{Min: Point{X: x, Y: y}, W: w, H: h}
}

// Max returns the corner opposite to Min.
func (r Rect) Max() Point {
	return Point{X: r.Min.X + r.W, Y: r.Min.Y + r.H}
}

// Polygon is an ordered list of points. Whether the last point connects
// back to the first depends on how the polygon is drawn.
type Polygon []Point

// Clone returns a copy of p which shares no storage with p.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	res := make(Polygon, len(p))
	copy(res, p)
	return res
}

// Translate returns p shifted by d.
func (p Polygon) Translate(d Point) Polygon {
	res := make(Polygon, len(p))
	for i, pt := range p {
		res[i] = pt.Add(d)
	}
	return res
}
