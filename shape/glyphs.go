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
	"errors"
	"fmt"
)

// ErrDegenerate is returned when a glyph has too few points to be drawn.
var ErrDegenerate = errors.New("degenerate glyph")

// GlyphSet holds the ten digit glyphs rotated to one placement angle and
// translated into canvas coordinates. A GlyphSet is immutable once
// constructed.
type GlyphSet struct {
	// Angle is the rotation which was applied to the glyphs.
	Angle int32

	digits [10]Polygon
}

// NewGlyphSet rotates the digit glyphs by angle about the origin and
// places them at center.
func NewGlyphSet(angle int32, center Point) (*GlyphSet, error) {
	gs := &GlyphSet{Angle: angle}
	for d := range gs.digits {
		n := Digit(d)
		local := table[n]
		if len(local) < 2 {
			return nil, fmt.Errorf("%s: %w", n, ErrDegenerate)
		}
		gs.digits[d] = Rotate(local, angle, center)
	}
	return gs, nil
}

// Digit returns the rotated glyph for the decimal digit d. The returned
// polygon must not be modified.
func (gs *GlyphSet) Digit(d int) Polygon {
	return gs.digits[d]
}
