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

import "fmt"

// Name identifies one of the shapes of the watch face.
type Name int

// The shapes of the watch face.
const (
	HourHand Name = iota
	MinuteHand
	HourTick
	MajorTick
	MinorTick
	DateBox
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	numNames
)

var names = [numNames]string{
	"HourHand", "MinuteHand", "HourTick", "MajorTick", "MinorTick", "DateBox",
	"Digit0", "Digit1", "Digit2", "Digit3", "Digit4",
	"Digit5", "Digit6", "Digit7", "Digit8", "Digit9",
}

func (n Name) String() string {
	if n < 0 || n >= numNames {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return names[n]
}

// Digit returns the name of the glyph for the decimal digit d.
// It panics if d is not in the range 0–9.
func Digit(d int) Name {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("shape: invalid digit %d", d))
	}
	return Digit0 + Name(d)
}

// Names returns all shape names in declaration order.
func Names() []Name {
	res := make([]Name, numNames)
	for i := range res {
		res[i] = Name(i)
	}
	return res
}

// Filled reports whether the shape is painted as a filled area.
// The minor tick and the digit glyphs are drawn as lines.
func (n Name) Filled() bool {
	switch n {
	case HourHand, MinuteHand, HourTick, MajorTick:
		return true
	default:
		return false
	}
}

// Lookup returns a copy of the unrotated points of the named shape.
func Lookup(n Name) Polygon {
	if n < 0 || n >= numNames {
		return nil
	}
	return table[n].Clone()
}

var table = [numNames]Polygon{
	HourHand: {
		{-8, -10}, {-10, -40}, {0, -60}, {10, -40}, {8, -10},
	},
	MinuteHand: {
		{-5, -10}, {-7, -60}, {0, -76}, {7, -60}, {5, -10},
	},
	HourTick: {
		{-3, 70}, {3, 70}, {3, 84}, {-3, 84},
	},
	MajorTick: {
		{-3, 60}, {3, 60}, {3, 84}, {-3, 84},
	},
	MinorTick: {
		{0, 76}, {0, 84},
	},
	DateBox: {
		{24, -8}, {26, -10}, {48, -10}, {50, -8},
		{50, 8}, {48, 10}, {26, 10}, {24, 8},
	},

	// The digits sit inside the date box, which spans x = 24…50.
	Digit0: {
		{33, -5}, {35, -7}, {39, -7}, {41, -5}, {41, 5},
		{39, 7}, {35, 7}, {33, 5}, {33, -5},
	},
	Digit1: {
		{33, -2}, {37, -7}, {37, 7}, {33, 7}, {41, 7},
	},
	Digit2: {
		{33, -5}, {35, -7}, {39, -7}, {41, -5}, {41, -2}, {33, 7}, {41, 7},
	},
	Digit3: {
		{33, -5}, {35, -7}, {39, -7}, {41, -5}, {41, 0}, {36, 0},
		{41, 0}, {41, 5}, {39, 7}, {35, 7}, {33, 5},
	},
	Digit4: {
		{39, 7}, {39, -7}, {33, 3}, {41, 3},
	},
	Digit5: {
		{41, -7}, {33, -7}, {33, 1}, {35, -2}, {39, -2},
		{41, 1}, {41, 5}, {39, 7}, {35, 7}, {33, 5},
	},
	Digit6: {
		{41, -5}, {39, -7}, {35, -7}, {33, -5}, {33, 5}, {35, 7},
		{39, 7}, {41, 5}, {41, 2}, {39, -1}, {35, -1}, {33, 2},
	},
	Digit7: {
		{33, -7}, {41, -7}, {35, 7},
	},
	Digit8: {
		{41, 0}, {33, 0}, {33, -5}, {35, -7}, {39, -7}, {41, -5},
		{41, 5}, {39, 7}, {35, 7}, {33, 5}, {33, -5},
	},
	Digit9: {
		{33, 5}, {35, 7}, {39, 7}, {41, 5}, {41, -5}, {39, -7},
		{35, -7}, {33, -5}, {33, -2}, {35, 1}, {39, 1}, {41, -2},
	},
}
