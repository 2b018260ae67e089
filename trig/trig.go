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

// Package trig implements integer sine and cosine lookup.
//
// Angles are measured in units of 1/MaxAngle of a full turn, and results
// are scaled so that 1.0 corresponds to MaxRatio. All arithmetic done
// with these values stays in integers.
package trig

import "math"

const (
	// MaxAngle is the angle of one full turn.
	MaxAngle = 0x10000

	// MaxRatio is the fixed-point representation of 1.0.
	MaxRatio = 0xffff
)

// quarter holds sin(a) for a in [0, MaxAngle/4].
var quarter [MaxAngle/4 + 1]int32

func init() {
	for i := range quarter {
		s := math.Sin(2 * math.Pi * float64(i) / MaxAngle)
		quarter[i] = int32(math.Round(s * MaxRatio))
	}
}

// Sin returns the sine of angle, scaled by MaxRatio.
// Any integer angle is accepted, including negative ones.
func Sin(angle int32) int32 {
	a := Normalize(angle)
	switch {
	case a <= MaxAngle/4:
		return quarter[a]
	case a <= MaxAngle/2:
		return quarter[MaxAngle/2-a]
	case a <= 3*MaxAngle/4:
		return -quarter[a-MaxAngle/2]
	default:
		return -quarter[MaxAngle-a]
	}
}

// Cos returns the cosine of angle, scaled by MaxRatio.
func Cos(angle int32) int32 {
	return Sin(angle + MaxAngle/4)
}

// Normalize maps angle into the range [0, MaxAngle).
func Normalize(angle int32) int32 {
	a := angle % MaxAngle
	if a < 0 {
		a += MaxAngle
	}
	return a
}

// Fraction returns the angle corresponding to num/den of a full turn,
// rounded toward zero.
func Fraction(num, den int) int32 {
	return int32(num * MaxAngle / den)
}
