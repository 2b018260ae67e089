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

// Package placement decides where the date window goes.
//
// Both hands of the watch sweep across the date window. To keep the date
// readable, the window hops between a few fixed positions on the dial,
// depending on the current time. The positions and the time ranges were
// tuned by watching the face, and are not derived from the hand geometry.
package placement

import (
	"fmt"

	"seehuhn.de/go/clockface/trig"
)

// Slot is one of the fixed positions of the date window, named after the
// hour mark it points to.
type Slot int

// The date window positions.
const (
	Slot430 Slot = iota // the default position
	Slot400
	Slot500
	Slot130
	Slot730
)

// Angle returns the rotation of the date window for the slot.
func (s Slot) Angle() int32 {
	switch s {
	case Slot400:
		return trig.MaxAngle / 12
	case Slot500:
		return trig.MaxAngle / 6
	case Slot130:
		return -trig.MaxAngle / 8
	case Slot730:
		return 3 * trig.MaxAngle / 8
	default:
		return trig.MaxAngle / 8
	}
}

func (s Slot) String() string {
	switch s {
	case Slot430:
		return "4:30"
	case Slot400:
		return "4:00"
	case Slot500:
		return "5:00"
	case Slot130:
		return "1:30"
	case Slot730:
		return "7:30"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

// offsetTable gives the shift of both digits of a two digit date.
type offsetTable struct {
	leastX, leastY int
	mostX, mostY   int
}

// The glyph sets were rotated about the canvas centre, so the space
// between the two digits of a date depends on the angle.
var offsets = map[Slot]offsetTable{
	Slot400: {leastX: 5, leastY: 3, mostX: -5, mostY: -3},
	Slot500: {leastX: 3, leastY: 5, mostX: -3, mostY: -5},
}

var defaultOffsets = offsetTable{leastX: 4, leastY: 4, mostX: -5, mostY: -5}

// Offset returns the shift of a digit drawn in the slot. Single digit
// dates are centred in the window and are never shifted.
func (s Slot) Offset(twoDigits, mostSignificant bool) (dx, dy int) {
	if !twoDigits {
		return 0, 0
	}
	tab, ok := offsets[s]
	if !ok {
		tab = defaultOffsets
	}
	if mostSignificant {
		return tab.mostX, tab.mostY
	}
	return tab.leastX, tab.leastY
}
