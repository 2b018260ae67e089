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

package placement

import "fmt"

// Strategy selects the set of slots and the rules for choosing between
// them.
type Strategy int

const (
	// Subtle keeps the window between the 4:00 and 5:00 marks.
	// This is less noticeable, but the hands may still cover part of
	// the window.
	Subtle Strategy = iota

	// Large moves the window to the 1:30 or 7:30 mark when a hand is
	// near 4:30.
	Large
)

func (s Strategy) String() string {
	switch s {
	case Subtle:
		return "subtle"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts the output of Strategy.String back into a value.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "subtle":
		return Subtle, nil
	case "large":
		return Large, nil
	default:
		return 0, fmt.Errorf("unknown placement strategy %q", s)
	}
}

// Slots returns the three slots used by the strategy, default first.
func (s Strategy) Slots() [3]Slot {
	if s == Large {
		return [3]Slot{Slot430, Slot130, Slot730}
	}
	return [3]Slot{Slot430, Slot400, Slot500}
}

// State names the rule which selected a slot.
type State int

// The rules of both strategies.
const (
	Default State = iota

	// NearMiss covers 5:18 to 5:20, where the default position has just
	// enough room between the hands.
	NearMiss

	// LateShift moves the window to 4:00 while a hand covers the lower
	// half of the default position.
	LateShift

	// EarlyShift moves the window to 5:00 while a hand covers the upper
	// half of the default position.
	EarlyShift

	// MinuteBlock moves the window away from the minute hand at :20 to :25.
	MinuteBlock

	// HourBlock moves the window away from the hour hand between 4 and 6.
	HourBlock
)

func (s State) String() string {
	switch s {
	case Default:
		return "Default"
	case NearMiss:
		return "NearMiss"
	case LateShift:
		return "LateShift"
	case EarlyShift:
		return "EarlyShift"
	case MinuteBlock:
		return "MinuteBlock"
	case HourBlock:
		return "HourBlock"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Decision is the outcome of Decide. It is only valid for the redraw it
// was computed for.
type Decision struct {
	Slot  Slot
	State State
}

// Angle returns the rotation of the date window.
func (d Decision) Angle() int32 {
	return d.Slot.Angle()
}

// Offset returns the shift of one digit of the date, see Slot.Offset.
func (d Decision) Offset(twoDigits, mostSignificant bool) (dx, dy int) {
	return d.Slot.Offset(twoDigits, mostSignificant)
}

// Decide returns the date window placement for the given time of day.
// The hour is in the range 0–23, minute and second in 0–59.
func Decide(s Strategy, hour, minute, second int) Decision {
	if s == Large {
		return decideLarge(hour, minute)
	}
	return decideSubtle(hour, minute, second)
}

func decideSubtle(hour, minute, second int) Decision {
	// seconds since the full hour, and minutes on the 12 hour dial
	mins := minute*60 + second
	hrs := (hour%12)*60 + minute

	switch {
	case hrs >= 5*60+18 && hrs <= 5*60+20:
		return Decision{Slot: Slot430, State: NearMiss}
	case hrs > 4*60+24 && hrs <= 5*60+23, mins > 23*60 && mins <= 25*60+30:
		return Decision{Slot: Slot400, State: LateShift}
	case hrs >= 3*60+45 && hrs <= 4*60+24, mins >= 20*60 && mins <= 23*60:
		return Decision{Slot: Slot500, State: EarlyShift}
	default:
		return Decision{Slot: Slot430, State: Default}
	}
}

func decideLarge(hour, minute int) Decision {
	h := hour % 12
	minuteNear430 := minute >= 20 && minute <= 25
	minuteNear130 := minute >= 5 && minute <= 10
	minuteNear730 := minute >= 35 && minute <= 40
	hourNear430 := h >= 4 && h <= 5
	hourNear130 := h >= 1 && h <= 2
	hourNear730 := h >= 7 && h <= 8

	switch {
	case minuteNear430 && !hourNear730:
		return Decision{Slot: Slot730, State: MinuteBlock}
	case minuteNear430 && !hourNear130:
		return Decision{Slot: Slot130, State: MinuteBlock}
	case hourNear430 && !minuteNear730:
		return Decision{Slot: Slot730, State: HourBlock}
	case hourNear430 && !minuteNear130:
		return Decision{Slot: Slot130, State: HourBlock}
	default:
		return Decision{Slot: Slot430, State: Default}
	}
}
