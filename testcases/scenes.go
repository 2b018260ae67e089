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

package testcases

// handCases show the hands, and the second indicator at the places
// where it is pushed back onto the screen.
var handCases = []Scene{
	{Name: "ten_past_ten", State: at(10, 8, 37, 1), Config: config()},
	{Name: "midnight", State: at(0, 0, 0, 1), Config: config()},
	{Name: "second_ring_quarter", State: at(10, 8, 15, 1), Config: config()},
	{Name: "second_ring_five", State: at(10, 8, 25, 1), Config: config()},

	// the dot orbit leaves the screen between 10 and 20 seconds, and
	// between 40 and 50 seconds
	{Name: "second_edge_right_in", State: at(10, 8, 10, 1), Config: config()},
	{Name: "second_edge_right", State: at(10, 8, 11, 1), Config: config()},
	{Name: "second_edge_right_out", State: at(10, 8, 20, 1), Config: config()},
	{Name: "second_edge_left_in", State: at(10, 8, 40, 1), Config: config()},
	{Name: "second_edge_left", State: at(10, 8, 41, 1), Config: config()},
	{Name: "second_edge_left_out", State: at(10, 8, 50, 1), Config: config()},

	{Name: "no_seconds", State: at(10, 8, 37, 1), Config: config(noSeconds)},
}

// labelCases show the hour labels in 12 and 24 hour mode.
var labelCases = []Scene{
	{Name: "twelve_hour_afternoon", State: at(15, 40, 0, 1), Config: config()},
	{Name: "morning_24", State: at(9, 40, 0, 1), Config: config(use24)},
	{Name: "afternoon_24_zero", State: at(15, 40, 0, 1), Config: config(use24)},
	{Name: "afternoon_24", State: at(15, 40, 0, 1), Config: config(use24, twentyFour)},
}

// dateCases show one and two digit dates, plain and inverted.
var dateCases = []Scene{
	{Name: "day_1", State: at(10, 8, 0, 1), Config: config()},
	{Name: "day_7", State: at(10, 8, 0, 7), Config: config()},
	{Name: "day_10", State: at(10, 8, 0, 10), Config: config()},
	{Name: "day_28", State: at(10, 8, 0, 28), Config: config()},
	{Name: "day_31", State: at(10, 8, 0, 31), Config: config()},
	{Name: "day_28_inverted", State: at(10, 8, 0, 28), Config: config(invertDate)},
	{Name: "day_5_inverted", State: at(10, 8, 0, 5), Config: config(invertDate)},
}

// subtleCases sit on both sides of the boundaries of the default
// placement strategy. From twenty past to half past the minute hand
// bands override the hour bands, so the hour boundaries are probed
// outside those minutes.
var subtleCases = []Scene{
	{Name: "hour_early_before", State: at(3, 44, 0, 28), Config: config()},
	{Name: "hour_early_first", State: at(3, 45, 0, 28), Config: config()},
	{Name: "hour_early_last", State: at(4, 23, 0, 28), Config: config()},
	{Name: "hour_late_first", State: at(4, 25, 0, 28), Config: config()},
	{Name: "hour_near_miss", State: at(17, 20, 42, 28), Config: config()},
	{Name: "hour_late_resumes", State: at(17, 21, 0, 28), Config: config()},
	{Name: "hour_late_last", State: at(5, 23, 0, 28), Config: config()},
	{Name: "hour_late_after", State: at(5, 26, 0, 28), Config: config()},
	{Name: "hour_late_17_17", State: at(17, 17, 42, 28), Config: config()},

	{Name: "minute_early_first", State: at(10, 20, 0, 28), Config: config()},
	{Name: "minute_early_last", State: at(10, 23, 0, 28), Config: config()},
	{Name: "minute_late_first", State: at(10, 23, 1, 28), Config: config()},
	{Name: "minute_late_last", State: at(10, 25, 30, 28), Config: config()},
	{Name: "minute_late_after", State: at(10, 25, 31, 28), Config: config()},
}

// largeCases exercise the strategy which moves the date window to the
// 1:30 and 7:30 positions.
var largeCases = []Scene{
	{Name: "default", State: at(10, 8, 0, 28), Config: config(largeMoves)},
	{Name: "minute_block", State: at(10, 22, 0, 28), Config: config(largeMoves)},
	{Name: "minute_block_hour_7", State: at(7, 22, 0, 28), Config: config(largeMoves)},
	{Name: "hour_block", State: at(4, 50, 0, 28), Config: config(largeMoves)},
	{Name: "hour_block_minute_37", State: at(4, 37, 0, 28), Config: config(largeMoves)},
	{Name: "minute_and_hour_block", State: at(4, 22, 0, 28), Config: config(largeMoves)},
}
