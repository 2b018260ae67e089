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

package clockface

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/clockface/canvas"
	"seehuhn.de/go/clockface/shape"
	"seehuhn.de/go/clockface/trig"
)

func TestHandAngles(t *testing.T) {
	cases := []struct {
		s            ClockState
		minute, hour int32
		sweep        int32
	}{
		{ClockState{Hour: 0, Minute: 0, Second: 0}, 0, 0, 0},
		{ClockState{Hour: 3, Minute: 0}, 0, trig.MaxAngle / 4, 0},
		{ClockState{Hour: 15, Minute: 0}, 0, trig.MaxAngle / 4, 0},
		{ClockState{Hour: 6, Minute: 30}, trig.MaxAngle / 2, trig.Fraction(390, 720), trig.MaxAngle / 2},
		{ClockState{Hour: 12, Minute: 15, Second: 30}, trig.MaxAngle / 4, trig.Fraction(15, 720), trig.Fraction(930, 3600)},
	}
	for _, c := range cases {
		if got := MinuteAngle(c.s, false); got != c.minute {
			t.Errorf("MinuteAngle(%s, false) = %d, want %d", c.s, got, c.minute)
		}
		if got := MinuteAngle(c.s, true); got != c.sweep {
			t.Errorf("MinuteAngle(%s, true) = %d, want %d", c.s, got, c.sweep)
		}
		if got := HourAngle(c.s); got != c.hour {
			t.Errorf("HourAngle(%s) = %d, want %d", c.s, got, c.hour)
		}
	}
}

func TestSecondDot(t *testing.T) {
	cases := []struct {
		second int
		want   shape.Point
	}{
		{0, shape.Point{X: 72, Y: 6}},
		{30, shape.Point{X: 72, Y: 162}},
		{15, shape.Point{X: shape.Width - 2, Y: 84}},
		{45, shape.Point{X: 2, Y: 84}},
	}
	for _, c := range cases {
		if got := SecondDot(c.second); got != c.want {
			t.Errorf("SecondDot(%d) = %s, want %s", c.second, got, c.want)
		}
	}

	// the dot is clamped only strictly inside the two bands
	for _, s := range []int{10, 20, 40, 50} {
		p := SecondDot(s)
		if p.X == shape.Width-2 || p.X == 2 {
			t.Errorf("SecondDot(%d) = %s is clamped", s, p)
		}
	}
	for s := 11; s < 20; s++ {
		if p := SecondDot(s); p.X != shape.Width-2 {
			t.Errorf("SecondDot(%d).X = %d, want %d", s, p.X, shape.Width-2)
		}
	}
	for s := 41; s < 50; s++ {
		if p := SecondDot(s); p.X != 2 {
			t.Errorf("SecondDot(%d).X = %d, want 2", s, p.X)
		}
	}
}

func TestSecondRing(t *testing.T) {
	for s := range 60 {
		want := s%5 == 0
		if got := secondRing(s); got != want {
			t.Errorf("secondRing(%d) = %t, want %t", s, got, want)
		}
	}
}

func TestDrawHands(t *testing.T) {
	s := ClockState{Hour: 10, Minute: 8, Second: 30, Day: 1}
	cfg := DefaultConfig()

	rec := &canvas.Recorder{}
	drawHands(rec, s, cfg)

	var ops []canvas.Op
	for _, c := range rec.Commands {
		ops = append(ops, c.Op)
	}
	wantOps := []canvas.Op{
		canvas.OpFillPolygon, canvas.OpStrokePolygon, // minute hand
		canvas.OpFillPolygon, canvas.OpStrokePolygon, // hour hand
		canvas.OpFillCircle, canvas.OpStrokeCircle, // pivot
		canvas.OpFillCircle, canvas.OpStrokeCircle, // second dot with ring
	}
	if d := cmp.Diff(wantOps, ops); d != "" {
		t.Fatalf("ops (-want +got):\n%s", d)
	}

	minute := shape.Rotate(shape.Lookup(shape.MinuteHand), MinuteAngle(s, true), shape.Center)
	if d := cmp.Diff(minute, rec.Commands[0].Points); d != "" {
		t.Errorf("minute hand (-want +got):\n%s", d)
	}
	hour := shape.Rotate(shape.Lookup(shape.HourHand), HourAngle(s), shape.Center)
	if d := cmp.Diff(hour, rec.Commands[2].Points); d != "" {
		t.Errorf("hour hand (-want +got):\n%s", d)
	}

	pivot := rec.Commands[4]
	if pivot.Radius != 20 || pivot.Color != canvas.Background || pivot.Points[0] != shape.Center {
		t.Errorf("wrong pivot disk %+v", pivot)
	}
	dot := rec.Commands[6]
	if dot.Radius != 2 || dot.Color != canvas.Foreground || dot.Points[0] != SecondDot(30) {
		t.Errorf("wrong second dot %+v", dot)
	}
	ring := rec.Commands[7]
	if ring.Radius != 3 || ring.Color != canvas.Background {
		t.Errorf("wrong second ring %+v", ring)
	}
}

func TestDrawHandsVariants(t *testing.T) {
	s := ClockState{Hour: 10, Minute: 8, Second: 7, Day: 1}

	rec := &canvas.Recorder{}
	drawHands(rec, s, DefaultConfig())
	if n := len(rec.Commands); n != 7 {
		t.Errorf("with seconds off the ring: got %d commands, want 7", n)
	}

	cfg := DefaultConfig()
	cfg.ShowSeconds = false
	rec.Reset()
	drawHands(rec, s, cfg)
	if n := len(rec.Commands); n != 6 {
		t.Errorf("without seconds: got %d commands, want 6", n)
	}
	// without seconds the minute hand jumps
	minute := shape.Rotate(shape.Lookup(shape.MinuteHand), trig.Fraction(8, 60), shape.Center)
	if d := cmp.Diff(minute, rec.Commands[0].Points); d != "" {
		t.Errorf("minute hand (-want +got):\n%s", d)
	}
}
