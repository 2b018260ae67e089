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
	"seehuhn.de/go/clockface/placement"
	"seehuhn.de/go/clockface/shape"
)

func mustGlyphs(t *testing.T, s placement.Strategy) map[placement.Slot]*shape.GlyphSet {
	t.Helper()
	res := make(map[placement.Slot]*shape.GlyphSet)
	for _, slot := range s.Slots() {
		gs, err := shape.NewGlyphSet(slot.Angle(), shape.Center)
		if err != nil {
			t.Fatal(err)
		}
		res[slot] = gs
	}
	return res
}

// edges returns the number of line segments in a glyph.
func edges(d int) int {
	return len(shape.Lookup(shape.Digit(d))) - 1
}

func TestDateSingleDigit(t *testing.T) {
	cfg := DefaultConfig()
	glyphs := mustGlyphs(t, cfg.Strategy)
	s := ClockState{Hour: 10, Minute: 8, Second: 0, Day: 7}

	rec := &canvas.Recorder{}
	drawDateWindow(rec, glyphs, s, cfg)

	box := shape.Rotate(shape.Lookup(shape.DateBox), placement.Slot430.Angle(), shape.Center)
	first := rec.Commands[0]
	if first.Op != canvas.OpStrokePolygon || first.Color != canvas.Foreground {
		t.Fatalf("unexpected first command %+v", first)
	}
	if d := cmp.Diff(box, first.Points); d != "" {
		t.Errorf("date box (-want +got):\n%s", d)
	}

	lines := rec.Filter(canvas.OpStrokeLine)
	if len(lines) != 4*edges(7) {
		t.Fatalf("got %d lines, want %d", len(lines), 4*edges(7))
	}
	glyph := glyphs[placement.Slot430].Digit(7)
	for i, o := range strokeOffsets {
		want := shape.Polygon{glyph[0].Add(o), glyph[1].Add(o)}
		if d := cmp.Diff(want, lines[i].Points); d != "" {
			t.Errorf("line %d (-want +got):\n%s", i, d)
		}
	}
}

func TestDateTwoDigits(t *testing.T) {
	cfg := DefaultConfig()
	glyphs := mustGlyphs(t, cfg.Strategy)
	s := ClockState{Hour: 10, Minute: 8, Second: 0, Day: 28}

	rec := &canvas.Recorder{}
	drawDateWindow(rec, glyphs, s, cfg)

	lines := rec.Filter(canvas.OpStrokeLine)
	nLeast := 4 * edges(8)
	nMost := 4 * edges(2)
	if len(lines) != nLeast+nMost {
		t.Fatalf("got %d lines, want %d", len(lines), nLeast+nMost)
	}

	// least significant digit first, shifted by (4,4)
	eight := glyphs[placement.Slot430].Digit(8)
	want := shape.Polygon{eight[0].Add(shape.Point{X: 4, Y: 4}), eight[1].Add(shape.Point{X: 4, Y: 4})}
	if d := cmp.Diff(want, lines[0].Points); d != "" {
		t.Errorf("first line (-want +got):\n%s", d)
	}

	// most significant digit last, shifted by (-5,-5)
	two := glyphs[placement.Slot430].Digit(2)
	n := len(two)
	shift := shape.Point{X: -5 + 1, Y: -5 + 1}
	want = shape.Polygon{two[n-2].Add(shift), two[n-1].Add(shift)}
	if d := cmp.Diff(want, lines[len(lines)-1].Points); d != "" {
		t.Errorf("last line (-want +got):\n%s", d)
	}
}

func TestDateSlotOffsets(t *testing.T) {
	cfg := DefaultConfig()
	glyphs := mustGlyphs(t, cfg.Strategy)

	// 17:17 puts the window at 4:00
	s := ClockState{Hour: 17, Minute: 17, Second: 42, Day: 10}
	rec := &canvas.Recorder{}
	drawDateWindow(rec, glyphs, s, cfg)

	box := shape.Rotate(shape.Lookup(shape.DateBox), placement.Slot400.Angle(), shape.Center)
	if d := cmp.Diff(box, rec.Commands[0].Points); d != "" {
		t.Errorf("date box (-want +got):\n%s", d)
	}
	zero := glyphs[placement.Slot400].Digit(0)
	lines := rec.Filter(canvas.OpStrokeLine)
	want := shape.Polygon{zero[0].Add(shape.Point{X: 5, Y: 3}), zero[1].Add(shape.Point{X: 5, Y: 3})}
	if d := cmp.Diff(want, lines[0].Points); d != "" {
		t.Errorf("first line (-want +got):\n%s", d)
	}

	// 17:20 is the near miss, which keeps the default window
	s = ClockState{Hour: 17, Minute: 20, Second: 42, Day: 10}
	rec.Reset()
	drawDateWindow(rec, glyphs, s, cfg)
	box = shape.Rotate(shape.Lookup(shape.DateBox), placement.Slot430.Angle(), shape.Center)
	if d := cmp.Diff(box, rec.Commands[0].Points); d != "" {
		t.Errorf("date box (-want +got):\n%s", d)
	}
}

func TestDateInverted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InvertDate = true
	glyphs := mustGlyphs(t, cfg.Strategy)

	rec := &canvas.Recorder{}
	drawDateWindow(rec, glyphs, ClockState{Hour: 10, Minute: 8, Day: 1}, cfg)

	if c := rec.Commands[0]; c.Op != canvas.OpFillPolygon || c.Color != canvas.Foreground {
		t.Errorf("inverted box drawn as %s in %s", c.Op, c.Color)
	}
	for _, c := range rec.Filter(canvas.OpStrokeLine) {
		if c.Color != canvas.Background {
			t.Fatalf("inverted digit drawn in %s", c.Color)
		}
	}
}

func TestDateLargeStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = placement.Large
	glyphs := mustGlyphs(t, cfg.Strategy)

	for _, slot := range []placement.Slot{placement.Slot430, placement.Slot130, placement.Slot730} {
		if glyphs[slot] == nil {
			t.Errorf("no glyphs for slot %s", slot)
		}
	}

	rec := &canvas.Recorder{}
	drawDateWindow(rec, glyphs, ClockState{Hour: 4, Minute: 22, Day: 3}, cfg)
	box := shape.Rotate(shape.Lookup(shape.DateBox), placement.Slot730.Angle(), shape.Center)
	if d := cmp.Diff(box, rec.Commands[0].Points); d != "" {
		t.Errorf("date box (-want +got):\n%s", d)
	}
}
