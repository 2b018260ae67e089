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
	"errors"
	"testing"

	"seehuhn.de/go/clockface/canvas"
	"seehuhn.de/go/clockface/font"
	"seehuhn.de/go/clockface/placement"
)

// fakeTicks is a TickSource which is driven by the test.
type fakeTicks struct {
	g            Granularity
	handler      TickHandler
	unsubscribed int
}

func (f *fakeTicks) Subscribe(g Granularity, h TickHandler) {
	f.g = g
	f.handler = h
}

func (f *fakeTicks) Unsubscribe() {
	f.handler = nil
	f.unsubscribed++
}

func (f *fakeTicks) send(s ClockState) {
	if f.handler != nil {
		f.handler(s)
	}
}

func newTestController(t *testing.T, cfg Config, initial ClockState) (*Controller, *fakeTicks, *int) {
	t.Helper()
	c, err := NewController(cfg, initial, nil)
	if err != nil {
		t.Fatal(err)
	}
	src := &fakeTicks{}
	calls := new(int)
	err = c.Start(src, func() { *calls++ })
	if err != nil {
		t.Fatal(err)
	}
	return c, src, calls
}

func TestControllerInitiallyDirty(t *testing.T) {
	c, err := NewController(DefaultConfig(), ClockState{Hour: 1, Day: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Dirty() != AllLayers {
		t.Errorf("new controller: dirty = %s, want %s", c.Dirty(), AllLayers)
	}
	if err := c.Redraw(&canvas.Recorder{}); err != nil {
		t.Fatal(err)
	}
	if c.Dirty() != 0 {
		t.Errorf("after redraw: dirty = %s", c.Dirty())
	}
}

func TestControllerWithSeconds(t *testing.T) {
	c, src, calls := newTestController(t, DefaultConfig(), ClockState{Hour: 10, Minute: 8, Second: 0, Day: 5})
	if src.g != SecondUnit {
		t.Errorf("subscribed with %s, want second", src.g)
	}
	_ = c.Redraw(&canvas.Recorder{})

	src.send(ClockState{Hour: 10, Minute: 8, Second: 1, Day: 5})
	if c.Dirty() != HandLayer {
		t.Errorf("dirty = %s, want hands", c.Dirty())
	}
	if *calls != 1 {
		t.Errorf("onDirty called %d times, want 1", *calls)
	}
	if got := c.State().Second; got != 1 {
		t.Errorf("state not updated: second = %d", got)
	}

	src.send(ClockState{Hour: 0, Minute: 0, Second: 0, Day: 6})
	if c.Dirty() != AllLayers {
		t.Errorf("after day change: dirty = %s, want %s", c.Dirty(), AllLayers)
	}
	if *calls != 2 {
		t.Errorf("onDirty called %d times, want 2", *calls)
	}
}

func TestControllerWithoutSeconds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowSeconds = false
	c, src, calls := newTestController(t, cfg, ClockState{Hour: 10, Minute: 8, Day: 5})
	if src.g != MinuteUnit {
		t.Errorf("subscribed with %s, want minute", src.g)
	}
	_ = c.Redraw(&canvas.Recorder{})

	src.send(ClockState{Hour: 10, Minute: 8, Second: 7, Day: 5})
	if c.Dirty() != 0 || *calls != 0 {
		t.Errorf("off-quarter tick: dirty = %s, calls = %d", c.Dirty(), *calls)
	}
	if got := c.State().Second; got != 7 {
		t.Errorf("state not updated: second = %d", got)
	}

	src.send(ClockState{Hour: 10, Minute: 9, Second: 0, Day: 5})
	if c.Dirty() != HandLayer || *calls != 1 {
		t.Errorf("minute tick: dirty = %s, calls = %d", c.Dirty(), *calls)
	}
}

func TestControllerRedraw(t *testing.T) {
	s := ClockState{Hour: 10, Minute: 8, Second: 30, Day: 12}

	f, err := font.Default(40)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewController(DefaultConfig(), s, f)
	if err != nil {
		t.Fatal(err)
	}

	rec := &canvas.Recorder{}
	if err := c.Redraw(rec); err != nil {
		t.Fatal(err)
	}

	first := rec.Commands[0]
	if first.Op != canvas.OpFillPolygon || first.Color != canvas.Background || len(first.Points) != 4 {
		t.Errorf("redraw does not start by clearing: %+v", first)
	}
	if n := len(rec.Filter(canvas.OpDrawText)); n != 4 {
		t.Errorf("got %d labels, want 4", n)
	}
	last := rec.Commands[len(rec.Commands)-2]
	if last.Op != canvas.OpFillCircle || last.Points[0] != SecondDot(30) {
		t.Errorf("second dot is not drawn on top: %+v", last)
	}

	// the hand layer alone
	rec.Reset()
	if err := c.DrawHands(rec); err != nil {
		t.Fatal(err)
	}
	if n := len(rec.Commands); n != 8 {
		t.Errorf("hand layer has %d commands, want 8", n)
	}
}

func TestControllerNoFace(t *testing.T) {
	c, err := NewController(DefaultConfig(), ClockState{Day: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	rec := &canvas.Recorder{}
	if err := c.DrawBackground(rec); err != nil {
		t.Fatal(err)
	}
	if n := len(rec.Filter(canvas.OpDrawText)); n != 0 {
		t.Errorf("got %d labels without a font", n)
	}
}

func TestControllerGlyphSets(t *testing.T) {
	for _, strategy := range []placement.Strategy{placement.Subtle, placement.Large} {
		cfg := DefaultConfig()
		cfg.Strategy = strategy
		c, err := NewController(cfg, ClockState{Day: 1}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(c.glyphs) != 3 {
			t.Errorf("%s: %d glyph sets, want 3", strategy, len(c.glyphs))
		}
		for _, slot := range strategy.Slots() {
			if gs := c.glyphs[slot]; gs == nil || gs.Angle != slot.Angle() {
				t.Errorf("%s: wrong glyph set for slot %s", strategy, slot)
			}
		}
	}
}

func TestControllerClose(t *testing.T) {
	c, src, calls := newTestController(t, DefaultConfig(), ClockState{Day: 1})
	_ = c.Redraw(&canvas.Recorder{})

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if src.unsubscribed != 1 {
		t.Errorf("unsubscribed %d times, want 1", src.unsubscribed)
	}
	if c.glyphs != nil {
		t.Error("glyph sets not released")
	}

	c.HandleTick(ClockState{Second: 15, Day: 2})
	if *calls != 0 || c.Dirty() != 0 {
		t.Errorf("tick after close: calls = %d, dirty = %s", *calls, c.Dirty())
	}

	rec := &canvas.Recorder{}
	if err := c.Redraw(rec); !errors.Is(err, ErrClosed) {
		t.Errorf("Redraw after close: %v", err)
	}
	if err := c.DrawBackground(rec); !errors.Is(err, ErrClosed) {
		t.Errorf("DrawBackground after close: %v", err)
	}
	if err := c.DrawHands(rec); !errors.Is(err, ErrClosed) {
		t.Errorf("DrawHands after close: %v", err)
	}
	if err := c.Start(src, nil); !errors.Is(err, ErrClosed) {
		t.Errorf("Start after close: %v", err)
	}
	if err := c.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close: %v", err)
	}
	if len(rec.Commands) != 0 {
		t.Errorf("closed controller drew %d commands", len(rec.Commands))
	}
}

func TestLayersString(t *testing.T) {
	cases := map[Layers]string{
		0:               "none",
		BackgroundLayer: "background",
		HandLayer:       "hands",
		AllLayers:       "background|hands",
		HandLayer | 8:   "hands|0x08",
	}
	for l, want := range cases {
		if got := l.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", uint8(l), got, want)
		}
	}
}
