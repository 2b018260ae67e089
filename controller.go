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
	"fmt"
	"log/slog"
	"strings"

	"seehuhn.de/go/clockface/canvas"
	"seehuhn.de/go/clockface/font"
	"seehuhn.de/go/clockface/placement"
	"seehuhn.de/go/clockface/shape"
)

// ErrClosed is returned when a closed Controller is used.
var ErrClosed = errors.New("controller is closed")

// Layers is a set of display layers.
type Layers uint8

// The display layers, from bottom to top.
const (
	BackgroundLayer Layers = 1 << iota
	HandLayer

	AllLayers = BackgroundLayer | HandLayer
)

func (l Layers) String() string {
	if l == 0 {
		return "none"
	}
	var parts []string
	if l&BackgroundLayer != 0 {
		parts = append(parts, "background")
	}
	if l&HandLayer != 0 {
		parts = append(parts, "hands")
	}
	if rest := l &^ AllLayers; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// Controller holds the state of a running watch face. It decides after
// every tick which layers need repainting, and paints them on request.
//
// A Controller is not safe for concurrent use. The tick handler, Redraw
// and Close must be called from the same goroutine, which is the case
// when SystemTicks drives the controller.
type Controller struct {
	cfg  Config
	face *font.Face

	state ClockState
	dirty Layers

	// glyphs holds one glyph set for every slot the placement strategy
	// may choose.
	glyphs map[placement.Slot]*shape.GlyphSet

	src     TickSource
	onDirty func()
	closed  bool
}

// NewController creates a controller showing the given initial state.
// The face is used for the hour labels; if it is nil, the labels are
// omitted. Both layers start out dirty.
func NewController(cfg Config, initial ClockState, face *font.Face) (*Controller, error) {
	glyphs := make(map[placement.Slot]*shape.GlyphSet)
	for _, slot := range cfg.Strategy.Slots() {
		gs, err := shape.NewGlyphSet(slot.Angle(), shape.Center)
		if err != nil {
			return nil, fmt.Errorf("glyph set for slot %s: %w", slot, err)
		}
		glyphs[slot] = gs
	}

	c := &Controller{
		cfg:    cfg,
		face:   face,
		state:  initial,
		dirty:  AllLayers,
		glyphs: glyphs,
	}
	return c, nil
}

// Start subscribes the controller to src. After every tick which leaves
// a layer dirty, onDirty is called. The callback may be nil.
func (c *Controller) Start(src TickSource, onDirty func()) error {
	if c.closed {
		return ErrClosed
	}
	if c.src != nil {
		c.src.Unsubscribe()
	}
	c.src = src
	c.onDirty = onDirty
	g := c.cfg.Granularity()
	src.Subscribe(g, c.HandleTick)
	Logger().Info("controller started",
		slog.String("granularity", g.String()),
		slog.String("strategy", c.cfg.Strategy.String()))
	return nil
}

// HandleTick records the new clock state and marks the layers which
// need to be repainted. The background changes only when the day of
// month changes. The hands are repainted on every tick when seconds are
// shown, and on quarter minutes otherwise.
func (c *Controller) HandleTick(s ClockState) {
	if c.closed {
		Logger().Warn("tick after close", slog.String("state", s.String()))
		return
	}

	var marked Layers
	if s.Day != c.state.Day {
		marked |= BackgroundLayer
	}
	if c.cfg.ShowSeconds || s.Second%15 == 0 {
		marked |= HandLayer
	}
	c.state = s
	c.dirty |= marked

	Logger().Debug("tick",
		slog.String("state", s.String()),
		slog.String("marked", marked.String()))

	if marked != 0 && c.onDirty != nil {
		c.onDirty()
	}
}

// State returns the clock state last received.
func (c *Controller) State() ClockState {
	return c.state
}

// Dirty returns the layers which changed since the last Redraw.
func (c *Controller) Dirty() Layers {
	return c.dirty
}

// Redraw paints the face onto cv and clears the dirty flags. All layers
// are painted, bottom to top, since the hands cover parts of the
// background.
func (c *Controller) Redraw(cv canvas.Canvas) error {
	if c.closed {
		return ErrClosed
	}
	c.paintBackground(cv)
	drawHands(cv, c.state, c.cfg)
	c.dirty = 0
	return nil
}

// DrawBackground paints the background layer: the dial, the hour
// labels and the date window.
func (c *Controller) DrawBackground(cv canvas.Canvas) error {
	if c.closed {
		return ErrClosed
	}
	c.paintBackground(cv)
	return nil
}

// DrawHands paints the hand layer.
func (c *Controller) DrawHands(cv canvas.Canvas) error {
	if c.closed {
		return ErrClosed
	}
	drawHands(cv, c.state, c.cfg)
	return nil
}

func (c *Controller) paintBackground(cv canvas.Canvas) {
	cv.FillPolygon(screen, canvas.Background)
	drawTicks(cv)
	if c.face != nil {
		drawLabels(cv, c.face, c.state, c.cfg)
	}
	drawDateWindow(cv, c.glyphs, c.state, c.cfg)
}

// Close unsubscribes from the tick source and releases the glyph sets.
// Afterwards, all methods of the controller return ErrClosed.
func (c *Controller) Close() error {
	if c.closed {
		return ErrClosed
	}
	if c.src != nil {
		c.src.Unsubscribe()
		c.src = nil
	}
	c.onDirty = nil
	c.glyphs = nil
	c.closed = true
	Logger().Info("controller closed")
	return nil
}

// screen covers the whole canvas.
var screen = shape.Polygon{
	{X: 0, Y: 0},
	{X: shape.Width, Y: 0},
	{X: shape.Width, Y: shape.Height},
	{X: 0, Y: shape.Height},
}
