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

// Package font lays out short strings of text as glyph outlines.
//
// The watch face only interprets a font as an opaque handle which it
// passes on to the canvas. Canvas implementations call Outline to obtain
// the filled shapes of the text.
package font

import (
	"errors"
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/clockface/shape"
)

// Alignment is the horizontal placement of text inside its rectangle.
type Alignment int

// Supported alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Overflow selects what happens to text which is wider than its
// rectangle.
type Overflow int

const (
	// TrailingEllipsis removes characters from the end of the text and
	// appends "…" until the result fits.
	TrailingEllipsis Overflow = iota

	// Fill draws the complete text, even where it extends beyond the
	// rectangle.
	Fill
)

const ellipsis = "…"

// Face is a scalable font at a fixed pixel size.
//
// A Face is not safe for concurrent use.
type Face struct {
	font *sfnt.Font
	ppem fixed.Int26_6
	buf  sfnt.Buffer

	ascent float64
}

// Load parses TrueType or OpenType font data and returns a face with the
// given size in pixels per em.
func Load(data []byte, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %g", size)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	face := &Face{
		font: f,
		ppem: fixed.Int26_6(size * 64),
	}
	m, err := f.Metrics(&face.buf, face.ppem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("reading font metrics: %w", err)
	}
	face.ascent = fromFixed(m.Ascent)
	return face, nil
}

// Default returns the Go Bold font at the given size.
func Default(size float64) (*Face, error) {
	return Load(gobold.TTF, size)
}

// Size returns the size of the face in pixels per em.
func (f *Face) Size() float64 {
	return fromFixed(f.ppem)
}

// Width returns the advance width of text in pixels.
func (f *Face) Width(text string) (float64, error) {
	var w fixed.Int26_6
	for _, r := range text {
		idx, err := f.glyph(r)
		if err != nil {
			return 0, err
		}
		adv, err := f.font.GlyphAdvance(&f.buf, idx, f.ppem, xfont.HintingNone)
		if err != nil {
			return 0, fmt.Errorf("advance of %q: %w", r, err)
		}
		w += adv
	}
	return fromFixed(w), nil
}

// Fit returns the text which is drawn for the given rectangle width.
func (f *Face) Fit(text string, width float64, overflow Overflow) (string, error) {
	w, err := f.Width(text)
	if err != nil || overflow != TrailingEllipsis || w <= width {
		return text, err
	}

	runes := []rune(text)
	for n := len(runes) - 1; n >= 0; n-- {
		candidate := string(runes[:n]) + ellipsis
		w, err := f.Width(candidate)
		if err != nil {
			return "", err
		}
		if w <= width {
			return candidate, nil
		}
	}
	return "", nil
}

// Outline returns the glyph outlines of text, placed inside box.
// The baseline is one ascent below the top of the box.
func (f *Face) Outline(text string, box shape.Rect, overflow Overflow, align Alignment) (*path.Data, error) {
	text, err := f.Fit(text, float64(box.W), overflow)
	if err != nil {
		return nil, err
	}
	w, err := f.Width(text)
	if err != nil {
		return nil, err
	}

	x := float64(box.Min.X)
	switch align {
	case AlignCenter:
		x += (float64(box.W) - w) / 2
	case AlignRight:
		x += float64(box.W) - w
	}
	y := float64(box.Min.Y) + f.ascent

	res := &path.Data{}
	for _, r := range text {
		idx, err := f.glyph(r)
		if err != nil {
			return nil, err
		}
		segs, err := f.font.LoadGlyph(&f.buf, idx, f.ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("outline of %q: %w", r, err)
		}
		appendSegments(res, segs, vec.Vec2{X: x, Y: y})

		adv, err := f.font.GlyphAdvance(&f.buf, idx, f.ppem, xfont.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("advance of %q: %w", r, err)
		}
		x += fromFixed(adv)
	}
	return res, nil
}

// ErrMissingGlyph is returned for characters which the font cannot show.
var ErrMissingGlyph = errors.New("missing glyph")

func (f *Face) glyph(r rune) (sfnt.GlyphIndex, error) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, fmt.Errorf("glyph for %q: %w", r, err)
	}
	if idx == 0 {
		return 0, fmt.Errorf("%q: %w", r, ErrMissingGlyph)
	}
	return idx, nil
}

// appendSegments converts glyph segments, which have the y axis pointing
// down, into path commands shifted by origin.
func appendSegments(d *path.Data, segs sfnt.Segments, origin vec.Vec2) {
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				d.Cmds = append(d.Cmds, path.CmdClose)
			}
			d.Cmds = append(d.Cmds, path.CmdMoveTo)
			d.Coords = append(d.Coords, toVec(seg.Args[0], origin))
			open = true
		case sfnt.SegmentOpLineTo:
			d.Cmds = append(d.Cmds, path.CmdLineTo)
			d.Coords = append(d.Coords, toVec(seg.Args[0], origin))
		case sfnt.SegmentOpQuadTo:
			d.Cmds = append(d.Cmds, path.CmdQuadTo)
			d.Coords = append(d.Coords,
				toVec(seg.Args[0], origin), toVec(seg.Args[1], origin))
		case sfnt.SegmentOpCubeTo:
			d.Cmds = append(d.Cmds, path.CmdCubeTo)
			d.Coords = append(d.Coords,
				toVec(seg.Args[0], origin), toVec(seg.Args[1], origin), toVec(seg.Args[2], origin))
		}
	}
	if open {
		d.Cmds = append(d.Cmds, path.CmdClose)
	}
}

func toVec(p fixed.Point26_6, origin vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: origin.X + fromFixed(p.X), Y: origin.Y + fromFixed(p.Y)}
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
