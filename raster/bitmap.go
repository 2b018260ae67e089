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

package raster

import (
	"image"
	"strings"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/clockface/canvas"
	"seehuhn.de/go/clockface/font"
	"seehuhn.de/go/clockface/shape"
)

// The grey levels of the two palette colours.
const (
	backgroundGray = 0x00
	foregroundGray = 0xff
)

// Bitmap is a canvas.Canvas drawing into a two-colour greyscale image.
//
// A pixel is painted when at least half of it is covered. Integer
// canvas points are mapped to pixel centres, so that a line between two
// points covers the pixels of both end points.
type Bitmap struct {
	// Inverted swaps foreground and background for all later drawing.
	Inverted bool

	img  *image.Gray
	r    *Rasterizer
	path *path.Data
}

// NewBitmap allocates a bitmap of the given size, filled with the
// background colour.
func NewBitmap(width, height int) *Bitmap {
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	r := NewRasterizer(clip)
	r.Width = 1
	r.Cap = graphics.LineCapSquare
	b := &Bitmap{
		img:  image.NewGray(image.Rect(0, 0, width, height)),
		r:    r,
		path: &path.Data{},
	}
	b.Clear()
	return b
}

// Clear fills the bitmap with the background colour.
func (b *Bitmap) Clear() {
	g := b.gray(canvas.Background)
	for i := range b.img.Pix {
		b.img.Pix[i] = g
	}
}

// Image returns the underlying image. Later drawing operations modify
// the returned image.
func (b *Bitmap) Image() *image.Gray {
	return b.img
}

// Scaled returns a copy of the image enlarged by the integer factor n,
// without smoothing.
func (b *Bitmap) Scaled(n int) *image.Gray {
	if n <= 1 {
		res := image.NewGray(b.img.Rect)
		copy(res.Pix, b.img.Pix)
		return res
	}
	bounds := b.img.Bounds()
	res := image.NewGray(image.Rect(0, 0, bounds.Dx()*n, bounds.Dy()*n))
	draw.NearestNeighbor.Scale(res, res.Bounds(), b.img, bounds, draw.Src, nil)
	return res
}

// At reports whether the pixel (x, y) shows the foreground colour.
func (b *Bitmap) At(x, y int) bool {
	if !(image.Point{X: x, Y: y}.In(b.img.Rect)) {
		return false
	}
	return b.img.GrayAt(x, y).Y == foregroundGray
}

// String renders the bitmap as text, one line per pixel row, with '#'
// for foreground and '.' for background pixels.
func (b *Bitmap) String() string {
	bounds := b.img.Bounds()
	var sb strings.Builder
	sb.Grow((bounds.Dx() + 1) * bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if b.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FillPolygon implements the canvas.Canvas interface.
func (b *Bitmap) FillPolygon(pts shape.Polygon, c canvas.Color) {
	if len(pts) < 3 {
		return
	}
	b.resetPath()
	b.polygon(pts)
	b.r.CTM = pixelCentres
	b.r.FillNonZero(b.path, b.painter(c))
}

// StrokePolygon implements the canvas.Canvas interface.
func (b *Bitmap) StrokePolygon(pts shape.Polygon, c canvas.Color) {
	if len(pts) == 0 {
		return
	}
	b.resetPath()
	b.polygon(pts)
	b.r.CTM = pixelCentres
	b.r.Stroke(b.path, b.painter(c))
}

// StrokeLine implements the canvas.Canvas interface.
func (b *Bitmap) StrokeLine(p1, p2 shape.Point, c canvas.Color) {
	b.resetPath()
	b.path.MoveTo(p1.Vec())
	b.path.LineTo(p2.Vec())
	b.r.CTM = pixelCentres
	b.r.Stroke(b.path, b.painter(c))
}

// FillCircle implements the canvas.Canvas interface. The disc contains
// the pixels whose centres are at most radius away from center.
func (b *Bitmap) FillCircle(center shape.Point, radius int, c canvas.Color) {
	if radius < 0 {
		return
	}
	b.resetPath()
	shape.AppendCircle(b.path, center.Vec(), float64(radius)+0.5, false)
	b.r.CTM = pixelCentres
	b.r.FillNonZero(b.path, b.painter(c))
}

// StrokeCircle implements the canvas.Canvas interface.
func (b *Bitmap) StrokeCircle(center shape.Point, radius int, c canvas.Color) {
	if radius < 0 {
		return
	}
	b.resetPath()
	shape.AppendCircle(b.path, center.Vec(), float64(radius), false)
	b.r.CTM = pixelCentres
	b.r.Stroke(b.path, b.painter(c))
}

// DrawText implements the canvas.Canvas interface. Text which cannot be
// laid out is not drawn.
func (b *Bitmap) DrawText(text string, f *font.Face, box shape.Rect, overflow font.Overflow, align font.Alignment, c canvas.Color) {
	if f == nil {
		return
	}
	outline, err := f.Outline(text, box, overflow, align)
	if err != nil {
		return
	}
	b.r.CTM = matrix.Identity
	b.r.FillNonZero(outline, b.painter(c))
}

// pixelCentres moves integer points to the centres of their pixels.
var pixelCentres = matrix.Matrix{1, 0, 0, 1, 0.5, 0.5}

func (b *Bitmap) resetPath() {
	b.path.Cmds = b.path.Cmds[:0]
	b.path.Coords = b.path.Coords[:0]
}

// polygon appends the closed polygon pts to the scratch path.
func (b *Bitmap) polygon(pts shape.Polygon) {
	b.path.MoveTo(pts[0].Vec())
	for _, p := range pts[1:] {
		b.path.LineTo(p.Vec())
	}
	b.path.Close()
}

func (b *Bitmap) gray(c canvas.Color) uint8 {
	if (c == canvas.Foreground) != b.Inverted {
		return foregroundGray
	}
	return backgroundGray
}

// painter returns an EmitFunc which sets all pixels with at least half
// coverage to the colour c.
func (b *Bitmap) painter(c canvas.Color) EmitFunc {
	g := b.gray(c)
	return func(y, xMin int, coverage []float32) {
		row := b.img.Pix[y*b.img.Stride:]
		for i, v := range coverage {
			if v >= 0.5 {
				row[xMin+i] = g
			}
		}
	}
}
