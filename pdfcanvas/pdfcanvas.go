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

// Package pdfcanvas draws the watch face into a PDF file.
//
// One canvas unit becomes one PDF point, so the page of a 144×168 canvas
// is 2×2.33 inches. Shapes are written as vector paths and text as glyph
// outlines.
package pdfcanvas

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/clockface/canvas"
	"seehuhn.de/go/clockface/font"
	"seehuhn.de/go/clockface/shape"
)

// Canvas is a canvas.Canvas writing to a single page PDF file.
type Canvas struct {
	// Inverted swaps foreground and background for all later drawing.
	Inverted bool

	page *document.Page
}

// Create starts a new PDF file with one page of the given size in
// canvas units. The page is filled with the background colour. The
// caller must call Close to complete the file.
func Create(fileName string, width, height int) (*Canvas, error) {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	c := &Canvas{
		page: page,
	}

	page.SetFillColor(c.color(canvas.Background))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF has the origin at the bottom left, the canvas at the top left.
	// The extra half unit puts integer points at pixel centres, as on
	// the raster display.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0.5, float64(height) - 0.5})

	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapSquare)
	page.SetLineJoin(graphics.LineJoinMiter)
	return c, nil
}

// Close writes the page and finishes the file.
func (c *Canvas) Close() error {
	return c.page.Close()
}

// FillPolygon implements the canvas.Canvas interface.
func (c *Canvas) FillPolygon(pts shape.Polygon, col canvas.Color) {
	if len(pts) < 3 {
		return
	}
	c.page.SetFillColor(c.color(col))
	c.writePath(pts.Path(true))
	c.page.Fill()
}

// StrokePolygon implements the canvas.Canvas interface. A polygon with
// two points is stroked as an open line, so that it gets square caps.
func (c *Canvas) StrokePolygon(pts shape.Polygon, col canvas.Color) {
	if len(pts) == 0 {
		return
	}
	c.page.SetStrokeColor(c.color(col))
	c.writePath(pts.Path(len(pts) > 2))
	c.page.Stroke()
}

// StrokeLine implements the canvas.Canvas interface.
func (c *Canvas) StrokeLine(p1, p2 shape.Point, col canvas.Color) {
	c.page.SetStrokeColor(c.color(col))
	c.page.MoveTo(float64(p1.X), float64(p1.Y))
	c.page.LineTo(float64(p2.X), float64(p2.Y))
	c.page.Stroke()
}

// FillCircle implements the canvas.Canvas interface.
func (c *Canvas) FillCircle(center shape.Point, radius int, col canvas.Color) {
	if radius < 0 {
		return
	}
	c.page.SetFillColor(c.color(col))
	c.page.Circle(float64(center.X), float64(center.Y), float64(radius)+0.5)
	c.page.Fill()
}

// StrokeCircle implements the canvas.Canvas interface. A circle of
// radius zero is drawn as a single dot.
func (c *Canvas) StrokeCircle(center shape.Point, radius int, col canvas.Color) {
	if radius < 0 {
		return
	}
	if radius == 0 {
		c.FillCircle(center, 0, col)
		return
	}
	c.page.SetStrokeColor(c.color(col))
	c.page.Circle(float64(center.X), float64(center.Y), float64(radius))
	c.page.Stroke()
}

// DrawText implements the canvas.Canvas interface. The glyph outlines
// are filled as paths, so that no font needs to be embedded.
func (c *Canvas) DrawText(text string, f *font.Face, box shape.Rect, overflow font.Overflow, align font.Alignment, col canvas.Color) {
	if f == nil {
		return
	}
	outline, err := f.Outline(text, box, overflow, align)
	if err != nil || len(outline.Cmds) == 0 {
		return
	}

	// glyph outlines use pixel edges, not pixel centres
	c.page.PushGraphicsState()
	c.page.Transform(matrix.Matrix{1, 0, 0, 1, -0.5, -0.5})
	c.page.SetFillColor(c.color(col))
	c.writePath(outline)
	c.page.Fill()
	c.page.PopGraphicsState()
}

// writePath appends p to the current PDF path. Quadratic segments are
// converted to cubic ones, since PDF has no quadratic curves.
func (c *Canvas) writePath(p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			c.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			c.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			c.page.ClosePath()
		}
	}
}

func (c *Canvas) color(col canvas.Color) color.Color {
	if (col == canvas.Foreground) != c.Inverted {
		return color.DeviceGray(1)
	}
	return color.DeviceGray(0)
}
