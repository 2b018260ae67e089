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
	"maps"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/clockface"
	"seehuhn.de/go/clockface/canvas"
	"seehuhn.de/go/clockface/font"
	"seehuhn.de/go/clockface/shape"
	"seehuhn.de/go/clockface/testcases"
)

func TestBitmapFillPolygon(t *testing.T) {
	b := NewBitmap(10, 10)
	b.FillPolygon(shape.Polygon{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 6}, {X: 2, Y: 6}}, canvas.Foreground)

	// Pixels on the outline are half covered and get painted, the
	// corner pixels are only a quarter covered.
	for y := range 10 {
		for x := range 10 {
			want := (x >= 3 && x <= 5 && y >= 2 && y <= 6) ||
				(x >= 2 && x <= 6 && y >= 3 && y <= 5)
			if got := b.At(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %t, want %t", x, y, got, want)
			}
		}
	}
}

func TestBitmapStrokeLine(t *testing.T) {
	b := NewBitmap(10, 10)
	b.StrokeLine(shape.Point{X: 2, Y: 3}, shape.Point{X: 6, Y: 3}, canvas.Foreground)

	want := strings.Join([]string{
		"..........",
		"..........",
		"..........",
		"..#####...",
		"..........",
	}, "\n")
	got := strings.Join(strings.Split(b.String(), "\n")[:5], "\n")
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	// a line of length zero is a single pixel
	b.Clear()
	b.StrokeLine(shape.Point{X: 7, Y: 7}, shape.Point{X: 7, Y: 7}, canvas.Foreground)
	if !b.At(7, 7) || b.At(6, 7) || b.At(8, 7) {
		t.Error("zero length line is not a single pixel")
	}
}

func TestBitmapCircles(t *testing.T) {
	b := NewBitmap(21, 21)
	c := shape.Point{X: 10, Y: 10}
	b.FillCircle(c, 2, canvas.Foreground)

	for _, p := range []shape.Point{c, {X: 12, Y: 10}, {X: 8, Y: 10}, {X: 10, Y: 12}, {X: 10, Y: 8}} {
		if !b.At(p.X, p.Y) {
			t.Errorf("pixel %s inside the disc is not set", p)
		}
	}
	for _, p := range []shape.Point{{X: 13, Y: 10}, {X: 7, Y: 10}, {X: 12, Y: 12}, {X: 8, Y: 8}} {
		if b.At(p.X, p.Y) {
			t.Errorf("pixel %s outside the disc is set", p)
		}
	}

	b.Clear()
	b.StrokeCircle(c, 5, canvas.Foreground)
	if b.At(c.X, c.Y) {
		t.Error("stroked circle has a filled centre")
	}
	for _, p := range []shape.Point{{X: 15, Y: 10}, {X: 5, Y: 10}, {X: 10, Y: 15}, {X: 10, Y: 5}} {
		if !b.At(p.X, p.Y) {
			t.Errorf("pixel %s on the circle is not set", p)
		}
	}
}

func TestBitmapInverted(t *testing.T) {
	b := NewBitmap(4, 4)
	if b.Image().GrayAt(0, 0).Y != backgroundGray {
		t.Fatal("new bitmap is not cleared to the background")
	}

	b.Inverted = true
	b.Clear()
	if b.Image().GrayAt(0, 0).Y != foregroundGray {
		t.Error("inverted background is not white")
	}
	b.FillPolygon(shape.Polygon{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}, {X: 0, Y: 3}}, canvas.Foreground)
	if b.Image().GrayAt(1, 1).Y != backgroundGray {
		t.Error("inverted foreground is not black")
	}
}

func TestBitmapScaled(t *testing.T) {
	b := NewBitmap(3, 2)
	b.StrokeLine(shape.Point{X: 1, Y: 1}, shape.Point{X: 1, Y: 1}, canvas.Foreground)

	img := b.Scaled(4)
	if dx, dy := img.Bounds().Dx(), img.Bounds().Dy(); dx != 12 || dy != 8 {
		t.Fatalf("scaled size %dx%d, want 12x8", dx, dy)
	}
	for y := range 8 {
		for x := range 12 {
			want := uint8(backgroundGray)
			if x/4 == 1 && y/4 == 1 {
				want = foregroundGray
			}
			if got := img.GrayAt(x, y).Y; got != want {
				t.Errorf("scaled pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}

	same := b.Scaled(1)
	if &same.Pix[0] == &b.Image().Pix[0] {
		t.Error("Scaled(1) shares storage with the bitmap")
	}
}

func TestBitmapText(t *testing.T) {
	f, err := font.Default(40)
	if err != nil {
		t.Fatal(err)
	}
	b := NewBitmap(shape.Width, shape.Height)
	box := shape.R(42, 4, 60, 50)
	b.DrawText("12", f, box, font.TrailingEllipsis, font.AlignCenter, canvas.Foreground)

	inside, outside := 0, 0
	for y := range shape.Height {
		for x := range shape.Width {
			if !b.At(x, y) {
				continue
			}
			if x >= box.Min.X && x < box.Max().X && y >= box.Min.Y && y < box.Max().Y {
				inside++
			} else {
				outside++
			}
		}
	}
	if inside < 100 {
		t.Errorf("only %d pixels of text drawn", inside)
	}
	if outside != 0 {
		t.Errorf("%d text pixels outside the label box", outside)
	}
}

// TestScenes renders every scene of the catalogue and checks features
// which can be located without a reference image.
func TestScenes(t *testing.T) {
	f, err := font.Default(40)
	if err != nil {
		t.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				b := NewBitmap(shape.Width, shape.Height)
				if err := testcases.Render(sc, b, f); err != nil {
					t.Fatal(err)
				}

				// the pivot ring surrounds a background pixel
				if b.At(shape.Center.X, shape.Center.Y) {
					t.Error("pivot centre is set")
				}
				if !b.At(shape.Center.X+3, shape.Center.Y) {
					t.Error("pivot ring is missing")
				}

				if sc.Config.ShowSeconds {
					dot := clockface.SecondDot(sc.State.Second)
					if !b.At(dot.X, dot.Y) {
						t.Errorf("second dot at %s is missing", dot)
					}
				}
			})
		}
	}
}
