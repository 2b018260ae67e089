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

package main

import (
	"image/png"
	"os"
	"strings"

	"seehuhn.de/go/clockface/raster"
)

func writePNG(bm *raster.Bitmap, scale int, fileName string) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, bm.Scaled(scale))
}

// terminalImage renders the bitmap with Unicode half blocks, two pixel
// rows per line of text. If the terminal is narrower than the bitmap,
// blocks of 2×2 pixels are combined into one half block.
func terminalImage(bm *raster.Bitmap, columns int) string {
	bounds := bm.Image().Bounds()
	step := 1
	if columns < bounds.Dx() {
		step = 2
	}

	lit := func(x0, y0 int) bool {
		for y := y0; y < y0+step; y++ {
			for x := x0; x < x0+step; x++ {
				if bm.At(x, y) {
					return true
				}
			}
		}
		return false
	}

	var sb strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 * step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			top := lit(x, y)
			bottom := lit(x, y+step)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\x1b[K\n")
	}
	return sb.String()
}
