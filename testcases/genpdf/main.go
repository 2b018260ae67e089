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

// Command genpdf writes every scene of the catalogue as a PDF file to
// testdata/scenes. With -png, the PDFs are also rendered to PNG images
// using Ghostscript, for comparison with the output of the export
// command.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/clockface/font"
	"seehuhn.de/go/clockface/pdfcanvas"
	"seehuhn.de/go/clockface/shape"
	"seehuhn.de/go/clockface/testcases"
)

const outDir = "testdata/scenes"

func main() {
	withPNG := flag.Bool("png", false, "also render the PDFs with Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	face, err := font.Default(40)
	if err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			if err := generatePDF(sc, face, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *withPNG {
				pngPath := filepath.Join(outDir, name+"_gs.png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(sc testcases.Scene, face *font.Face, pdfPath string) error {
	c, err := pdfcanvas.Create(pdfPath, shape.Width, shape.Height)
	if err != nil {
		return err
	}
	if err := testcases.Render(sc, c, face); err != nil {
		c.Close()
		return err
	}
	return c.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
