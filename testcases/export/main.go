// Command export writes the scene catalogue to testdata/scenes: one PNG
// image per scene, and a JSON index with the clock state, configuration
// and date window placement of every scene.
// Run from the clockface module root directory.
package main

import (
	"encoding/json"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/clockface/font"
	"seehuhn.de/go/clockface/placement"
	"seehuhn.de/go/clockface/raster"
	"seehuhn.de/go/clockface/shape"
	"seehuhn.de/go/clockface/testcases"
)

const outDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	face, err := font.Default(40)
	if err != nil {
		panic(err)
	}

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			if err := writePNG(sc, face, filepath.Join(outDir, name+".png")); err != nil {
				panic(err)
			}
			out.Scenes = append(out.Scenes, toJSON(name, sc))
		}
	}

	f, err := os.Create(filepath.Join(outDir, "scenes.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func writePNG(sc testcases.Scene, face *font.Face, fileName string) (err error) {
	b := raster.NewBitmap(shape.Width, shape.Height)
	if err := testcases.Render(sc, b, face); err != nil {
		return err
	}

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, b.Image())
}

type jsonScene struct {
	Name        string `json:"name"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Second      int    `json:"second"`
	Day         int    `json:"day"`
	Use24Hour   bool   `json:"use_24_hour,omitempty"`
	ShowSeconds bool   `json:"show_seconds,omitempty"`
	InvertDate  bool   `json:"invert_date,omitempty"`
	Strategy    string `json:"strategy"`
	Slot        string `json:"slot"`
	State       string `json:"state"`
}

func toJSON(name string, sc testcases.Scene) jsonScene {
	s := sc.State
	d := placement.Decide(sc.Config.Strategy, s.Hour, s.Minute, s.Second)
	return jsonScene{
		Name:        name,
		Hour:        s.Hour,
		Minute:      s.Minute,
		Second:      s.Second,
		Day:         s.Day,
		Use24Hour:   sc.Config.Use24Hour,
		ShowSeconds: sc.Config.ShowSeconds,
		InvertDate:  sc.Config.InvertDate,
		Strategy:    sc.Config.Strategy.String(),
		Slot:        d.Slot.String(),
		State:       d.State.String(),
	}
}
