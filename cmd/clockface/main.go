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

// Command clockface draws the watch face.
//
// By default the face is drawn once, for the current time, into a PNG
// or PDF file. With -live the face follows the system clock until the
// program is interrupted; on a terminal the face is shown as text,
// otherwise the output file is rewritten whenever the face changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"seehuhn.de/go/clockface"
	"seehuhn.de/go/clockface/config"
	"seehuhn.de/go/clockface/font"
	"seehuhn.de/go/clockface/pdfcanvas"
	"seehuhn.de/go/clockface/raster"
	"seehuhn.de/go/clockface/shape"
)

const labelSize = 40

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configFile := flag.String("config", "clockface.yaml", "configuration file")
	at := flag.String("at", "", "time to show, as RFC 3339 or 2006-01-02T15:04:05")
	out := flag.String("o", "clockface.png", "output file (.png or .pdf)")
	live := flag.Bool("live", false, "follow the system clock")
	verbose := flag.Bool("v", false, "log tick handling")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	clockface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.LoadOptional(*configFile)
	if err != nil {
		return err
	}
	face, err := font.Default(labelSize)
	if err != nil {
		return err
	}

	if *live {
		if *at != "" {
			return errors.New("-at cannot be combined with -live")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return runLive(ctx, cfg, face, *out)
	}

	now := time.Now()
	if *at != "" {
		now, err = parseTime(*at)
		if err != nil {
			return err
		}
	}

	ctl, err := clockface.NewController(cfg.Face, clockface.FromTime(now), face)
	if err != nil {
		return err
	}
	defer ctl.Close()

	switch strings.ToLower(filepath.Ext(*out)) {
	case ".pdf":
		return writePDF(ctl, cfg.Display, *out)
	case ".png":
		bm := raster.NewBitmap(shape.Width, shape.Height)
		bm.Inverted = cfg.Display.Invert
		if err := ctl.Redraw(bm); err != nil {
			return err
		}
		return writePNG(bm, cfg.Display.Scale, *out)
	default:
		return fmt.Errorf("%s: unsupported output format", *out)
	}
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q", s)
	}
	return t, nil
}

func writePDF(ctl *clockface.Controller, display config.Display, fileName string) error {
	c, err := pdfcanvas.Create(fileName, shape.Width, shape.Height)
	if err != nil {
		return err
	}
	c.Inverted = display.Invert
	if err := ctl.Redraw(c); err != nil {
		c.Close()
		return err
	}
	return c.Close()
}

// runLive drives the face from the system clock until ctx is cancelled.
func runLive(ctx context.Context, cfg *config.Config, face *font.Face, fileName string) error {
	ctl, err := clockface.NewController(cfg.Face, clockface.FromTime(time.Now()), face)
	if err != nil {
		return err
	}
	defer ctl.Close()

	bm := raster.NewBitmap(shape.Width, shape.Height)
	bm.Inverted = cfg.Display.Invert

	fd := int(os.Stdout.Fd())
	onTerminal := term.IsTerminal(fd)
	if onTerminal {
		fmt.Print("\x1b[2J")
	}

	var paintErr error
	paint := func() {
		if err := ctl.Redraw(bm); err != nil {
			paintErr = err
			return
		}
		if onTerminal {
			width, _, err := term.GetSize(fd)
			if err != nil {
				width = 80
			}
			fmt.Print("\x1b[H" + terminalImage(bm, width))
			return
		}
		if err := writePNG(bm, cfg.Display.Scale, fileName); err != nil {
			paintErr = err
		}
	}

	ticks := &clockface.SystemTicks{}
	if err := ctl.Start(ticks, paint); err != nil {
		return err
	}
	paint()

	err = ticks.Run(ctx)
	if paintErr != nil {
		return paintErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
