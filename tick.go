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
	"context"
	"time"
)

// Granularity is the interval at which a TickSource delivers ticks.
type Granularity int

// The supported tick intervals.
const (
	SecondUnit Granularity = iota
	MinuteUnit
)

func (g Granularity) String() string {
	if g == MinuteUnit {
		return "minute"
	}
	return "second"
}

// TickHandler receives the clock state at every tick.
type TickHandler func(ClockState)

// TickSource delivers clock states to a single subscriber.
//
// Handlers are called sequentially, never concurrently with each other.
// Subscribing replaces any previous subscription.
type TickSource interface {
	Subscribe(g Granularity, h TickHandler)
	Unsubscribe()
}

// SystemTicks is a TickSource driven by the system clock.
// All handlers run on the goroutine which calls Run.
type SystemTicks struct {
	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time

	g       Granularity
	handler TickHandler

	last   ClockState
	primed bool
}

// Subscribe implements the TickSource interface.
func (t *SystemTicks) Subscribe(g Granularity, h TickHandler) {
	t.g = g
	t.handler = h
	t.primed = false
}

// Unsubscribe implements the TickSource interface.
func (t *SystemTicks) Unsubscribe() {
	t.handler = nil
}

// Run delivers ticks until ctx is cancelled. Wake-ups are aligned to
// whole seconds of the clock. Run always returns a non-nil error.
func (t *SystemTicks) Run(ctx context.Context) error {
	timer := time.NewTimer(untilNextSecond(t.now()))
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		t.tick(t.now())
		timer.Reset(untilNextSecond(t.now()))
	}
}

// tick delivers the clock state for now, if the subscription asks for
// it. With minute granularity, a tick is sent only when the minute
// changes after the subscription, and the second is reported as zero.
func (t *SystemTicks) tick(now time.Time) {
	if t.handler == nil {
		return
	}
	s := FromTime(now)
	if t.g == MinuteUnit {
		s.Second = 0
		changed := t.primed && s != t.last
		t.last = s
		t.primed = true
		if !changed {
			return
		}
	}
	t.handler(s)
}

func (t *SystemTicks) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

func untilNextSecond(now time.Time) time.Duration {
	return now.Truncate(time.Second).Add(time.Second).Sub(now)
}
