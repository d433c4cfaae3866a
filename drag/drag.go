// SPDX-License-Identifier: Unlicense OR MIT

/*
Package drag maps vertical pointer motion to value changes, the way
3ds Max spinners react to a click-drag.

A Session captures the value and pointer position at the start of a
gesture. Every subsequent pointer event is mapped through Value using
only that snapshot and the event's own coordinates, so replaying an
event yields the same result. Moving the pointer up increases the
value.
*/
package drag

import (
	"math"

	"gioui.org/f32"
	"gioui.org/io/key"

	"github.com/dccspin/dccspin/numeric"
)

// DefaultPixelsForFullRange is the drag distance that sweeps a bounded
// range from end to end.
const DefaultPixelsForFullRange = 500

// Gain scales drag sensitivity according to the held modifier keys.
type Gain float64

const (
	GainNormal Gain = 1
	// GainFine applies while Ctrl is held.
	GainFine Gain = 0.1
	// GainPrecision applies while Alt is held.
	GainPrecision Gain = 0.01
	// GainCoarse applies while Shift is held.
	GainCoarse Gain = 10
)

// GainFor selects the gain for a modifier set. Only one gain applies;
// Alt takes precedence over Ctrl which takes precedence over Shift.
func GainFor(mods key.Modifiers) Gain {
	switch {
	case mods.Contain(key.ModAlt):
		return GainPrecision
	case mods.Contain(key.ModCtrl):
		return GainFine
	case mods.Contain(key.ModShift):
		return GainCoarse
	}
	return GainNormal
}

// Config controls drag sensitivity.
type Config struct {
	// PixelsForFullRange is the vertical distance that covers the
	// whole range. Non-positive values mean DefaultPixelsForFullRange.
	PixelsForFullRange float64
	// Multiplier, if positive, fixes the sensitivity in units per
	// pixel and disables the range-derived sensitivity.
	Multiplier float64
}

// Sensitivity returns the value change per pixel of motion for r,
// before any gain is applied.
func (c Config) Sensitivity(r numeric.Range) float64 {
	if c.Multiplier > 0 && !math.IsInf(c.Multiplier, 0) {
		return c.Multiplier
	}
	span := r.Span()
	if !r.Bounded() || math.IsInf(span, 0) || math.IsNaN(span) {
		return 1
	}
	return span / c.pixels()
}

func (c Config) pixels() float64 {
	p := c.PixelsForFullRange
	if p <= 0 || math.IsInf(p, 0) || math.IsNaN(p) {
		return DefaultPixelsForFullRange
	}
	return p
}

// Session is the snapshot taken when a drag gesture starts.
type Session struct {
	// Origin is the value at gesture start.
	Origin float64
	// Start is the pointer position at gesture start.
	Start f32.Point
	// Gain is the gain selected by the most recent event.
	Gain Gain
}

// Begin starts a session.
func Begin(origin float64, start f32.Point, mods key.Modifiers) Session {
	return Session{Origin: origin, Start: start, Gain: GainFor(mods)}
}

// Update selects the gain for the modifiers of the current event.
func (s *Session) Update(mods key.Modifiers) {
	s.Gain = GainFor(mods)
}

// Cancel returns the value the gesture started from.
func (s Session) Cancel() float64 {
	return s.Origin
}

// Active reports whether the pointer at p has moved far enough from
// the start to turn a press into a scrub: either it left the vertical
// extent [0, height) of the widget, or it moved more than slop pixels
// vertically.
func (s Session) Active(p f32.Point, height, slop float32) bool {
	if p.Y < 0 || p.Y >= height {
		return true
	}
	dy := p.Y - s.Start.Y
	if dy < 0 {
		dy = -dy
	}
	return dy > slop
}

// Value computes the value for a pointer at vertical position y.
func Value(s Session, y float64, r numeric.Range, cfg Config) float64 {
	delta := (float64(s.Start.Y) - y) * cfg.Sensitivity(r) * float64(s.Gain)
	return r.Normalize(s.Origin + delta)
}
