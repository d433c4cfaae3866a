// SPDX-License-Identifier: Unlicense OR MIT

package ladder

import (
	"fmt"
	"math"
)

// Mode selects how a ladder gesture turns pointer motion into value
// changes.
type Mode uint8

const (
	// ModeHover picks the step from the popup row under the pointer.
	// Each threshold of horizontal motion applies the step once.
	ModeHover Mode = iota
	// ModeDisplacement picks the step from the horizontal distance
	// travelled, as computed by Resolve, and offsets the starting
	// value by the signed step.
	ModeDisplacement
)

func (m Mode) String() string {
	switch m {
	case ModeHover:
		return "hover"
	case ModeDisplacement:
		return "displacement"
	default:
		panic("invalid Mode")
	}
}

// Gesture tracks one ladder interaction. Move results depend only on
// the anchor recorded by Begin or the latest Hover and on the pointer
// position passed in.
type Gesture struct {
	Steps     Steps
	Threshold float64
	Mode      Mode

	active   bool
	origin   float64
	startX   float64
	selected int
	// anchorValue and anchorX are the value and pointer position the
	// current step applies from.
	anchorValue float64
	anchorX     float64
}

// Begin starts a gesture at value with the pointer at x. Row is the
// popup row under the pointer, or -1.
func (g *Gesture) Begin(value, x float64, row int) {
	g.active = true
	g.origin = value
	g.startX = x
	g.anchorValue = value
	g.anchorX = x
	g.selected = 0
	if g.Mode == ModeHover && row >= 0 && row < len(g.Steps) {
		g.selected = row
	}
}

// Active reports whether a gesture is in progress.
func (g *Gesture) Active() bool {
	return g.active
}

// Selected returns the index of the selected step.
func (g *Gesture) Selected() int {
	return g.selected
}

// Origin returns the value the gesture started from.
func (g *Gesture) Origin() float64 {
	return g.origin
}

// Hover selects row as the active step, re-anchoring at value and x.
// It reports whether the selection changed. Hover is ignored outside
// ModeHover and for rows outside the table.
func (g *Gesture) Hover(row int, value, x float64) bool {
	if !g.active || g.Mode != ModeHover || row < 0 || row >= len(g.Steps) || row == g.selected {
		return false
	}
	g.selected = row
	g.anchorValue = value
	g.anchorX = x
	return true
}

// Move returns the value for a pointer at horizontal position x. The
// result is not clamped; the caller applies its range.
func (g *Gesture) Move(x float64) float64 {
	if !g.active || len(g.Steps) == 0 {
		return g.anchorValue
	}
	switch g.Mode {
	case ModeDisplacement:
		sel := Resolve(x-g.startX, g.Steps, g.Threshold)
		g.selected = sel.Index
		return g.origin + sel.Signed()
	default:
		notches := math.Trunc((x - g.anchorX) / Threshold(g.Threshold))
		return g.anchorValue + notches*g.Steps[g.selected]
	}
}

// Cancel ends the gesture and returns the value it started from.
func (g *Gesture) Cancel() float64 {
	g.active = false
	return g.origin
}

// End ends the gesture.
func (g *Gesture) End() {
	g.active = false
}

// Menu returns the popup contents for the gesture.
func (g *Gesture) Menu() Menu {
	h := -1
	if g.active {
		h = g.selected
	}
	return Menu{Steps: g.Steps, Highlight: h}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case ModeHover, ModeDisplacement:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("ladder: invalid mode %d", m)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "hover", "":
		*m = ModeHover
	case "displacement":
		*m = ModeDisplacement
	default:
		return fmt.Errorf("ladder: unknown mode %q", b)
	}
	return nil
}
