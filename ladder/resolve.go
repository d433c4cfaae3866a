// SPDX-License-Identifier: Unlicense OR MIT

package ladder

import "math"

// DefaultThreshold is the horizontal distance in pixels that moves the
// ladder by one rung.
const DefaultThreshold = 10

// Threshold returns t, or DefaultThreshold if t is not a positive
// finite number.
func Threshold(t float64) float64 {
	if !(t > 0) || math.IsInf(t, 0) {
		return DefaultThreshold
	}
	return t
}

// Selection is a step picked from a table.
type Selection struct {
	// Index into the step table.
	Index int
	// Step is the magnitude at Index.
	Step float64
	// Sign is -1, 0 or 1.
	Sign int
}

// Signed returns the step with its sign applied. A neutral selection
// (Sign 0) yields 0.
func (s Selection) Signed() float64 {
	return float64(s.Sign) * s.Step
}

// Resolve picks a step from the cumulative horizontal displacement dx
// since the gesture started. Every whole threshold of displacement
// moves one rung down the table, clamped to its last entry; the sign
// of dx signs the step.
//
// No displacement selects the first rung with Sign 0. An empty table
// yields the zero Selection.
func Resolve(dx float64, steps Steps, threshold float64) Selection {
	if len(steps) == 0 {
		return Selection{}
	}
	if math.IsNaN(dx) {
		dx = 0
	}
	threshold = Threshold(threshold)
	idx := len(steps) - 1
	if n := math.Floor(math.Abs(dx) / threshold); n < float64(idx) {
		idx = int(n)
	}
	sign := 0
	switch {
	case dx > 0:
		sign = 1
	case dx < 0:
		sign = -1
	}
	return Selection{Index: idx, Step: steps[idx], Sign: sign}
}
