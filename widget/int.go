// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"

	"gioui.org/layout"

	"github.com/dccspin/dccspin/ladder"
	"github.com/dccspin/dccspin/numeric"
)

// intRange is the range of an IntSpinbox nobody configured.
var intRange = numeric.Range{Min: 0, Max: 99, Decimals: 0}

// IntSpinbox is a Spinbox restricted to integer values.
// The zero value covers [0, 99].
type IntSpinbox struct {
	spin Spinbox
}

func (s *IntSpinbox) init() {
	if s.spin.initialized {
		return
	}
	s.spin.initialized = true
	s.spin.rng = intRange
	s.spin.steps = ladder.Generate(intRange)
	s.spin.configureEditor()
}

// Spin returns the underlying Spinbox. Its decimals must stay 0.
func (s *IntSpinbox) Spin() *Spinbox {
	s.init()
	return &s.spin
}

// SetRange sets the integer range.
func (s *IntSpinbox) SetRange(min, max int) error {
	s.init()
	return s.spin.SetRange(float64(min), float64(max), 0)
}

// Int returns the current value, saturated to the int range.
func (s *IntSpinbox) Int() int {
	s.init()
	return saturate(s.spin.Value())
}

// SetInt sets the value, clamped to the range.
func (s *IntSpinbox) SetInt(v int) {
	s.init()
	s.spin.SetValue(float64(v))
}

// Default returns the value restored by Reset.
func (s *IntSpinbox) Default() int {
	return saturate(s.spin.Default())
}

// SetDefault sets the value restored by Reset.
func (s *IntSpinbox) SetDefault(v int) {
	s.spin.SetDefault(float64(v))
}

// Reset sets the value to the default.
func (s *IntSpinbox) Reset() {
	s.init()
	s.spin.Reset()
}

// Min and Max return the range bounds, saturated to the int range.
func (s *IntSpinbox) Min() int {
	return saturate(s.Spin().Range().Min)
}

func (s *IntSpinbox) Max() int {
	return saturate(s.Spin().Range().Max)
}

// Update processes events and reports whether the value changed.
func (s *IntSpinbox) Update(gtx layout.Context) bool {
	s.init()
	return s.spin.Update(gtx)
}

func saturate(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}
