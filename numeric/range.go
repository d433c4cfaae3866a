// SPDX-License-Identifier: Unlicense OR MIT

/*
Package numeric describes bounded scalar values as edited by a spinbox:
a closed range plus the number of fractional digits the value carries.

A Range with zero Decimals has integer semantics. Values handed to
Normalize are clamped and rounded so that the result is always a
representable member of the range.
*/
package numeric

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// MaxDecimals is the largest number of fractional digits a float64
// value can meaningfully carry.
const MaxDecimals = 15

var (
	// ErrInvalidRange is returned for a range whose minimum exceeds
	// its maximum, or whose bounds are NaN.
	ErrInvalidRange = errors.New("numeric: invalid range")
	// ErrInvalidDecimals is returned for a negative decimal count.
	ErrInvalidDecimals = errors.New("numeric: invalid decimals")
)

// Range is a closed interval [Min, Max] with a fixed number of
// fractional digits.
type Range struct {
	Min, Max float64
	// Decimals is the number of fractional digits. Zero means
	// integer values.
	Decimals int
}

// NewRange returns a validated Range.
func NewRange(min, max float64, decimals int) (Range, error) {
	r := Range{Min: min, Max: max, Decimals: decimals}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Validate reports whether r is usable.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || r.Min > r.Max {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, r.Min, r.Max)
	}
	if r.Decimals < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDecimals, r.Decimals)
	}
	return nil
}

// Span returns Max-Min. It is +Inf for unbounded ranges.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Bounded reports whether both bounds are finite.
func (r Range) Bounded() bool {
	return !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0)
}

// MaxMagnitude returns the larger absolute value of the two bounds.
func (r Range) MaxMagnitude() float64 {
	return math.Max(math.Abs(r.Min), math.Abs(r.Max))
}

// Unit returns the smallest representable increment, 10^-Decimals.
func (r Range) Unit() float64 {
	return math.Pow10(-r.decimals())
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Normalize clamps v to the range and rounds it to Decimals
// fractional digits. Rounding never moves the result outside the
// range.
func (r Range) Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return r.Clamp(0)
	}
	return r.Clamp(Round(r.Clamp(v), r.decimals()))
}

// Format renders v with exactly Decimals fractional digits.
func (r Range) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', r.decimals(), 64)
}

func (r Range) decimals() int {
	switch {
	case r.Decimals < 0:
		return 0
	case r.Decimals > MaxDecimals:
		return MaxDecimals
	}
	return r.Decimals
}

// Round rounds v to the given number of fractional digits, with
// halfway cases rounded away from zero. Infinities and NaN are
// returned unchanged.
func Round(v float64, decimals int) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	if decimals <= 0 {
		return math.Round(v)
	}
	if decimals > MaxDecimals {
		decimals = MaxDecimals
	}
	scale := math.Pow10(decimals)
	scaled := v * scale
	if math.IsInf(scaled, 0) {
		// Too large to carry fractional digits.
		return v
	}
	return math.Round(scaled) / scale
}
