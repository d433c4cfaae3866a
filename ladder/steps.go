// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ladder implements the Houdini style value ladder: a short list
of step magnitudes, largest first, from which a pointer gesture picks
the increment to apply to a value.
*/
package ladder

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/dccspin/dccspin/numeric"
)

var (
	// ErrEmptySteps is returned when a step table has no entries.
	ErrEmptySteps = errors.New("ladder: empty step table")
	// ErrInvalidStep is returned for a zero, negative or non-finite
	// step.
	ErrInvalidStep = errors.New("ladder: invalid step")
)

// maxExponent bounds the largest generated step to what a float64
// still represents exactly.
const maxExponent = 15

// unboundedExponent is the largest generated step exponent for ranges
// without finite bounds.
const unboundedExponent = 2

// Steps is a table of strictly positive step magnitudes ordered
// largest first.
type Steps []float64

// NewSteps validates values and returns them as a table sorted
// largest first, with exact duplicates removed.
func NewSteps(values ...float64) (Steps, error) {
	if len(values) == 0 {
		return nil, ErrEmptySteps
	}
	steps := make(Steps, 0, len(values))
	for _, v := range values {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStep, v)
		}
		steps = append(steps, v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(steps)))
	n := 1
	for _, v := range steps[1:] {
		if v != steps[n-1] {
			steps[n] = v
			n++
		}
	}
	return steps[:n], nil
}

// Generate returns powers of ten from the order of magnitude of r's
// largest bound down to the smallest increment r can represent.
//
// For [0, 100] with 2 decimals the table is 100, 10, 1, 0.1, 0.01.
func Generate(r numeric.Range) Steps {
	dec := r.Decimals
	if dec < 0 {
		dec = 0
	}
	if dec > numeric.MaxDecimals {
		dec = numeric.MaxDecimals
	}
	lo := -dec
	hi := unboundedExponent
	if r.Bounded() {
		if m := r.MaxMagnitude(); m > 0 {
			hi = exponent(m)
		} else {
			hi = lo
		}
	}
	if hi > maxExponent {
		hi = maxExponent
	}
	if hi < lo {
		hi = lo
	}
	steps := make(Steps, 0, hi-lo+1)
	for e := hi; e >= lo; e-- {
		steps = append(steps, math.Pow10(e))
	}
	return steps
}

// exponent returns floor(log10(m)) for m > 0. math.Log10 is inexact
// for some powers of ten, so the estimate is corrected against Pow10.
func exponent(m float64) int {
	e := int(math.Floor(math.Log10(m)))
	for math.Pow10(e+1) <= m {
		e++
	}
	for e > -324 && math.Pow10(e) > m {
		e--
	}
	return e
}

// Menu is what a popup presents: the step table and the entry to
// highlight. Highlight is -1 when no entry is highlighted.
type Menu struct {
	Steps     Steps
	Highlight int
}

// Labels formats the menu entries.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Steps))
	for i, s := range m.Steps {
		labels[i] = Label(s)
	}
	return labels
}

// Label formats a step magnitude in plain decimal notation with the
// fewest digits that represent it.
func Label(step float64) string {
	return strconv.FormatFloat(numeric.Round(step, numeric.MaxDecimals), 'f', -1, 64)
}
