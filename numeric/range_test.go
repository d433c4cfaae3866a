// SPDX-License-Identifier: Unlicense OR MIT

package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	r, err := NewRange(-100, 100, 2)
	require.NoError(t, err)
	assert.Equal(t, Range{Min: -100, Max: 100, Decimals: 2}, r)

	_, err = NewRange(10, -10, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewRange(math.NaN(), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewRange(0, 1, -1)
	assert.ErrorIs(t, err, ErrInvalidDecimals)

	_, err = NewRange(5, 5, 0)
	assert.NoError(t, err, "empty span is a valid range")

	_, err = NewRange(math.Inf(-1), math.Inf(1), 3)
	assert.NoError(t, err)
}

func TestRound(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{0.5, 0, 1},
		{-0.5, 0, -1},
		{1.5, 0, 2},
		{2.4, 0, 2},
		{0.125, 2, 0.13},
		{-0.125, 2, -0.13},
		{1.23456, 3, 1.235},
		{7, 4, 7},
		{0.1, 20, 0.1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Round(tc.v, tc.decimals), "Round(%v, %d)", tc.v, tc.decimals)
	}
	assert.True(t, math.IsInf(Round(math.Inf(1), 2), 1))
}

func TestNormalize(t *testing.T) {
	r := Range{Min: -1, Max: 1, Decimals: 1}
	assert.Equal(t, 1.0, r.Normalize(3))
	assert.Equal(t, -1.0, r.Normalize(-3))
	assert.Equal(t, 0.3, r.Normalize(0.25))
	assert.Equal(t, 0.0, r.Normalize(math.NaN()))

	// Rounding must not escape the range.
	odd := Range{Min: 0.004, Max: 0.996, Decimals: 2}
	assert.Equal(t, 0.004, odd.Normalize(0.004))
	assert.Equal(t, 0.996, odd.Normalize(0.999))
	assert.Equal(t, 0.996, odd.Normalize(0.9955))
}

func TestRangeHelpers(t *testing.T) {
	r := Range{Min: -250, Max: 100, Decimals: 3}
	assert.Equal(t, 350.0, r.Span())
	assert.Equal(t, 250.0, r.MaxMagnitude())
	assert.Equal(t, 0.001, r.Unit())
	assert.True(t, r.Bounded())
	assert.Equal(t, "-3.500", r.Format(-3.5))

	open := Range{Min: math.Inf(-1), Max: 0}
	assert.False(t, open.Bounded())
	assert.Equal(t, 1.0, open.Unit())
	assert.Equal(t, "12", open.Format(12))
}
