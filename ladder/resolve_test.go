// SPDX-License-Identifier: Unlicense OR MIT

package ladder

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	steps := Steps{100, 50, 10, 5, 1}
	tests := []struct {
		dx        float64
		threshold float64
		want      Selection
	}{
		{45, 20, Selection{Index: 2, Step: 10, Sign: 1}},
		{-45, 20, Selection{Index: 2, Step: 10, Sign: -1}},
		{19.9, 20, Selection{Index: 0, Step: 100, Sign: 1}},
		{20, 20, Selection{Index: 1, Step: 50, Sign: 1}},
		{1000, 20, Selection{Index: 4, Step: 1, Sign: 1}},
		{0, 10, Selection{Index: 0, Step: 100, Sign: 0}},
		// Non-positive thresholds fall back to the default of 10.
		{35, 0, Selection{Index: 3, Step: 5, Sign: 1}},
		{-35, -4, Selection{Index: 3, Step: 5, Sign: -1}},
		{math.NaN(), 10, Selection{Index: 0, Step: 100, Sign: 0}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Resolve(tc.dx, steps, tc.threshold), "dx=%v threshold=%v", tc.dx, tc.threshold)
	}
}

func TestResolveNeutral(t *testing.T) {
	sel := Resolve(0, Steps{100, 10, 1}, 10)
	assert.Equal(t, 0, sel.Index)
	assert.Equal(t, 0.0, sel.Signed())
}

func TestResolveEmpty(t *testing.T) {
	assert.Equal(t, Selection{}, Resolve(50, nil, 10))
}

func TestResolvePositional(t *testing.T) {
	steps := Steps{10, 1, 0.1}
	// The result only depends on the cumulative displacement.
	a := Resolve(25, steps, 10)
	Resolve(-3, steps, 10)
	assert.Equal(t, a, Resolve(25, steps, 10))
}

func TestGestureHover(t *testing.T) {
	g := Gesture{Steps: Steps{10, 1, 0.1}, Threshold: 10}
	g.Begin(5, 100, 1)
	assert.True(t, g.Active())
	assert.Equal(t, 1, g.Selected())

	assert.Equal(t, 5.0, g.Move(109))
	assert.Equal(t, 6.0, g.Move(110))
	assert.Equal(t, 8.0, g.Move(135))
	assert.Equal(t, 4.0, g.Move(90))
	assert.Equal(t, 5.0, g.Move(95), "partial displacement keeps the anchor value")

	// Hovering the first row re-anchors at the current value.
	assert.True(t, g.Hover(0, 8, 135))
	assert.False(t, g.Hover(0, 8, 135))
	assert.Equal(t, 8.0, g.Move(135))
	assert.Equal(t, 28.0, g.Move(155))
	assert.Equal(t, Menu{Steps: g.Steps, Highlight: 0}, g.Menu())

	assert.Equal(t, 5.0, g.Cancel())
	assert.False(t, g.Active())
	assert.Equal(t, -1, g.Menu().Highlight)
}

func TestGestureDisplacement(t *testing.T) {
	g := Gesture{Steps: Steps{100, 50, 10, 5, 1}, Threshold: 20, Mode: ModeDisplacement}
	g.Begin(7, 0, 3)
	assert.Equal(t, 0, g.Selected(), "rows are ignored in displacement mode")
	assert.Equal(t, 7.0, g.Move(0))
	assert.Equal(t, 17.0, g.Move(45))
	assert.Equal(t, 2, g.Selected())
	assert.Equal(t, -3.0, g.Move(-45))
	assert.False(t, g.Hover(4, 0, 0))
	g.End()
	assert.False(t, g.Active())
}

func TestModeText(t *testing.T) {
	var m Mode
	assert.NoError(t, m.UnmarshalText([]byte("displacement")))
	assert.Equal(t, ModeDisplacement, m)
	b, err := m.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "displacement", string(b))
	assert.Error(t, m.UnmarshalText([]byte("vertical")))
}

func TestGeometry(t *testing.T) {
	g := Center(image.Pt(100, 100), 60, 20, 5)
	assert.Equal(t, image.Rect(70, 50, 130, 150), g.Bounds())

	row, ok := g.Row(image.Pt(100, 100))
	assert.True(t, ok)
	assert.Equal(t, 2, row)
	row, ok = g.Row(image.Pt(71, 50))
	assert.True(t, ok)
	assert.Equal(t, 0, row)
	_, ok = g.Row(image.Pt(131, 100))
	assert.False(t, ok)
	assert.Equal(t, image.Rect(70, 130, 130, 150), g.RowBounds(4))
}
