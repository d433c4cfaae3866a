// SPDX-License-Identifier: Unlicense OR MIT

package ladder

import "image"

// Geometry is the placement of a ladder popup: a vertical stack of
// equally tall rows.
type Geometry struct {
	// Origin is the top-left corner of the popup.
	Origin    image.Point
	Width     int
	RowHeight int
	Rows      int
}

// Center returns the geometry of a popup centered on p.
func Center(p image.Point, width, rowHeight, rows int) Geometry {
	h := rowHeight * rows
	return Geometry{
		Origin:    p.Sub(image.Pt(width/2, h/2)),
		Width:     width,
		RowHeight: rowHeight,
		Rows:      rows,
	}
}

// Bounds returns the popup rectangle.
func (g Geometry) Bounds() image.Rectangle {
	return image.Rectangle{
		Min: g.Origin,
		Max: g.Origin.Add(image.Pt(g.Width, g.RowHeight*g.Rows)),
	}
}

// Contains reports whether p is inside the popup.
func (g Geometry) Contains(p image.Point) bool {
	return p.In(g.Bounds())
}

// Row returns the row under p. It returns -1 and false if p is outside
// the popup.
func (g Geometry) Row(p image.Point) (int, bool) {
	if g.RowHeight <= 0 || !g.Contains(p) {
		return -1, false
	}
	return (p.Y - g.Origin.Y) / g.RowHeight, true
}

// RowBounds returns the rectangle of row i.
func (g Geometry) RowBounds(i int) image.Rectangle {
	min := g.Origin.Add(image.Pt(0, i*g.RowHeight))
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(g.Width, g.RowHeight))}
}
