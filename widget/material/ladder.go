// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dccspin/dccspin/numeric"
)

// LadderStyle draws the entries of a value ladder popup.
type LadderStyle struct {
	Color      color.NRGBA
	Background color.NRGBA
	// HighlightColor and HighlightBackground draw the selected entry.
	HighlightColor      color.NRGBA
	HighlightBackground color.NRGBA
	TextSize            unit.Sp
	// Language selects the digit grouping of the step labels.
	Language language.Tag

	theme *material.Theme
}

// Ladder returns the default ladder style for th.
func Ladder(th *material.Theme) LadderStyle {
	return LadderStyle{
		Color:               th.Palette.Fg,
		Background:          mulAlpha(th.Palette.Bg, 0xE6),
		HighlightColor:      th.Palette.ContrastFg,
		HighlightBackground: th.Palette.ContrastBg,
		TextSize:            th.TextSize * 14 / 16,
		Language:            language.English,
		theme:               th,
	}
}

// Label formats a step magnitude for display.
func (l LadderStyle) Label(step float64) string {
	p := message.NewPrinter(l.Language)
	return p.Sprint(number.Decimal(step, number.MaxFractionDigits(numeric.MaxDecimals)))
}

// Row draws one ladder entry filling the constraints.
func (l LadderStyle) Row(gtx layout.Context, step float64, highlight bool) layout.Dimensions {
	fg, bg := l.Color, l.Background
	if highlight {
		fg, bg = l.HighlightColor, l.HighlightBackground
	}
	size := gtx.Constraints.Min
	paint.FillShape(gtx.Ops, bg, clip.Rect{Max: size}.Op())
	lbl := material.Label(l.theme, l.TextSize, l.Label(step))
	lbl.Color = fg
	lbl.Alignment = text.Middle
	lbl.MaxLines = 1
	if highlight {
		lbl.Font.Weight = font.Bold
	}
	layout.Center.Layout(gtx, lbl.Layout)
	return layout.Dimensions{Size: size}
}
