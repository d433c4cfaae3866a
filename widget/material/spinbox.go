// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	gwidget "gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/dccspin/dccspin/widget"
)

var (
	arrowUp   = mustIcon(gwidget.NewIcon(icons.NavigationArrowDropUp))
	arrowDown = mustIcon(gwidget.NewIcon(icons.NavigationArrowDropDown))
)

// SpinboxStyle draws a widget.Spinbox as a text field with a column of
// step buttons along its trailing edge.
type SpinboxStyle struct {
	Spinbox *widget.Spinbox
	Editor  material.EditorStyle
	Ladder  LadderStyle

	// IconColor is the color of the step button arrows.
	IconColor color.NRGBA
	// Border is the field outline; Active replaces it while scrubbing.
	Border      color.NRGBA
	Active      color.NRGBA
	BorderWidth unit.Dp
	// ButtonWidth is the width of the step button column.
	ButtonWidth  unit.Dp
	CornerRadius unit.Dp
	Inset        layout.Inset
}

// Spinbox returns a style for a floating-point spinbox.
func Spinbox(th *material.Theme, s *widget.Spinbox) SpinboxStyle {
	return SpinboxStyle{
		Spinbox:      s,
		Editor:       material.Editor(th, &s.Editor, ""),
		Ladder:       Ladder(th),
		IconColor:    th.Palette.Fg,
		Border:       mulAlpha(th.Palette.Fg, 0x60),
		Active:       th.Palette.ContrastBg,
		BorderWidth:  unit.Dp(1),
		ButtonWidth:  unit.Dp(20),
		CornerRadius: unit.Dp(2),
		Inset:        layout.UniformInset(unit.Dp(4)),
	}
}

// IntSpinbox returns a style for an integer spinbox.
func IntSpinbox(th *material.Theme, s *widget.IntSpinbox) SpinboxStyle {
	return Spinbox(th, s.Spin())
}

// Layout draws the spinbox and, when open, its ladder popup.
func (s SpinboxStyle) Layout(gtx layout.Context) layout.Dimensions {
	border := s.Border
	if s.Spinbox.Scrubbing() || s.Spinbox.LadderOpen() {
		border = s.Active
	}
	dims := gwidget.Border{
		Color:        border,
		Width:        s.BorderWidth,
		CornerRadius: s.CornerRadius,
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		bw := gtx.Dp(s.ButtonWidth)
		return s.Spinbox.Layout(gtx, bw, func(gtx layout.Context) layout.Dimensions {
			return s.layoutField(gtx, bw)
		})
	})
	s.Spinbox.LayoutLadder(gtx, s.Ladder.Row)
	return dims
}

func (s SpinboxStyle) layoutField(gtx layout.Context, bw int) layout.Dimensions {
	egtx := gtx
	egtx.Constraints.Max.X = max(gtx.Constraints.Max.X-bw, 0)
	egtx.Constraints.Min.X = egtx.Constraints.Max.X
	egtx.Constraints.Min.Y = 0
	m := op.Record(gtx.Ops)
	edims := s.Inset.Layout(egtx, s.Editor.Layout)
	call := m.Stop()

	size := image.Pt(edims.Size.X+bw, max(edims.Size.Y, gtx.Constraints.Min.Y))
	size = gtx.Constraints.Constrain(size)
	call.Add(gtx.Ops)

	if s.Spinbox.Scrubbing() {
		r := image.Rect(size.X-bw, 0, size.X, size.Y)
		paint.FillShape(gtx.Ops, mulAlpha(s.Active, 0x40), clip.Rect(r).Op())
	}
	half := size.Y / 2
	s.layoutArrow(gtx, arrowUp, image.Rect(size.X-bw, 0, size.X, half))
	s.layoutArrow(gtx, arrowDown, image.Rect(size.X-bw, half, size.X, size.Y))
	return layout.Dimensions{Size: size, Baseline: edims.Baseline}
}

// layoutArrow centers an arrow icon in r.
func (s SpinboxStyle) layoutArrow(gtx layout.Context, ic *gwidget.Icon, r image.Rectangle) {
	sz := min(r.Dx(), r.Dy())
	if sz <= 0 {
		return
	}
	off := r.Min.Add(image.Pt((r.Dx()-sz)/2, (r.Dy()-sz)/2))
	defer op.Offset(off).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(image.Pt(sz, sz))
	ic.Layout(gtx, s.IconColor)
}

func mustIcon(ic *gwidget.Icon, err error) *gwidget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}

// mulAlpha applies the alpha a to c, assuming c is not premultiplied.
func mulAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(a) / 0xFF)
	return c
}
