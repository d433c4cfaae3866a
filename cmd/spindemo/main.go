// SPDX-License-Identifier: Unlicense OR MIT

package main

// Spindemo shows the DCC spinboxes: drag the arrows vertically to
// scrub, hold Ctrl, Alt or Shift for fine, precision or coarse
// steps, middle-click the field for the value ladder, press Escape
// mid-drag to restore, and right-click the arrows to reset.

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/dccspin/dccspin/internal/preset"
	"github.com/dccspin/dccspin/widget"
	spinmat "github.com/dccspin/dccspin/widget/material"
)

var presetsFile = flag.String("presets", "", "load extra spinboxes from a TOML preset file")

type row struct {
	name string
	spin *widget.Spinbox
}

func main() {
	flag.Parse()
	rows, err := newRows(*presetsFile)
	if err != nil {
		log.Fatal(err)
	}
	go func() {
		w := new(app.Window)
		w.Option(app.Title("DCC Spinbox"), app.Size(unit.Dp(420), unit.Dp(360)))
		if err := loop(w, rows); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func newRows(presets string) ([]row, error) {
	integer := new(widget.IntSpinbox)
	if err := integer.SetRange(-1000, 1000); err != nil {
		return nil, err
	}
	integer.SetDefault(0)
	integer.SetInt(50)

	float := new(widget.Spinbox)
	if err := float.SetRange(-100, 100, 3); err != nil {
		return nil, err
	}
	float.SetValue(1.5)

	custom := new(widget.Spinbox)
	if err := custom.SetRange(0, 1, 4); err != nil {
		return nil, err
	}
	if err := custom.SetSteps(0.5, 0.1, 0.05, 0.01, 0.001); err != nil {
		return nil, err
	}
	custom.SetDefault(0.5)
	custom.Reset()

	rows := []row{
		{"SpinBox (int)", integer.Spin()},
		{"DoubleSpinBox", float},
		{"Custom steps", custom},
	}
	if presets == "" {
		return rows, nil
	}
	ps, err := preset.LoadFile(presets)
	if err != nil {
		return nil, err
	}
	for _, p := range ps {
		s := new(widget.Spinbox)
		if err := p.Apply(s); err != nil {
			return nil, err
		}
		rows = append(rows, row{p.Name, s})
	}
	return rows, nil
}

func loop(w *app.Window, rows []row) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	list := &layout.List{Axis: layout.Vertical}
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			for _, r := range rows {
				if r.spin.Update(gtx) {
					log.Printf("%s = %s", r.name, r.spin.Range().Format(r.spin.Value()))
				}
			}
			layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return list.Layout(gtx, len(rows), func(gtx layout.Context, i int) layout.Dimensions {
					return layoutRow(gtx, th, rows[i])
				})
			})
			e.Frame(gtx.Ops)
		}
	}
}

func layoutRow(gtx layout.Context, th *material.Theme, r row) layout.Dimensions {
	return layout.Inset{Bottom: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Dp(140)
				rng := r.spin.Range()
				bounds := fmt.Sprintf("[%s, %s]", rng.Format(rng.Min), rng.Format(rng.Max))
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(material.Body1(th, r.name).Layout),
					layout.Rigid(material.Caption(th, bounds).Layout),
				)
			}),
			layout.Flexed(1, spinmat.Spinbox(th, r.spin).Layout),
		)
	})
}
