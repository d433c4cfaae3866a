// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws the spinbox widgets with the Gio material
// theme.
//
// As with the Gio widgets, state and drawing are split: a
// widget.Spinbox holds the value and interprets pointer and key input,
// while SpinboxStyle draws it:
//
//	var spin widget.Spinbox
//	spin.SetRange(-10, 10, 3)
//
//	for spin.Update(gtx) {
//		fmt.Println(spin.Value())
//	}
//	material.Spinbox(th, &spin).Layout(gtx)
//
// The ladder popup opened by the middle button is drawn by the same
// Layout call, deferred so that it covers other content.
package material
