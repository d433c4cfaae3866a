// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"
	"strconv"
	"strings"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	gwidget "gioui.org/widget"

	"github.com/dccspin/dccspin/drag"
	"github.com/dccspin/dccspin/ladder"
	"github.com/dccspin/dccspin/numeric"
)

const (
	// LadderWidth and LadderRowHeight size the ladder popup.
	LadderWidth     = unit.Dp(72)
	LadderRowHeight = unit.Dp(28)

	// touchSlop is the vertical distance a press on the step buttons
	// must travel before it turns into a scrub.
	touchSlop = unit.Dp(3)
	// pageSteps is the number of single steps applied by PageUp and
	// PageDown.
	pageSteps = 10
	// scrimExtent bounds the area that dismisses an open ladder.
	scrimExtent = 1 << 20
)

// defaultRange is the range of a Spinbox nobody configured.
var defaultRange = numeric.Range{Min: 0, Max: 99.99, Decimals: 2}

type popupState uint8

const (
	popupClosed popupState = iota
	// popupDragging is the popup shown while the middle button is
	// held.
	popupDragging
	// popupSticky is the popup left open by a middle click.
	popupSticky
)

// Spinbox holds the state of a numeric input field with DCC style
// pointer interaction:
//
//   - pressing the step buttons and dragging vertically scrubs the
//     value, as does dragging out of the text field vertically;
//   - Ctrl, Alt and Shift select fine, precision and coarse gains;
//   - the middle button opens the value ladder;
//   - Escape during a gesture restores the value it started from;
//   - the secondary button on the step buttons resets to the default.
//
// The zero value is a spinbox over [0, 99.99] with two decimals.
type Spinbox struct {
	// Editor is the text field. Its configuration is managed by the
	// Spinbox.
	Editor gwidget.Editor
	// Drag configures scrub sensitivity.
	Drag drag.Config
	// Threshold is the horizontal ladder distance per step in pixels.
	// Zero means ladder.DefaultThreshold.
	Threshold float64
	// LadderMode selects how the ladder maps pointer motion.
	LadderMode ladder.Mode

	initialized bool
	rng         numeric.Range
	value       float64
	def         float64
	step        float64
	custom      ladder.Steps
	steps       ladder.Steps

	// changed is set until the next call to Update.
	changed   bool
	textDirty bool
	editing   bool

	size    image.Point
	buttons image.Rectangle

	// Scrub state.
	session   drag.Session
	pressed   bool
	inButtons bool
	scrubbing bool

	// Ladder state.
	popup      popupState
	gesture    ladder.Gesture
	geom       ladder.Geometry
	ladderFrom f32.Point
	ladderMove bool
	hover      int
	popupTag   int
	scrimTag   int
}

func (s *Spinbox) init() {
	if s.initialized {
		return
	}
	s.initialized = true
	s.rng = defaultRange
	s.steps = ladder.Generate(s.rng)
	s.configureEditor()
}

func (s *Spinbox) configureEditor() {
	s.Editor.SingleLine = true
	s.Editor.Submit = true
	if s.rng.Decimals == 0 {
		s.Editor.Filter = "0123456789+-"
	} else {
		s.Editor.Filter = "0123456789+-.eE"
	}
	s.textDirty = true
}

// Value returns the current value.
func (s *Spinbox) Value() float64 {
	s.init()
	return s.value
}

// SetValue sets the value, clamped to the range and rounded to its
// decimals.
func (s *Spinbox) SetValue(v float64) {
	s.init()
	s.setValue(s.rng.Normalize(v))
}

func (s *Spinbox) setValue(v float64) {
	if v != s.value {
		s.value = v
		s.changed = true
	}
	s.textDirty = true
}

// Default returns the value restored by Reset.
func (s *Spinbox) Default() float64 {
	return s.def
}

// SetDefault sets the value restored by Reset.
func (s *Spinbox) SetDefault(v float64) {
	s.def = v
}

// Reset sets the value to the default.
func (s *Spinbox) Reset() {
	s.SetValue(s.def)
}

// Range returns the value range.
func (s *Spinbox) Range() numeric.Range {
	s.init()
	return s.rng
}

// SetRange validates and sets the range. The value is clamped into
// the new range, and auto generated ladder steps are regenerated.
func (s *Spinbox) SetRange(min, max float64, decimals int) error {
	r, err := numeric.NewRange(min, max, decimals)
	if err != nil {
		return err
	}
	s.init()
	s.rng = r
	if s.custom == nil {
		s.steps = ladder.Generate(r)
	}
	s.configureEditor()
	s.setValue(r.Normalize(s.value))
	return nil
}

// SetDecimals changes the number of fractional digits.
func (s *Spinbox) SetDecimals(decimals int) error {
	s.init()
	return s.SetRange(s.rng.Min, s.rng.Max, decimals)
}

// Step returns the single step applied by the step buttons, the arrow
// keys and the mouse wheel. It defaults to the smallest increment of
// the range.
func (s *Spinbox) Step() float64 {
	s.init()
	if s.step > 0 {
		return s.step
	}
	return s.rng.Unit()
}

// SetStep sets the single step. Zero restores the default.
func (s *Spinbox) SetStep(step float64) error {
	if step < 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return ladder.ErrInvalidStep
	}
	s.step = step
	return nil
}

// Steps returns the ladder step table.
func (s *Spinbox) Steps() ladder.Steps {
	s.init()
	return s.steps
}

// SetSteps sets a custom ladder step table. Calling SetSteps without
// values restores the table generated from the range.
func (s *Spinbox) SetSteps(values ...float64) error {
	s.init()
	if len(values) == 0 {
		s.custom = nil
		s.steps = ladder.Generate(s.rng)
		return nil
	}
	steps, err := ladder.NewSteps(values...)
	if err != nil {
		return err
	}
	s.custom = steps
	s.steps = steps
	return nil
}

// StepBy adds n single steps to the value.
func (s *Spinbox) StepBy(n float64) {
	s.SetValue(s.Value() + n*s.Step())
}

// Scrubbing reports whether a drag gesture is changing the value.
func (s *Spinbox) Scrubbing() bool {
	return s.scrubbing
}

// LadderOpen reports whether the ladder popup is showing.
func (s *Spinbox) LadderOpen() bool {
	return s.popup != popupClosed
}

// Menu returns the ladder popup contents.
func (s *Spinbox) Menu() ladder.Menu {
	switch s.popup {
	case popupDragging:
		return s.gesture.Menu()
	case popupSticky:
		return ladder.Menu{Steps: s.gesture.Steps, Highlight: s.hover}
	}
	return ladder.Menu{Steps: s.Steps(), Highlight: -1}
}

// Geometry returns the placement of the ladder popup relative to the
// spinbox.
func (s *Spinbox) Geometry() ladder.Geometry {
	return s.geom
}

// Update processes events and reports whether the value changed since
// the last call to Update.
func (s *Spinbox) Update(gtx layout.Context) bool {
	s.update(gtx)
	changed := s.changed
	s.changed = false
	return changed
}

func (s *Spinbox) update(gtx layout.Context) {
	s.init()
	s.pointerEvents(gtx)
	s.popupEvents(gtx)
	s.keyEvents(gtx)
	s.editorEvents(gtx)
	if s.textDirty {
		s.Editor.SetText(s.rng.Format(s.value))
		s.textDirty = false
	}
}

func (s *Spinbox) pointerEvents(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  s,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -scrimExtent, Max: scrimExtent},
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			s.press(gtx, e)
		case pointer.Drag:
			s.move(gtx, e)
		case pointer.Release:
			s.release(e)
		case pointer.Cancel:
			s.abort()
		case pointer.Scroll:
			switch {
			case e.Scroll.Y < 0:
				s.stepWith(1, e.Modifiers)
			case e.Scroll.Y > 0:
				s.stepWith(-1, e.Modifiers)
			}
		}
	}
}

func (s *Spinbox) press(gtx layout.Context, e pointer.Event) {
	if s.pressed || s.popup == popupDragging {
		return
	}
	inButtons := e.Position.Round().In(s.buttons)
	switch {
	case e.Buttons.Contain(pointer.ButtonTertiary):
		s.openLadder(gtx, e)
	case e.Buttons.Contain(pointer.ButtonPrimary):
		s.popup = popupClosed
		s.session = drag.Begin(s.value, e.Position, e.Modifiers)
		s.pressed = true
		s.inButtons = inButtons
		if inButtons {
			gtx.Execute(key.FocusCmd{Tag: s})
		}
	case e.Buttons.Contain(pointer.ButtonSecondary):
		if inButtons {
			s.Reset()
		}
	}
}

func (s *Spinbox) move(gtx layout.Context, e pointer.Event) {
	switch {
	case s.popup == popupDragging:
		s.moveLadder(gtx, e)
	case s.pressed:
		if !s.scrubbing {
			slop := float32(math.Inf(1))
			if s.inButtons {
				slop = float32(gtx.Dp(touchSlop))
			}
			if !s.session.Active(e.Position, float32(s.size.Y), slop) {
				return
			}
			s.scrubbing = true
			gtx.Execute(pointer.GrabCmd{Tag: s, ID: e.PointerID})
			gtx.Execute(key.FocusCmd{Tag: s})
		}
		s.session.Update(e.Modifiers)
		s.setValue(drag.Value(s.session, float64(e.Position.Y), s.rng, s.Drag))
	}
}

func (s *Spinbox) release(e pointer.Event) {
	if s.popup == popupDragging && !e.Buttons.Contain(pointer.ButtonTertiary) {
		s.gesture.End()
		if s.ladderMove {
			s.popup = popupClosed
		} else {
			s.popup = popupSticky
			s.hover = s.gesture.Selected()
		}
		return
	}
	if !s.pressed || e.Buttons.Contain(pointer.ButtonPrimary) {
		return
	}
	if !s.scrubbing && s.inButtons && e.Position.Round().In(s.buttons) {
		if e.Position.Y < float32(s.buttons.Min.Y+s.buttons.Dy()/2) {
			s.stepWith(1, e.Modifiers)
		} else {
			s.stepWith(-1, e.Modifiers)
		}
	}
	s.pressed = false
	s.scrubbing = false
}

// abort ends the active gesture and restores the value it started
// from.
func (s *Spinbox) abort() {
	switch {
	case s.popup == popupDragging:
		s.setValue(s.gesture.Cancel())
		s.popup = popupClosed
	case s.popup == popupSticky:
		s.popup = popupClosed
	case s.scrubbing:
		s.setValue(s.session.Cancel())
		s.pressed = false
		s.scrubbing = false
	case s.pressed:
		s.pressed = false
	}
}

// stepWith applies n single steps scaled by the modifier gain. The
// scaled step never drops below the smallest representable increment.
func (s *Spinbox) stepWith(n float64, mods key.Modifiers) {
	step := s.Step() * float64(drag.GainFor(mods))
	if u := s.rng.Unit(); step < u {
		step = u
	}
	s.SetValue(s.value + n*step)
}

func (s *Spinbox) openLadder(gtx layout.Context, e pointer.Event) {
	p := e.Position.Round()
	steps := s.Steps()
	s.geom = ladder.Center(p, gtx.Dp(LadderWidth), gtx.Dp(LadderRowHeight), len(steps))
	row, _ := s.geom.Row(p)
	s.gesture = ladder.Gesture{Steps: steps, Threshold: s.Threshold, Mode: s.LadderMode}
	s.gesture.Begin(s.value, float64(e.Position.X), row)
	s.popup = popupDragging
	s.ladderFrom = e.Position
	s.ladderMove = false
	gtx.Execute(pointer.GrabCmd{Tag: s, ID: e.PointerID})
	gtx.Execute(key.FocusCmd{Tag: s})
}

func (s *Spinbox) moveLadder(gtx layout.Context, e pointer.Event) {
	if d := e.Position.Sub(s.ladderFrom); !s.ladderMove {
		slop := float32(gtx.Dp(touchSlop))
		s.ladderMove = d.X > slop || d.X < -slop || d.Y > slop || d.Y < -slop
	}
	if row, ok := s.geom.Row(e.Position.Round()); ok {
		s.gesture.Hover(row, s.value, float64(e.Position.X))
	}
	s.setValue(s.rng.Normalize(s.gesture.Move(float64(e.Position.X))))
}

func (s *Spinbox) popupEvents(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: &s.scrimTag, Kinds: pointer.Press})
		if !ok {
			break
		}
		if _, ok := ev.(pointer.Event); ok && s.popup == popupSticky {
			s.popup = popupClosed
		}
	}
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: &s.popupTag, Kinds: pointer.Press | pointer.Move | pointer.Leave})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok || s.popup != popupSticky {
			continue
		}
		// Positions are relative to the popup.
		row := int(e.Position.Y) / max(s.geom.RowHeight, 1)
		if e.Kind == pointer.Leave || row < 0 || row >= len(s.gesture.Steps) {
			s.hover = -1
			continue
		}
		switch e.Kind {
		case pointer.Move:
			s.hover = row
		case pointer.Press:
			switch {
			case e.Buttons.Contain(pointer.ButtonPrimary):
				s.step = s.gesture.Steps[row]
			case e.Buttons.Contain(pointer.ButtonSecondary):
				s.Reset()
			}
			s.popup = popupClosed
		}
	}
}

func (s *Spinbox) keyEvents(gtx layout.Context) {
	mods := key.ModShift | key.ModCtrl | key.ModAlt
	for {
		ev, ok := gtx.Event(
			key.FocusFilter{Target: s},
			key.Filter{Focus: s, Name: key.NameEscape},
			key.Filter{Focus: s, Name: key.NameUpArrow, Optional: mods},
			key.Filter{Focus: s, Name: key.NameDownArrow, Optional: mods},
			key.Filter{Focus: s, Name: key.NamePageUp},
			key.Filter{Focus: s, Name: key.NamePageDown},
		)
		if !ok {
			break
		}
		e, ok := ev.(key.Event)
		if !ok || e.State != key.Press {
			continue
		}
		switch e.Name {
		case key.NameEscape:
			s.abort()
		case key.NameUpArrow:
			s.stepWith(1, e.Modifiers)
		case key.NameDownArrow:
			s.stepWith(-1, e.Modifiers)
		case key.NamePageUp:
			s.StepBy(pageSteps)
		case key.NamePageDown:
			s.StepBy(-pageSteps)
		}
	}
}

func (s *Spinbox) editorEvents(gtx layout.Context) {
	for {
		ev, ok := s.Editor.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(gwidget.SubmitEvent); ok {
			s.commitText()
		}
	}
	focused := gtx.Focused(&s.Editor)
	if s.editing && !focused {
		s.commitText()
	}
	s.editing = focused
}

// commitText parses the editor text into the value. Unparsable text
// is replaced by the current value.
func (s *Spinbox) commitText() {
	v, err := strconv.ParseFloat(strings.TrimSpace(s.Editor.Text()), 64)
	if err == nil {
		s.SetValue(v)
	}
	s.textDirty = true
}

// Layout lays out the field drawn by w and registers the spinbox
// input area over it. buttons is the width of the step button column
// along the trailing edge of the field.
func (s *Spinbox) Layout(gtx layout.Context, buttons int, w layout.Widget) layout.Dimensions {
	s.update(gtx)
	dims := w(gtx)
	s.size = dims.Size
	s.buttons = image.Rect(dims.Size.X-buttons, 0, dims.Size.X, dims.Size.Y)

	defer clip.Rect{Max: dims.Size}.Push(gtx.Ops).Pop()
	defer pointer.PassOp{}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, s)
	if s.scrubbing {
		pointer.CursorRowResize.Add(gtx.Ops)
	} else {
		st := clip.Rect(s.buttons).Push(gtx.Ops)
		pointer.CursorRowResize.Add(gtx.Ops)
		st.Pop()
	}
	return dims
}

// LayoutLadder draws the ladder popup, if open, on top of other
// content. Each entry is drawn by row with exact constraints.
func (s *Spinbox) LayoutLadder(gtx layout.Context, row func(gtx layout.Context, step float64, highlight bool) layout.Dimensions) {
	if s.popup == popupClosed {
		return
	}
	menu := s.Menu()
	g := s.geom
	m := op.Record(gtx.Ops)
	if s.popup == popupSticky {
		st := clip.Rect{Min: image.Pt(-scrimExtent, -scrimExtent), Max: image.Pt(scrimExtent, scrimExtent)}.Push(gtx.Ops)
		event.Op(gtx.Ops, &s.scrimTag)
		st.Pop()
	}
	off := op.Offset(g.Origin).Push(gtx.Ops)
	area := clip.Rect{Max: g.Bounds().Size()}.Push(gtx.Ops)
	if s.popup == popupSticky {
		event.Op(gtx.Ops, &s.popupTag)
	}
	pointer.CursorColResize.Add(gtx.Ops)
	rgtx := gtx
	rgtx.Constraints = layout.Exact(image.Pt(g.Width, g.RowHeight))
	for i, step := range menu.Steps {
		t := op.Offset(image.Pt(0, i*g.RowHeight)).Push(gtx.Ops)
		row(rgtx, step, i == menu.Highlight)
		t.Pop()
	}
	area.Pop()
	off.Pop()
	op.Defer(gtx.Ops, m.Stop())
}
