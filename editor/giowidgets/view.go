// Package giowidgets lays out uit input widgets with gio material widgets.
//
// Every frame a view first copies values pushed into controls (Dirty) into gio state,
// then lays out, then turns differences between gio state and controls into user edits.
package giowidgets

import (
	"strconv"
	"strings"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/rocksolutions-io/PyFlow/editor/uit"
)

type fieldView interface {
	layout(gtx layout.Context, th *material.Theme) layout.Dimensions
}

// View presents single input widget
type View struct {
	Widget uit.Widget

	names  []string
	fields []fieldView
	reset  *buttonView
}

func NewView(w uit.Widget) *View {
	v := &View{Widget: w}
	for _, f := range w.Fields() {
		v.names = append(v.names, f.Name)
		v.fields = append(v.fields, newFieldView(f.Control))
	}
	if rb := w.ResetButton(); rb != nil {
		v.reset = &buttonView{pb: rb, label: "↺"}
	}
	return v
}

func newFieldView(c uit.Control) fieldView {
	switch c := c.(type) {
	case *uit.SpinBox:
		return &spinView{sb: c, numberText: numberText{ed: widget.Editor{SingleLine: true}}}
	case *uit.IntSpinBox:
		return &intSpinView{sb: c, numberText: numberText{ed: widget.Editor{SingleLine: true}}}
	case *uit.LineEdit:
		return &lineView{le: c, ed: widget.Editor{SingleLine: true}}
	case *uit.CheckBox:
		return &checkView{cb: c}
	case *uit.PushButton:
		return &buttonView{pb: c, label: c.Label}
	}
	panic("giowidgets: unsupported control")
}

func (v *View) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	grid := func(gtx layout.Context) layout.Dimensions {
		return v.layoutGrid(gtx, th)
	}
	if v.reset == nil {
		return grid(gtx)
	}
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, grid),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return v.reset.layout(gtx, th)
		}),
	)
}

func (v *View) layoutGrid(gtx layout.Context, th *material.Theme) layout.Dimensions {
	columns := v.Widget.Columns()
	if columns < 1 {
		columns = 1
	}

	var rows []layout.FlexChild
	for start := 0; start < len(v.fields); start += columns {
		end := start + columns
		if end > len(v.fields) {
			end = len(v.fields)
		}
		var cells []layout.FlexChild
		for i := start; i < end; i++ {
			i := i
			cells = append(cells, layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Right: unit.Dp(2), Bottom: unit.Dp(2)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return v.layoutField(gtx, th, i)
				})
			}))
		}
		rows = append(rows, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, cells...)
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}

func (v *View) layoutField(gtx layout.Context, th *material.Theme, i int) layout.Dimensions {
	field := func(gtx layout.Context) layout.Dimensions {
		return v.fields[i].layout(gtx, th)
	}
	if v.names[i] == "" {
		return field(gtx)
	}
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Right: unit.Dp(4)}.Layout(gtx, material.Label(th, th.TextSize, v.names[i]).Layout)
		}),
		layout.Flexed(1, field),
	)
}

// editorFocused is replaced in tests, headless frames never focus an editor
var editorFocused = (*widget.Editor).Focused

// numberText keeps spin box editor text and control value in step.
// Text typed by user stays as is while editor has focus, formatted value is put back on blur.
type numberText struct {
	ed    widget.Editor
	text  string
	stale bool
}

// sync runs before layout. matches reports whether text already means control value.
func (n *numberText) sync(dirty bool, formatted string, matches func(string) bool) {
	switch {
	case dirty:
		if !editorFocused(&n.ed) || !matches(n.ed.Text()) {
			n.ed.SetText(formatted)
			n.stale = false
		}
	case n.stale && !editorFocused(&n.ed):
		n.ed.SetText(formatted)
		n.stale = false
	}
	n.text = n.ed.Text()
}

// changed runs after layout and returns text typed during this frame
func (n *numberText) changed() (string, bool) {
	text := n.ed.Text()
	if text == n.text {
		return "", false
	}
	n.text = text
	n.stale = true
	return text, true
}

type spinView struct {
	sb *uit.SpinBox
	numberText

	dec, inc widget.Clickable
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func (v *spinView) layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if v.dec.Clicked(gtx) {
		v.sb.StepBy(-1)
	}
	if v.inc.Clicked(gtx) {
		v.sb.StepBy(1)
	}
	v.sync(v.sb.NeedUpdate(), v.sb.Text(), func(text string) bool {
		cur, err := parseFloat(text)
		return err == nil && cur == v.sb.Value()
	})

	dims := layoutSpin(gtx, th, &v.ed, &v.dec, &v.inc)

	if text, ok := v.changed(); ok {
		if val, err := parseFloat(text); err == nil {
			v.sb.Edit(val)
			// editor already shows own edit
			v.sb.NeedUpdate()
		}
	}
	return dims
}

type intSpinView struct {
	sb *uit.IntSpinBox
	numberText

	dec, inc widget.Clickable
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func (v *intSpinView) layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if v.dec.Clicked(gtx) {
		v.sb.StepBy(-1)
	}
	if v.inc.Clicked(gtx) {
		v.sb.StepBy(1)
	}
	v.sync(v.sb.NeedUpdate(), v.sb.Text(), func(text string) bool {
		cur, err := parseInt(text)
		return err == nil && cur == v.sb.Value()
	})

	dims := layoutSpin(gtx, th, &v.ed, &v.dec, &v.inc)

	if text, ok := v.changed(); ok {
		if val, err := parseInt(text); err == nil {
			v.sb.Edit(val)
			v.sb.NeedUpdate()
		}
	}
	return dims
}

func layoutSpin(gtx layout.Context, th *material.Theme, ed *widget.Editor, dec, inc *widget.Clickable) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, material.Editor(th, ed, "").Layout),
		layout.Rigid(material.Button(th, dec, "-").Layout),
		layout.Rigid(material.Button(th, inc, "+").Layout),
	)
}

type lineView struct {
	le *uit.LineEdit
	ed widget.Editor
}

func (v *lineView) layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if v.le.NeedUpdate() && v.ed.Text() != v.le.Text() {
		v.ed.SetText(v.le.Text())
	}
	dims := material.Editor(th, &v.ed, "").Layout(gtx)
	if text := v.ed.Text(); text != v.le.Text() {
		v.le.Type(text)
		v.le.NeedUpdate()
	}
	return dims
}

type checkView struct {
	cb *uit.CheckBox
	b  widget.Bool
}

func (v *checkView) layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if v.cb.NeedUpdate() {
		v.b.Value = v.cb.Checked()
	}
	dims := material.CheckBox(th, &v.b, v.cb.Label).Layout(gtx)
	if v.b.Value != v.cb.Checked() {
		v.cb.Click(v.b.Value)
		v.cb.NeedUpdate()
	}
	return dims
}

type buttonView struct {
	pb    *uit.PushButton
	label string
	c     widget.Clickable
}

func (v *buttonView) layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if v.c.Clicked(gtx) {
		v.pb.Click()
	}
	return material.Button(th, &v.c, v.label).Layout(gtx)
}
