//go:build gtk

// Package gtkwidgets builds gtk widgets for uit input widgets.
//
// Gtk signals feed user edits into controls, Sync copies controls marked dirty back into gtk widgets.
// Build with -tags gtk, it needs gtk3 development libraries.
package gtkwidgets

import (
	"github.com/gotk3/gotk3/gtk"

	"github.com/rocksolutions-io/PyFlow/editor/uit"
)

type fieldView interface {
	create(changed func()) gtk.IWidget
	sync()
}

// View presents single input widget as grid of its fields plus reset button
type View struct {
	Widget uit.Widget

	fields []fieldView
}

func NewView(w uit.Widget) *View {
	v := &View{Widget: w}
	for _, f := range w.Fields() {
		v.fields = append(v.fields, newFieldView(f.Control))
	}
	return v
}

func newFieldView(c uit.Control) fieldView {
	switch c := c.(type) {
	case *uit.SpinBox:
		return &spinField{sb: c}
	case *uit.IntSpinBox:
		return &intSpinField{sb: c}
	case *uit.LineEdit:
		return &entryField{le: c}
	case *uit.CheckBox:
		return &checkField{cb: c}
	case *uit.PushButton:
		return &buttonField{pb: c}
	}
	panic("gtkwidgets: unsupported control")
}

func (v *View) Create() gtk.IWidget {
	grid, err := gtk.GridNew()
	if err != nil {
		panic(err)
	}
	grid.SetRowSpacing(2)
	grid.SetColumnSpacing(4)

	columns := v.Widget.Columns()
	if columns < 1 {
		columns = 1
	}
	for i, f := range v.Widget.Fields() {
		col, row := (i%columns)*2, i/columns
		if f.Name != "" {
			l, _ := gtk.LabelNew(f.Name)
			grid.Attach(l, col, row, 1, 1)
		}
		grid.Attach(v.fields[i].create(v.Sync), col+1, row, 1, 1)
	}

	if rb := v.Widget.ResetButton(); rb != nil {
		b, err := gtk.ButtonNewWithLabel("↺")
		if err != nil {
			panic(err)
		}
		b.Connect("clicked", func() {
			rb.Click()
			v.Sync()
		})
		grid.Attach(b, columns*2, 0, 1, 1)
	}
	return grid
}

// Sync pushes values set on controls since last sync into gtk widgets
func (v *View) Sync() {
	for _, f := range v.fields {
		f.sync()
	}
}

type spinField struct {
	sb      *uit.SpinBox
	spin    *gtk.SpinButton
	syncing bool
}

func (f *spinField) create(changed func()) gtk.IWidget {
	spin, err := gtk.SpinButtonNewWithRange(f.sb.Min(), f.sb.Max(), f.sb.SingleStep())
	if err != nil {
		panic(err)
	}
	spin.SetDigits(uint(f.sb.Decimals()))
	f.spin = spin
	f.sync()
	spin.Connect("value-changed", func() {
		if f.syncing {
			return
		}
		f.sb.Edit(spin.GetValue())
		changed()
	})
	return spin
}

func (f *spinField) sync() {
	if !f.sb.NeedUpdate() {
		return
	}
	f.syncing = true
	f.spin.SetValue(f.sb.Value())
	f.syncing = false
}

type intSpinField struct {
	sb      *uit.IntSpinBox
	spin    *gtk.SpinButton
	syncing bool
}

func (f *intSpinField) create(changed func()) gtk.IWidget {
	spin, err := gtk.SpinButtonNewWithRange(float64(f.sb.Min()), float64(f.sb.Max()), float64(f.sb.SingleStep()))
	if err != nil {
		panic(err)
	}
	spin.SetDigits(0)
	f.spin = spin
	f.sync()
	spin.Connect("value-changed", func() {
		if f.syncing {
			return
		}
		f.sb.Edit(spin.GetValueAsInt())
		changed()
	})
	return spin
}

func (f *intSpinField) sync() {
	if !f.sb.NeedUpdate() {
		return
	}
	f.syncing = true
	f.spin.SetValue(float64(f.sb.Value()))
	f.syncing = false
}

type entryField struct {
	le      *uit.LineEdit
	entry   *gtk.Entry
	syncing bool
}

func (f *entryField) create(changed func()) gtk.IWidget {
	entry, err := gtk.EntryNew()
	if err != nil {
		panic(err)
	}
	f.entry = entry
	f.sync()
	entry.Connect("changed", func() {
		if f.syncing {
			return
		}
		text, err := entry.GetText()
		if err != nil {
			return
		}
		f.le.Type(text)
		changed()
	})
	return entry
}

func (f *entryField) sync() {
	if !f.le.NeedUpdate() {
		return
	}
	// same text must not be set again, it would move caret
	if text, err := f.entry.GetText(); err == nil && text == f.le.Text() {
		return
	}
	f.syncing = true
	f.entry.SetText(f.le.Text())
	f.syncing = false
}

type checkField struct {
	cb      *uit.CheckBox
	check   *gtk.CheckButton
	syncing bool
}

func (f *checkField) create(changed func()) gtk.IWidget {
	check, err := gtk.CheckButtonNewWithLabel(f.cb.Label)
	if err != nil {
		panic(err)
	}
	f.check = check
	f.sync()
	check.Connect("toggled", func() {
		if f.syncing {
			return
		}
		f.cb.Click(check.GetActive())
		changed()
	})
	return check
}

func (f *checkField) sync() {
	if !f.cb.NeedUpdate() {
		return
	}
	f.syncing = true
	f.check.SetActive(f.cb.Checked())
	f.syncing = false
}

type buttonField struct {
	pb *uit.PushButton
}

func (f *buttonField) create(changed func()) gtk.IWidget {
	b, err := gtk.ButtonNewWithLabel(f.pb.Label)
	if err != nil {
		panic(err)
	}
	b.Connect("clicked", func() {
		f.pb.Click()
		changed()
	})
	return b
}

func (f *buttonField) sync() {}
