//go:build gtk

package gtkwidgets

import (
	"github.com/gotk3/gotk3/gtk"

	"github.com/rocksolutions-io/PyFlow/editor/uit"
)

// FormView builds form rows as label and widget columns of gtk grid
type FormView struct {
	Form *uit.Form

	views []*View
}

func NewFormView(f *uit.Form) *FormView {
	fv := &FormView{Form: f}
	for _, row := range f.Rows {
		fv.views = append(fv.views, NewView(row.Binding.Widget))
	}
	return fv
}

func (fv *FormView) Build() gtk.IWidget {
	grid, err := gtk.GridNew()
	if err != nil {
		panic(err)
	}

	grid.SetRowSpacing(2)
	grid.SetColumnSpacing(4)

	for i, row := range fv.Form.Rows {
		l, _ := gtk.LabelNew(row.Label)
		grid.Attach(l, 0, i, 1, 1)
		grid.Attach(fv.views[i].Create(), 1, i, 1, 1)

		// binding listener updates widget first, then view shows it
		v, p := fv.views[i], row.Binding.Pin
		p.ConnectOnChange(v, func(any) { v.Sync() })
	}
	grid.Connect("destroy", func() {
		for i, row := range fv.Form.Rows {
			row.Binding.Pin.DisconnectOnChange(fv.views[i])
		}
	})
	grid.ShowAll()
	return grid
}
