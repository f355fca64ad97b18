package giowidgets

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/rocksolutions-io/PyFlow/editor/uit"
)

// FormView lays out form rows as "label: widget" in a scrollable list
type FormView struct {
	Form *uit.Form

	views []*View
	list  widget.List
}

func NewFormView(f *uit.Form) *FormView {
	fv := &FormView{
		Form: f,
		list: widget.List{List: layout.List{Axis: layout.Vertical}},
	}
	for _, row := range f.Rows {
		fv.views = append(fv.views, NewView(row.Binding.Widget))
	}
	return fv
}

func (fv *FormView) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return material.List(th, &fv.list).Layout(gtx, len(fv.views), func(gtx layout.Context, i int) layout.Dimensions {
		return layout.Inset{Bottom: unit.Dp(6)}.Layout(gtx, formRow(th, fv.Form.Rows[i].Label, func(gtx layout.Context) layout.Dimensions {
			return fv.views[i].Layout(gtx, th)
		}))
	})
}

func formRow(th *material.Theme, label string, w layout.Widget) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(120))
				return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, material.Label(th, th.TextSize, label).Layout)
			}),
			layout.Flexed(1, w),
		)
	}
}
