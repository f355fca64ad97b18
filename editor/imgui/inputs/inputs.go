// Package inputs renders uit input widgets with imgui.
// Immediate mode needs no per widget state: controls are read every frame and
// a returned "changed" flag is turned into user edit of the control.
package inputs

import (
	"math"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/rocksolutions-io/PyFlow/editor/uit"
)

const fieldWidth = 90

func Render(label string, w uit.Widget) {
	imgui.PushID(w.ID().String())

	imgui.Text(label)
	imgui.SameLine()

	columns := w.Columns()
	imgui.BeginGroup()
	for i, f := range w.Fields() {
		imgui.PushIDInt(i)
		renderField(f)
		imgui.PopID()
		if columns > 1 && (i+1)%columns != 0 {
			imgui.SameLine()
		}
	}
	imgui.EndGroup()

	if rb := w.ResetButton(); rb != nil {
		imgui.SameLine()
		if imgui.Button("reset") {
			rb.Click()
		}
	}

	imgui.PopID()
}

func RenderForm(f *uit.Form) {
	for _, row := range f.Rows {
		Render(row.Label, row.Binding.Widget)
	}
}

func renderField(f uit.Field) {
	// "##" keeps label out of the ui while still making id unique
	label := "##" + f.Name
	if f.Name != "" {
		imgui.Text(f.Name)
		imgui.SameLine()
	}

	switch c := f.Control.(type) {
	case *uit.SpinBox:
		imgui.PushItemWidth(fieldWidth)
		v := float32(c.Value())
		if imgui.DragFloatV(label, &v, float32(c.SingleStep()), float32(c.Min()), float32(c.Max()), c.Format(), imgui.SliderFlagsNone) {
			c.Edit(float64(v))
		}
		imgui.PopItemWidth()
	case *uit.IntSpinBox:
		imgui.PushItemWidth(fieldWidth)
		v := int32(clampInt32(c.Value()))
		if imgui.InputInt(label, &v) {
			c.Edit(int(v))
		}
		imgui.PopItemWidth()
	case *uit.LineEdit:
		text := c.Text()
		if imgui.InputText(label, &text) {
			c.Type(text)
		}
	case *uit.CheckBox:
		checked := c.Checked()
		if imgui.Checkbox(c.Label+label, &checked) {
			c.Click(checked)
		}
	case *uit.PushButton:
		if imgui.Button(c.Label) {
			c.Click()
		}
	}
	// immediate mode redraws everything each frame
	f.Control.NeedUpdate()
}

func clampInt32(v int) int {
	if v < math.MinInt32 {
		return math.MinInt32
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return v
}
