package giowidgets

import (
	"image"
	"testing"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/rocksolutions-io/PyFlow/config"
	"github.com/rocksolutions-io/PyFlow/editor/uit"
	"github.com/rocksolutions-io/PyFlow/pins"
)

func newTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return th
}

func frame(th *material.Theme, v interface {
	Layout(layout.Context, *material.Theme) layout.Dimensions
}) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(800, 600)),
	}
	v.Layout(gtx, th)
}

// withFocus makes every editor report focus while it returns true
func withFocus(t *testing.T, focused *bool) {
	editorFocused = func(*widget.Editor) bool { return *focused }
	t.Cleanup(func() { editorFocused = (*widget.Editor).Focused })
}

type recorder struct {
	calls []any
}

func (r *recorder) set(v any) { r.calls = append(r.calls, v) }

func (r *recorder) last() any {
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func TestViewShowsPushedValue(t *testing.T) {
	th := newTheme()
	var rec recorder
	w, err := uit.NewInputWidget(pins.Float, rec.set, nil)
	if err != nil {
		t.Fatal(err)
	}
	v := NewView(w)
	w.SetWidgetValue(3.5)
	frame(th, v)

	sv := v.fields[0].(*spinView)
	if sv.ed.Text() != "3.500" {
		t.Errorf("editor text = %q; expected %q", sv.ed.Text(), "3.500")
	}
	if len(rec.calls) != 0 {
		t.Errorf("push called setter: %v", rec.calls)
	}
	if v.reset == nil {
		t.Error("float view must have reset button")
	}
}

func TestViewTypingEditsValue(t *testing.T) {
	focused := true
	withFocus(t, &focused)
	th := newTheme()
	var rec recorder
	w, _ := uit.NewInputWidget(pins.FloatVector3, rec.set, nil)
	w.SetWidgetValue(mgl64.Vec3{1, 2, 3})
	v := NewView(w)
	frame(th, v)

	sv := v.fields[1].(*spinView)
	sv.ed.SetText("5")
	frame(th, v)

	if len(rec.calls) != 1 || rec.calls[0] != (mgl64.Vec3{1, 5, 3}) {
		t.Fatalf("setter calls = %v", rec.calls)
	}
	// text that already means the value is kept while typing
	frame(th, v)
	if sv.ed.Text() != "5" {
		t.Errorf("editor text rewritten to %q", sv.ed.Text())
	}

	// unparsable text is ignored
	sv.ed.SetText("-")
	frame(th, v)
	if len(rec.calls) != 1 {
		t.Errorf("unparsable text reached setter: %v", rec.calls)
	}

	focused = false
	frame(th, v)
	if sv.ed.Text() != "5.000" {
		t.Errorf("editor text after blur = %q; expected %q", sv.ed.Text(), "5.000")
	}
}

func TestSpinKeepsRoundedTextWhileFocused(t *testing.T) {
	focused := true
	withFocus(t, &focused)
	th := newTheme()
	var rec recorder
	w, _ := uit.NewInputWidget(pins.Float, rec.set, nil)
	v := NewView(w)
	frame(th, v)

	sv := v.fields[0].(*spinView)
	sv.ed.SetText("3.1234")
	frame(th, v)
	frame(th, v)
	if sv.ed.Text() != "3.1234" {
		t.Errorf("focused editor text rewritten to %q", sv.ed.Text())
	}
	if len(rec.calls) != 1 || rec.calls[0] != 3.123 {
		t.Fatalf("setter calls = %v", rec.calls)
	}

	// push from outside wins over typed text
	w.SetWidgetValue(7.0)
	frame(th, v)
	if sv.ed.Text() != "7.000" {
		t.Errorf("pushed value shown as %q", sv.ed.Text())
	}

	sv.ed.SetText("1.0004")
	frame(th, v)
	focused = false
	frame(th, v)
	if sv.ed.Text() != "1.000" {
		t.Errorf("editor text after blur = %q; expected %q", sv.ed.Text(), "1.000")
	}
}

func TestSpinStepButtons(t *testing.T) {
	th := newTheme()
	var rec recorder
	w, _ := uit.NewInputWidget(pins.Float, rec.set, 1.0)
	v := NewView(w)
	frame(th, v)

	sv := v.fields[0].(*spinView)
	sv.inc.Click()
	frame(th, v)
	if len(rec.calls) != 1 || rec.calls[0] != 1.01 {
		t.Fatalf("setter calls after + = %v", rec.calls)
	}
	if sv.ed.Text() != "1.010" {
		t.Errorf("editor text after + = %q", sv.ed.Text())
	}

	iw, _ := uit.NewInputWidget(pins.Int, rec.set, nil)
	iv := NewView(iw)
	frame(th, iv)
	isv := iv.fields[0].(*intSpinView)
	for i := 0; i < 2; i++ {
		isv.dec.Click()
		frame(th, iv)
	}
	if iw.Value() != -2 || rec.last() != -2 {
		t.Errorf("int value after two - = %v, setter got %v", iw.Value(), rec.last())
	}
	if isv.ed.Text() != "-2" {
		t.Errorf("int editor text = %q", isv.ed.Text())
	}
}

func TestViewClampsTypedValue(t *testing.T) {
	th := newTheme()
	w, _ := uit.NewInputWidget(pins.Int, nil, nil)
	v := NewView(w)
	frame(th, v)

	iv := v.fields[0].(*intSpinView)
	iv.ed.SetText("99999999999")
	frame(th, v)
	frame(th, v)
	if iv.sb.Value() != config.DefaultIntMax {
		t.Errorf("value = %d; expected clamp to %d", iv.sb.Value(), config.DefaultIntMax)
	}
	if iv.ed.Text() != iv.sb.Text() {
		t.Errorf("editor text %q does not match control %q", iv.ed.Text(), iv.sb.Text())
	}
}

func TestCheckAndLineViews(t *testing.T) {
	th := newTheme()
	var rec recorder

	bw, _ := uit.NewInputWidget(pins.Bool, rec.set, nil)
	bv := NewView(bw)
	bw.SetWidgetValue(true)
	frame(th, bv)
	cv := bv.fields[0].(*checkView)
	if !cv.b.Value {
		t.Error("check box not synced")
	}
	cv.b.Value = false
	frame(th, bv)
	if len(rec.calls) != 1 || rec.calls[0] != false {
		t.Errorf("bool setter calls = %v", rec.calls)
	}

	sw, _ := uit.NewInputWidget(pins.String, rec.set, "abc")
	sv := NewView(sw)
	frame(th, sv)
	lv := sv.fields[0].(*lineView)
	if lv.ed.Text() != "abc" {
		t.Errorf("line edit text = %q", lv.ed.Text())
	}
	lv.ed.SetText("abcd")
	frame(th, sv)
	if rec.calls[len(rec.calls)-1] != "abcd" {
		t.Errorf("string setter calls = %v", rec.calls)
	}
}

func TestFormViewLayout(t *testing.T) {
	th := newTheme()
	f, err := uit.NewFactory(config.DefaultNumericPolicy())
	if err != nil {
		t.Fatal(err)
	}
	var ps []*pins.Pin
	for _, dt := range pins.DataTypes {
		p, err := pins.NewPin(dt.String(), dt, nil)
		if err != nil {
			t.Fatal(err)
		}
		ps = append(ps, p)
	}
	form, err := f.NewForm(ps...)
	if err != nil {
		t.Fatal(err)
	}
	defer form.Close()

	fv := NewFormView(form)
	if len(fv.views) != len(pins.DataTypes) {
		t.Fatalf("views = %d", len(fv.views))
	}
	frame(th, fv)

	m := fv.views[len(fv.views)-2]
	if len(m.fields) != 16 || m.Widget.Columns() != 4 {
		t.Errorf("matrix view has %d fields in %d columns", len(m.fields), m.Widget.Columns())
	}
	if exec := fv.views[len(fv.views)-1]; exec.reset != nil {
		t.Error("exec view must not have reset button")
	}
}
