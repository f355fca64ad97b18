package uit_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/rocksolutions-io/PyFlow/config"
	"github.com/rocksolutions-io/PyFlow/editor/uit"
	"github.com/rocksolutions-io/PyFlow/pins"
	"github.com/rocksolutions-io/PyFlow/utils"
)

type recorder struct {
	calls []any
}

func (r *recorder) set(v any) { r.calls = append(r.calls, v) }

func (r *recorder) last(t *testing.T) any {
	t.Helper()
	if len(r.calls) == 0 {
		t.Fatal("setter was not called")
	}
	return r.calls[len(r.calls)-1]
}

var roundTripTests = []struct {
	dt pins.DataType
	in any
}{
	{pins.Float, 3.5},
	{pins.Float, -12.125},
	{pins.Int, 42},
	{pins.String, "hello"},
	{pins.Bool, true},
	{pins.FloatVector3, mgl64.Vec3{1, 2, 3}},
	{pins.FloatVector4, mgl64.Vec4{1, -2, 3.25, 4}},
	{pins.Quaternion, mgl64.Quat{W: 0.5, V: mgl64.Vec3{0.5, -0.5, 0.5}}},
	{pins.Matrix33, mgl64.Mat3FromRows(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, 5, 6}, mgl64.Vec3{7, 8, 9})},
	{pins.Matrix44, mgl64.Translate3D(1, 2, 3)},
}

func TestSetWidgetValueRoundTrip(t *testing.T) {
	for _, test := range roundTripTests {
		var rec recorder
		w, err := uit.NewInputWidget(test.dt, rec.set, nil)
		if err != nil {
			t.Fatalf("NewInputWidget(%v): %v", test.dt, err)
		}
		if w == nil {
			t.Fatalf("NewInputWidget(%v) returned nil widget", test.dt)
		}
		if err := w.SetWidgetValue(test.in); err != nil {
			t.Errorf("%v: SetWidgetValue: %v", test.dt, err)
			continue
		}
		if w.Value() != test.in {
			t.Errorf("%v: Value() = %s; expected %s", test.dt, utils.SDump(w.Value()), utils.SDump(test.in))
		}
		if len(rec.calls) != 0 {
			t.Errorf("%v: SetWidgetValue called setter %v", test.dt, rec.calls)
		}
	}
}

func TestUnknownDataType(t *testing.T) {
	w, err := uit.NewInputWidget(pins.Unknown, nil, nil)
	if w != nil {
		t.Errorf("expected nil widget, got %T", w)
	}
	if !errors.Is(err, uit.ErrNoInputWidget) {
		t.Errorf("error = %v; expected ErrNoInputWidget", err)
	}
	if w, _ := uit.NewInputWidget(pins.DataType(100), nil, nil); w != nil {
		t.Errorf("expected nil widget for out of range type, got %T", w)
	}
}

func TestFloatWidgetDisplayAndReset(t *testing.T) {
	var rec recorder
	w, err := uit.NewInputWidget(pins.Float, rec.set, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	w.SetWidgetValue(3.5)
	sb := w.Fields()[0].Control.(*uit.SpinBox)
	if sb.Text() != "3.500" {
		t.Errorf("Text = %q; expected %q", sb.Text(), "3.500")
	}
	w.ResetButton().Click()
	if v := rec.last(t); v != 0.0 {
		t.Errorf("reset passed %v; expected 0.0", v)
	}
	if sb.Text() != "0.000" {
		t.Errorf("after reset Text = %q", sb.Text())
	}
}

var resetTests = []struct {
	dt      pins.DataType
	def     any
	changed any
}{
	{pins.Float, 1.5, 9.0},
	{pins.Int, 7, 3},
	{pins.String, "default", "other"},
	{pins.Bool, true, false},
}

func TestScalarResetAlwaysCallsSetter(t *testing.T) {
	for _, test := range resetTests {
		var rec recorder
		w, err := uit.NewInputWidget(test.dt, rec.set, test.def)
		if err != nil {
			t.Fatal(err)
		}

		// already showing default still triggers setter
		w.Reset()
		if len(rec.calls) != 1 || rec.calls[0] != test.def {
			t.Errorf("%v: reset on default passed %v", test.dt, rec.calls)
		}

		w.SetWidgetValue(test.changed)
		w.Reset()
		if len(rec.calls) != 2 || rec.calls[1] != test.def {
			t.Errorf("%v: reset passed %v; expected %v", test.dt, rec.calls, test.def)
		}
		if w.Value() != test.def {
			t.Errorf("%v: after reset Value = %v", test.dt, w.Value())
		}
	}
}

func TestScalarUserEdits(t *testing.T) {
	var rec recorder

	fw, _ := uit.NewInputWidget(pins.Float, rec.set, nil)
	fw.Fields()[0].Control.(*uit.SpinBox).Edit(2.25)
	if v := rec.last(t); v != 2.25 {
		t.Errorf("float setter got %#v", v)
	}

	iw, _ := uit.NewInputWidget(pins.Int, rec.set, nil)
	iw.Fields()[0].Control.(*uit.IntSpinBox).StepBy(2)
	if v := rec.last(t); v != 2 {
		t.Errorf("int setter got %#v", v)
	}

	sw, _ := uit.NewInputWidget(pins.String, rec.set, nil)
	sw.Fields()[0].Control.(*uit.LineEdit).Type("abc")
	if v := rec.last(t); v != "abc" {
		t.Errorf("string setter got %#v", v)
	}

	bw, _ := uit.NewInputWidget(pins.Bool, rec.set, nil)
	bw.Fields()[0].Control.(*uit.CheckBox).Toggle()
	if v := rec.last(t); v != true {
		t.Errorf("bool setter got %#v", v)
	}
}

func TestVector3EditSingleField(t *testing.T) {
	var rec recorder
	w, err := uit.NewInputWidget(pins.FloatVector3, rec.set, mgl64.Vec3{})
	if err != nil {
		t.Fatal(err)
	}
	w.SetWidgetValue(mgl64.Vec3{1, 2, 3})
	w.(*uit.AggregateWidget).SpinBox("y").Edit(5)

	if len(rec.calls) != 1 {
		t.Fatalf("setter calls = %v", rec.calls)
	}
	if rec.calls[0] != (mgl64.Vec3{1, 5, 3}) {
		t.Errorf("setter got %v; expected (1, 5, 3)", rec.calls[0])
	}
}

func TestAggregateEditKeepsOtherFields(t *testing.T) {
	for _, test := range roundTripTests {
		if !test.dt.IsAggregate() {
			continue
		}
		var rec recorder
		w, _ := uit.NewInputWidget(test.dt, rec.set, nil)
		w.SetWidgetValue(test.in)
		before, _ := pins.Components(test.dt, test.in)

		for i, field := range w.Fields() {
			field.Control.(*uit.SpinBox).Edit(before[i] + 10)

			after, err := pins.Components(test.dt, rec.last(t))
			if err != nil {
				t.Fatalf("%v: setter value: %v", test.dt, err)
			}
			for j := range after {
				expected := before[j]
				if j == i {
					expected += 10
				}
				if math.Abs(after[j]-expected) > 1e-9 {
					t.Errorf("%v: editing %s changed field %d to %v; expected %v", test.dt, field.Name, j, after[j], expected)
				}
			}

			// undo so next field starts from the synced value
			w.SetWidgetValue(test.in)
		}
		if len(rec.calls) != len(before) {
			t.Errorf("%v: %d setter calls; expected %d", test.dt, len(rec.calls), len(before))
		}
	}
}

func TestQuaternionProducesQuat(t *testing.T) {
	var rec recorder
	w, _ := uit.NewInputWidget(pins.Quaternion, rec.set, nil)
	if w.Value() != mgl64.QuatIdent() {
		t.Errorf("default = %v; expected identity", w.Value())
	}
	w.(*uit.AggregateWidget).SpinBox("x").Edit(0.5)
	q, ok := rec.last(t).(mgl64.Quat)
	if !ok {
		t.Fatalf("setter got %T; expected mgl64.Quat", rec.last(t))
	}
	if q.X() != 0.5 || q.W != 1 {
		t.Errorf("quat = %v", q)
	}
}

func TestMatrixFieldsAndReset(t *testing.T) {
	var rec recorder
	w, _ := uit.NewInputWidget(pins.Matrix44, rec.set, nil)
	if w.Columns() != 4 || len(w.Fields()) != 16 {
		t.Fatalf("layout %d columns, %d fields", w.Columns(), len(w.Fields()))
	}
	agg := w.(*uit.AggregateWidget)
	agg.SpinBox("m24").Edit(8)
	m := rec.last(t).(mgl64.Mat4)
	if m.At(1, 3) != 8 {
		t.Errorf("m24 edit landed elsewhere: %v", m)
	}

	w.Reset()
	if len(rec.calls) != 2 || rec.calls[1] != mgl64.Ident4() {
		t.Errorf("reset calls = %v", rec.calls)
	}
	if agg.SpinBox("m24").Value() != 0 || agg.SpinBox("m44").Value() != 1 {
		t.Error("reset did not restore display")
	}
}

func TestExecWidget(t *testing.T) {
	var rec recorder
	w, err := uit.NewInputWidget(pins.Exec, rec.set, "ignored")
	if err != nil {
		t.Fatal(err)
	}
	if w.ResetButton() != nil {
		t.Error("exec widget must have no reset button")
	}
	if err := w.SetWidgetValue(123); err != nil || w.Value() != nil {
		t.Errorf("exec SetWidgetValue/Value = %v, %v", err, w.Value())
	}
	w.Fields()[0].Control.(*uit.PushButton).Click()
	if len(rec.calls) != 1 || rec.calls[0] != nil {
		t.Errorf("exec setter calls = %v", rec.calls)
	}
}

func TestFactoryPolicy(t *testing.T) {
	p := config.DefaultNumericPolicy()
	p.FloatMin, p.FloatMax, p.FloatDecimals = -1, 1, 1
	f, err := uit.NewFactory(p)
	if err != nil {
		t.Fatal(err)
	}
	w, _ := f.New(pins.FloatVector3, nil, nil)
	w.SetWidgetValue(mgl64.Vec3{5, -5, 0.26})
	if w.Value() != (mgl64.Vec3{1, -1, 0.3}) {
		t.Errorf("policy not applied: %v", w.Value())
	}

	p.FloatStep = 0
	if _, err := uit.NewFactory(p); err == nil {
		t.Error("expected invalid policy error")
	}
}

func TestZeroFactoryUsesDefaultPolicy(t *testing.T) {
	var f uit.Factory
	w, err := f.New(pins.Float, nil, 3.5)
	if err != nil {
		t.Fatal(err)
	}
	if w.Value() != 3.5 {
		t.Errorf("zero factory value = %v; expected 3.5", w.Value())
	}

	bad := uit.Factory{Policy: config.NumericPolicy{FloatMax: 1}}
	if w, err := bad.New(pins.Float, nil, nil); err == nil || w != nil {
		t.Errorf("invalid policy: widget %v, err %v", w, err)
	}
}

func TestBadValues(t *testing.T) {
	if _, err := uit.NewInputWidget(pins.Float, nil, "x"); err == nil {
		t.Error("expected error for bad default")
	}
	w, _ := uit.NewInputWidget(pins.Matrix33, nil, nil)
	if err := w.SetWidgetValue(mgl64.Vec3{}); err == nil {
		t.Error("expected error for mismatched aggregate")
	}
	bw, _ := uit.NewInputWidget(pins.Bool, nil, nil)
	if err := bw.SetWidgetValue(nil); err == nil {
		t.Error("expected error for nil bool")
	}
	if w.Value() != mgl64.Ident3() {
		t.Error("failed SetWidgetValue changed display")
	}
}
