package uit

import (
	"github.com/rocksolutions-io/PyFlow/config"
	"github.com/rocksolutions-io/PyFlow/pins"
)

// ScalarWidget wraps exactly one control plus reset button.
// show displays coerced value silently, read returns displayed value,
// emit displays value through user path of control so setter is always triggered.
type ScalarWidget struct {
	base
	control Control

	show func(v any)
	read func() any
	emit func(v any)
}

func (w *ScalarWidget) SetWidgetValue(value any) error {
	v, err := pins.Coerce(w.dataType, value)
	if err != nil {
		return err
	}
	w.show(v)
	return nil
}

func (w *ScalarWidget) Value() any { return w.read() }

func (w *ScalarWidget) Reset() { w.emit(w.defaultValue) }

func (w *ScalarWidget) Fields() []Field { return []Field{{Control: w.control}} }

func (w *ScalarWidget) Columns() int { return 1 }

// Control returns underlying control
func (w *ScalarWidget) Control() Control { return w.control }

func newScalar(dt pins.DataType, setter Setter, defaultValue any, control Control) *ScalarWidget {
	w := &ScalarWidget{
		base:    newBase(dt, setter, defaultValue),
		control: control,
	}
	w.withReset(w.Reset)
	return w
}

func newFloatWidget(setter Setter, defaultValue any, p config.NumericPolicy) *ScalarWidget {
	sb := NewSpinBox(p)
	w := newScalar(pins.Float, setter, defaultValue, sb)
	w.show = func(v any) { sb.SetValue(v.(float64)) }
	w.read = func() any { return sb.Value() }
	w.emit = func(v any) { sb.edit(v.(float64), true) }
	sb.OnChange = func(v float64) { w.setter(v) }
	w.show(defaultValue)
	return w
}

func newIntWidget(setter Setter, defaultValue any, p config.NumericPolicy) *ScalarWidget {
	sb := NewIntSpinBox(p)
	w := newScalar(pins.Int, setter, defaultValue, sb)
	w.show = func(v any) { sb.SetValue(v.(int)) }
	w.read = func() any { return sb.Value() }
	w.emit = func(v any) { sb.edit(v.(int), true) }
	sb.OnChange = func(v int) { w.setter(v) }
	w.show(defaultValue)
	return w
}

func newStringWidget(setter Setter, defaultValue any) *ScalarWidget {
	le := &LineEdit{}
	w := newScalar(pins.String, setter, defaultValue, le)
	w.show = func(v any) { le.SetText(v.(string)) }
	w.read = func() any { return le.Text() }
	w.emit = func(v any) { le.edit(v.(string), true) }
	le.OnChange = func(s string) { w.setter(s) }
	w.show(defaultValue)
	return w
}

func newBoolWidget(setter Setter, defaultValue any) *ScalarWidget {
	cb := &CheckBox{}
	w := newScalar(pins.Bool, setter, defaultValue, cb)
	w.show = func(v any) { cb.SetChecked(v.(bool)) }
	w.read = func() any { return cb.Checked() }
	w.emit = func(v any) { cb.edit(v.(bool), true) }
	cb.OnChange = func(b bool) { w.setter(b) }
	w.show(defaultValue)
	return w
}
