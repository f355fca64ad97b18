package uit

import (
	"github.com/rocksolutions-io/PyFlow/config"
	"github.com/rocksolutions-io/PyFlow/pins"
)

// AggregateWidget edits fixed shape numeric value with one spin box per field.
// Editing any field rebuilds whole value from all spin boxes and passes it to setter.
type AggregateWidget struct {
	base

	names   []string
	boxes   []*SpinBox
	columns int

	// split flattens value into fields, build assembles value back
	split func(v any) ([]float64, error)
	build func(fields []float64) any
}

func newAggregate(dt pins.DataType, setter Setter, defaultValue any, p config.NumericPolicy, columns int) *AggregateWidget {
	w := &AggregateWidget{
		base:    newBase(dt, setter, defaultValue),
		names:   dt.FieldNames(),
		columns: columns,
		split:   func(v any) ([]float64, error) { return pins.Components(dt, v) },
		build:   func(fields []float64) any { return pins.FromComponents(dt, fields) },
	}
	w.boxes = make([]*SpinBox, len(w.names))
	for i := range w.boxes {
		i := i
		w.boxes[i] = NewSpinBox(p)
		w.boxes[i].OnChange = func(v float64) { w.fieldChanged(i, v) }
	}
	w.withReset(w.Reset)

	if err := w.SetWidgetValue(defaultValue); err != nil {
		panic(err)
	}
	return w
}

func newVectorWidget(dt pins.DataType, setter Setter, defaultValue any, p config.NumericPolicy) *AggregateWidget {
	return newAggregate(dt, setter, defaultValue, p, len(dt.FieldNames()))
}

func newMatrixWidget(dt pins.DataType, setter Setter, defaultValue any, p config.NumericPolicy, size int) *AggregateWidget {
	return newAggregate(dt, setter, defaultValue, p, size)
}

func (w *AggregateWidget) fieldChanged(i int, v float64) {
	fields := w.fields()
	fields[i] = v
	w.setter(w.build(fields))
}

func (w *AggregateWidget) fields() []float64 {
	fields := make([]float64, len(w.boxes))
	for i, sb := range w.boxes {
		fields[i] = sb.Value()
	}
	return fields
}

func (w *AggregateWidget) SetWidgetValue(value any) error {
	fields, err := w.split(value)
	if err != nil {
		return err
	}
	for i, sb := range w.boxes {
		sb.SetValue(fields[i])
	}
	return nil
}

func (w *AggregateWidget) Value() any { return w.build(w.fields()) }

// Reset pushes default into every field and calls setter once with whole value
func (w *AggregateWidget) Reset() {
	if err := w.SetWidgetValue(w.defaultValue); err != nil {
		panic(err)
	}
	w.setter(w.Value())
}

func (w *AggregateWidget) Fields() []Field {
	fields := make([]Field, len(w.boxes))
	for i, sb := range w.boxes {
		fields[i] = Field{Name: w.names[i], Control: sb}
	}
	return fields
}

func (w *AggregateWidget) Columns() int { return w.columns }

// SpinBox returns sub-control of named field or nil
func (w *AggregateWidget) SpinBox(name string) *SpinBox {
	for i, n := range w.names {
		if n == name {
			return w.boxes[i]
		}
	}
	return nil
}
