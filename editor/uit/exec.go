package uit

import (
	"github.com/rocksolutions-io/PyFlow/pins"
)

// ExecWidget is a single command button, it has no value and no reset button
type ExecWidget struct {
	base
	button *PushButton
}

func newExecWidget(setter Setter) *ExecWidget {
	w := &ExecWidget{base: newBase(pins.Exec, setter, nil)}
	w.button = &PushButton{Label: "execute", OnClick: func() { w.setter(nil) }}
	return w
}

func (w *ExecWidget) SetWidgetValue(any) error { return nil }
func (w *ExecWidget) Value() any               { return nil }
func (w *ExecWidget) Reset()                   {}
func (w *ExecWidget) Fields() []Field          { return []Field{{Control: w.button}} }
func (w *ExecWidget) Columns() int             { return 1 }

func (w *ExecWidget) Button() *PushButton { return w.button }
