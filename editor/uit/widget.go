package uit

import (
	"github.com/google/uuid"

	"github.com/rocksolutions-io/PyFlow/pins"
)

// Setter receives new value on every user edit and on reset. Exec widgets pass nil.
type Setter func(value any)

// Widget is an editor bound to a single typed value
type Widget interface {
	// ID is unique per widget, backends use it to scope their control ids
	ID() uuid.UUID
	DataType() pins.DataType
	Default() any

	// SetWidgetValue shows value without calling setter
	SetWidgetValue(value any) error
	// Value reads back what controls currently show
	Value() any
	// Reset shows default and passes it to setter
	Reset()

	// Fields are laid out in rows of Columns controls
	Fields() []Field
	Columns() int
	// ResetButton is nil for widgets without reset affordance
	ResetButton() *PushButton
}

// Field is a named sub-control, scalar widgets have single unnamed field
type Field struct {
	Name    string
	Control Control
}

type base struct {
	id           uuid.UUID
	dataType     pins.DataType
	setter       Setter
	defaultValue any
	reset        *PushButton
}

func newBase(dt pins.DataType, setter Setter, defaultValue any) base {
	if setter == nil {
		setter = func(any) {}
	}
	return base{
		id:           uuid.New(),
		dataType:     dt,
		setter:       setter,
		defaultValue: defaultValue,
	}
}

// withReset attaches reset button calling onReset
func (b *base) withReset(onReset func()) {
	b.reset = &PushButton{Label: "reset", OnClick: onReset}
}

func (b *base) ID() uuid.UUID            { return b.id }
func (b *base) DataType() pins.DataType  { return b.dataType }
func (b *base) Default() any             { return b.defaultValue }
func (b *base) ResetButton() *PushButton { return b.reset }
