package pins

import (
	"github.com/pkg/errors"
)

// Pin is a typed input slot on a graph node. It only keeps the value and notifies listeners,
// the graph itself lives elsewhere.
type Pin struct {
	Name string
	Type DataType

	value        any
	defaultValue any

	onChange      map[any]func(value any)
	onChangeOrder []any
}

// NewPin creates pin with default value coerced to data type, nil means data type default
func NewPin(name string, dt DataType, defaultValue any) (*Pin, error) {
	if !dt.Known() {
		return nil, errors.Errorf("Pin %q: unknown data type %v", name, dt)
	}
	if defaultValue == nil {
		defaultValue = dt.DefaultValue()
	}
	def, err := Coerce(dt, defaultValue)
	if err != nil {
		return nil, errors.Wrapf(err, "Pin %q default", name)
	}
	return &Pin{
		Name:         name,
		Type:         dt,
		value:        def,
		defaultValue: def,
		onChange:     make(map[any]func(any)),
	}, nil
}

func (p *Pin) Data() any { return p.value }

func (p *Pin) Default() any { return p.defaultValue }

// SetData stores coerced value and notifies listeners, listeners are called even if value is unchanged
func (p *Pin) SetData(v any) error {
	if p.Type == Exec {
		return errors.Errorf("Pin %q: exec pins carry no data", p.Name)
	}
	coerced, err := Coerce(p.Type, v)
	if err != nil {
		return errors.Wrapf(err, "Pin %q", p.Name)
	}
	p.value = coerced
	p.notify(coerced)
	return nil
}

// Call triggers exec pin listeners
func (p *Pin) Call() error {
	if p.Type != Exec {
		return errors.Errorf("Pin %q: %v pin cannot be called", p.Name, p.Type)
	}
	p.notify(nil)
	return nil
}

// ConnectOnChange registers fn under key, registering the same key again replaces fn
func (p *Pin) ConnectOnChange(key any, fn func(value any)) {
	if p.onChange == nil {
		p.onChange = make(map[any]func(any))
	}
	if _, exists := p.onChange[key]; !exists {
		p.onChangeOrder = append(p.onChangeOrder, key)
	}
	p.onChange[key] = fn
}

func (p *Pin) DisconnectOnChange(key any) {
	if _, exists := p.onChange[key]; !exists {
		return
	}
	delete(p.onChange, key)
	for i, k := range p.onChangeOrder {
		if k == key {
			p.onChangeOrder = append(p.onChangeOrder[:i], p.onChangeOrder[i+1:]...)
			break
		}
	}
}

func (p *Pin) notify(value any) {
	// listener may disconnect itself while notified
	keys := append([]any(nil), p.onChangeOrder...)
	for _, key := range keys {
		if fn, ok := p.onChange[key]; ok {
			fn(value)
		}
	}
}
