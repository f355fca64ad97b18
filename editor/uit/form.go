package uit

import (
	"log"

	"github.com/pkg/errors"

	"github.com/rocksolutions-io/PyFlow/pins"
)

// Binding keeps widget and pin in sync: user edits go to pin.SetData,
// pin changes are pushed to widget without calling setter back
type Binding struct {
	Pin    *pins.Pin
	Widget Widget
}

func (f *Factory) Bind(p *pins.Pin) (*Binding, error) {
	b := &Binding{Pin: p}

	setter := func(v any) {
		if err := p.SetData(v); err != nil {
			log.Printf("[uit] pin %q: %v", p.Name, err)
		}
	}
	if p.Type == pins.Exec {
		setter = func(any) {
			if err := p.Call(); err != nil {
				log.Printf("[uit] pin %q: %v", p.Name, err)
			}
		}
	}

	w, err := f.New(p.Type, setter, p.Default())
	if err != nil {
		return nil, errors.Wrapf(err, "Pin %q", p.Name)
	}
	b.Widget = w

	if p.Type != pins.Exec {
		if err := w.SetWidgetValue(p.Data()); err != nil {
			return nil, errors.Wrapf(err, "Pin %q", p.Name)
		}
		p.ConnectOnChange(b, func(v any) {
			if err := w.SetWidgetValue(v); err != nil {
				log.Printf("[uit] pin %q: %v", p.Name, err)
			}
		})
	}
	return b, nil
}

// Close disconnects widget from pin, widget must not be used afterwards
func (b *Binding) Close() {
	b.Pin.DisconnectOnChange(b)
}

type FormRow struct {
	Label   string
	Binding *Binding
}

// Form is the editor panel of a node: one labelled row per pin that has input widget
type Form struct {
	Rows []FormRow
}

// NewForm binds pins in order, pins without input widget are skipped
func (f *Factory) NewForm(ps ...*pins.Pin) (*Form, error) {
	form := &Form{}
	for _, p := range ps {
		b, err := f.Bind(p)
		if errors.Is(err, ErrNoInputWidget) {
			log.Printf("[uit] pin %q has no input widget, skipping", p.Name)
			continue
		}
		if err != nil {
			form.Close()
			return nil, err
		}
		form.Rows = append(form.Rows, FormRow{Label: p.Name, Binding: b})
	}
	return form, nil
}

func (f *Form) Close() {
	for _, row := range f.Rows {
		row.Binding.Close()
	}
	f.Rows = nil
}
