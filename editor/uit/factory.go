package uit

import (
	"log"

	"github.com/pkg/errors"

	"github.com/rocksolutions-io/PyFlow/config"
	"github.com/rocksolutions-io/PyFlow/pins"
)

// ErrNoInputWidget means data type has no editor, callers should treat it as non fatal
var ErrNoInputWidget = errors.New("no input widget for data type")

// Factory creates input widgets with numeric policy shared by all their spin boxes.
// Zero Policy means config.DefaultNumericPolicy.
type Factory struct {
	Policy config.NumericPolicy
}

func NewFactory(policy config.NumericPolicy) (*Factory, error) {
	if err := policy.Validate(); err != nil {
		return nil, errors.Wrap(err, "Numeric policy")
	}
	return &Factory{Policy: policy}, nil
}

var defaultFactory = Factory{Policy: config.DefaultNumericPolicy()}

// NewInputWidget creates widget using default numeric policy
func NewInputWidget(dt pins.DataType, setter Setter, defaultValue any) (Widget, error) {
	return defaultFactory.New(dt, setter, defaultValue)
}

// New returns nil widget and error wrapping ErrNoInputWidget for unsupported data type.
// Nil defaultValue means default of data type.
func (f *Factory) New(dt pins.DataType, setter Setter, defaultValue any) (Widget, error) {
	if dt == pins.Exec {
		return newExecWidget(setter), nil
	}
	if !dt.Known() {
		return nil, noInputWidget(dt)
	}
	policy, err := f.policy()
	if err != nil {
		return nil, err
	}

	if defaultValue == nil {
		defaultValue = dt.DefaultValue()
	}
	def, err := pins.Coerce(dt, defaultValue)
	if err != nil {
		return nil, errors.Wrap(err, "Default value")
	}

	switch dt {
	case pins.Float:
		return newFloatWidget(setter, def, policy), nil
	case pins.Int:
		return newIntWidget(setter, def, policy), nil
	case pins.String:
		return newStringWidget(setter, def), nil
	case pins.Bool:
		return newBoolWidget(setter, def), nil
	case pins.FloatVector3, pins.FloatVector4, pins.Quaternion:
		return newVectorWidget(dt, setter, def, policy), nil
	case pins.Matrix33:
		return newMatrixWidget(dt, setter, def, policy, 3), nil
	case pins.Matrix44:
		return newMatrixWidget(dt, setter, def, policy, 4), nil
	}
	return nil, noInputWidget(dt)
}

func (f *Factory) policy() (config.NumericPolicy, error) {
	if f.Policy == (config.NumericPolicy{}) {
		return config.DefaultNumericPolicy(), nil
	}
	if err := f.Policy.Validate(); err != nil {
		return f.Policy, errors.Wrap(err, "Numeric policy")
	}
	return f.Policy, nil
}

func noInputWidget(dt pins.DataType) error {
	log.Printf("[uit] no input widget for data type %v", dt)
	return errors.Wrapf(ErrNoInputWidget, "%v", dt)
}
