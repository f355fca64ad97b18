package config

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFloatMin      = -math.MaxInt32
	DefaultFloatMax      = math.MaxInt32
	DefaultFloatDecimals = 3
	DefaultFloatStep     = 0.01

	DefaultIntMin  = math.MinInt32
	DefaultIntMax  = math.MaxInt32
	DefaultIntStep = 1

	maxDecimals = 15
)

// NumericPolicy is shared by every numeric sub-control a widget factory creates
type NumericPolicy struct {
	FloatMin      float64 `yaml:"float_min"`
	FloatMax      float64 `yaml:"float_max"`
	FloatDecimals int     `yaml:"float_decimals"`
	FloatStep     float64 `yaml:"float_step"`

	IntMin  int `yaml:"int_min"`
	IntMax  int `yaml:"int_max"`
	IntStep int `yaml:"int_step"`
}

func DefaultNumericPolicy() NumericPolicy {
	return NumericPolicy{
		FloatMin:      DefaultFloatMin,
		FloatMax:      DefaultFloatMax,
		FloatDecimals: DefaultFloatDecimals,
		FloatStep:     DefaultFloatStep,
		IntMin:        DefaultIntMin,
		IntMax:        DefaultIntMax,
		IntStep:       DefaultIntStep,
	}
}

func (p NumericPolicy) Validate() error {
	if math.IsNaN(p.FloatMin) || math.IsNaN(p.FloatMax) || !(p.FloatMin < p.FloatMax) {
		return errors.Errorf("Invalid float range [%v, %v]", p.FloatMin, p.FloatMax)
	}
	if p.FloatDecimals < 0 || p.FloatDecimals > maxDecimals {
		return errors.Errorf("Float decimals %d out of range [0, %d]", p.FloatDecimals, maxDecimals)
	}
	if !(p.FloatStep > 0) {
		return errors.Errorf("Float step must be positive, got %v", p.FloatStep)
	}
	if p.IntMin >= p.IntMax {
		return errors.Errorf("Invalid int range [%d, %d]", p.IntMin, p.IntMax)
	}
	if p.IntStep <= 0 {
		return errors.Errorf("Int step must be positive, got %d", p.IntStep)
	}
	return nil
}

// LoadNumericPolicy decodes yaml on top of the defaults, so missing keys keep default values
func LoadNumericPolicy(r io.Reader) (NumericPolicy, error) {
	p := DefaultNumericPolicy()
	if err := yaml.NewDecoder(r).Decode(&p); err != nil && err != io.EOF {
		return NumericPolicy{}, errors.Wrap(err, "Unmarshaling error")
	}
	if err := p.Validate(); err != nil {
		return NumericPolicy{}, err
	}
	return p, nil
}

func LoadNumericPolicyFile(path string) (NumericPolicy, error) {
	f, err := os.Open(path)
	if err != nil {
		return NumericPolicy{}, errors.Wrapf(err, "Cannot read file %s", path)
	}
	defer f.Close()

	p, err := LoadNumericPolicy(f)
	if err != nil {
		return NumericPolicy{}, errors.Wrapf(err, "Policy file %s", path)
	}
	return p, nil
}
