package uit

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rocksolutions-io/PyFlow/config"
)

// Inverse logic, so by default we always dirty.
// Controls mark themselves dirty on every value change, backends poll NeedUpdate
// to know when their own copy of the value must be refreshed.
type Dirty struct {
	notDirty bool
}

func (d *Dirty) Set() {
	d.notDirty = false
}

func (d *Dirty) NeedUpdate() (isNeed bool) {
	isNeed = !d.notDirty
	if isNeed {
		d.notDirty = true
	}
	return
}

// Control is one of *SpinBox, *IntSpinBox, *LineEdit, *CheckBox or *PushButton
type Control interface {
	NeedUpdate() bool
}

// SpinBox holds a float value limited by range and rounded to decimals.
// SetValue never fires OnChange, user entry points (Edit, EditText, StepBy) fire it when value changes.
type SpinBox struct {
	Dirty

	min, max float64
	step     float64
	decimals int
	value    float64

	OnChange func(value float64)
}

func NewSpinBox(p config.NumericPolicy) *SpinBox {
	sb := &SpinBox{
		min:      p.FloatMin,
		max:      p.FloatMax,
		step:     p.FloatStep,
		decimals: p.FloatDecimals,
	}
	sb.value = sb.fix(0)
	return sb
}

func (sb *SpinBox) Min() float64        { return sb.min }
func (sb *SpinBox) Max() float64        { return sb.max }
func (sb *SpinBox) SingleStep() float64 { return sb.step }
func (sb *SpinBox) Decimals() int       { return sb.decimals }
func (sb *SpinBox) Value() float64      { return sb.value }

func (sb *SpinBox) Text() string {
	return strconv.FormatFloat(sb.value, 'f', sb.decimals, 64)
}

// Format is printf style format of displayed value
func (sb *SpinBox) Format() string {
	return "%." + strconv.Itoa(sb.decimals) + "f"
}

func (sb *SpinBox) SetValue(v float64) {
	sb.value = sb.fix(v)
	sb.Set()
}

func (sb *SpinBox) Edit(v float64) bool {
	return sb.edit(v, false)
}

func (sb *SpinBox) EditText(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.Wrapf(err, "Invalid number %q", s)
	}
	sb.edit(v, false)
	return nil
}

func (sb *SpinBox) StepBy(steps int) {
	sb.edit(sb.value+float64(steps)*sb.step, false)
}

func (sb *SpinBox) edit(v float64, force bool) bool {
	fixed := sb.fix(v)
	if fixed == sb.value && !force {
		return false
	}
	sb.value = fixed
	sb.Set()
	if sb.OnChange != nil {
		sb.OnChange(fixed)
	}
	return true
}

func (sb *SpinBox) fix(v float64) float64 {
	if math.IsNaN(v) {
		return sb.value
	}
	if v < sb.min {
		v = sb.min
	} else if v > sb.max {
		v = sb.max
	}
	scale := math.Pow10(sb.decimals)
	if rounded := math.Round(v*scale) / scale; !math.IsInf(rounded, 0) && !math.IsNaN(rounded) {
		v = rounded
	}
	// rounding may step out of range by half of last digit
	return math.Max(sb.min, math.Min(sb.max, v))
}

// IntSpinBox is integer counterpart of SpinBox
type IntSpinBox struct {
	Dirty

	min, max int
	step     int
	value    int

	OnChange func(value int)
}

func NewIntSpinBox(p config.NumericPolicy) *IntSpinBox {
	sb := &IntSpinBox{
		min:  p.IntMin,
		max:  p.IntMax,
		step: p.IntStep,
	}
	sb.value = sb.fix(0)
	return sb
}

func (sb *IntSpinBox) Min() int        { return sb.min }
func (sb *IntSpinBox) Max() int        { return sb.max }
func (sb *IntSpinBox) SingleStep() int { return sb.step }
func (sb *IntSpinBox) Value() int      { return sb.value }
func (sb *IntSpinBox) Text() string    { return strconv.Itoa(sb.value) }

func (sb *IntSpinBox) SetValue(v int) {
	sb.value = sb.fix(v)
	sb.Set()
}

func (sb *IntSpinBox) Edit(v int) bool {
	return sb.edit(v, false)
}

func (sb *IntSpinBox) EditText(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.Wrapf(err, "Invalid integer %q", s)
	}
	sb.edit(v, false)
	return nil
}

func (sb *IntSpinBox) StepBy(steps int) {
	delta := int64(steps) * int64(sb.step)
	target := int64(sb.value) + delta
	if target < int64(sb.min) {
		target = int64(sb.min)
	} else if target > int64(sb.max) {
		target = int64(sb.max)
	}
	sb.edit(int(target), false)
}

func (sb *IntSpinBox) edit(v int, force bool) bool {
	fixed := sb.fix(v)
	if fixed == sb.value && !force {
		return false
	}
	sb.value = fixed
	sb.Set()
	if sb.OnChange != nil {
		sb.OnChange(fixed)
	}
	return true
}

func (sb *IntSpinBox) fix(v int) int {
	if v < sb.min {
		return sb.min
	}
	if v > sb.max {
		return sb.max
	}
	return v
}

type LineEdit struct {
	Dirty

	text string

	OnChange func(text string)
}

func (le *LineEdit) Text() string { return le.text }

func (le *LineEdit) SetText(s string) {
	le.text = s
	le.Set()
}

// Type replaces text as if user typed it
func (le *LineEdit) Type(s string) bool {
	return le.edit(s, false)
}

func (le *LineEdit) edit(s string, force bool) bool {
	if s == le.text && !force {
		return false
	}
	le.text = s
	le.Set()
	if le.OnChange != nil {
		le.OnChange(s)
	}
	return true
}

type CheckBox struct {
	Dirty

	Label   string
	checked bool

	OnChange func(checked bool)
}

func (cb *CheckBox) Checked() bool { return cb.checked }

func (cb *CheckBox) SetChecked(b bool) {
	cb.checked = b
	cb.Set()
}

// Click sets state as user input does
func (cb *CheckBox) Click(b bool) bool {
	return cb.edit(b, false)
}

func (cb *CheckBox) Toggle() {
	cb.edit(!cb.checked, false)
}

func (cb *CheckBox) edit(b bool, force bool) bool {
	if b == cb.checked && !force {
		return false
	}
	cb.checked = b
	cb.Set()
	if cb.OnChange != nil {
		cb.OnChange(b)
	}
	return true
}

type PushButton struct {
	Dirty

	Label   string
	OnClick func()
}

func (pb *PushButton) Click() {
	if pb.OnClick != nil {
		pb.OnClick()
	}
}
