package pins

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Coerce converts loosely typed value into the canonical go value of data type:
// float64, int, string, bool, mgl64.Vec3, mgl64.Vec4, mgl64.Quat, mgl64.Mat3, mgl64.Mat4 or nil for Exec.
// Scalars follow cast rules, so strings must parse ("false" is false, "yes" is an error).
// Nil is not a value of any scalar type.
func Coerce(dt DataType, v any) (any, error) {
	var (
		out any
		err error
	)
	if v == nil && dt.Known() && !dt.IsAggregate() && dt != Exec {
		return nil, errors.Errorf("Cannot convert nil to %v", dt)
	}
	switch dt {
	case Float:
		out, err = cast.ToFloat64E(v)
	case Int:
		out, err = cast.ToIntE(v)
	case String:
		out, err = cast.ToStringE(v)
	case Bool:
		out, err = cast.ToBoolE(v)
	case FloatVector3, FloatVector4, Quaternion, Matrix33, Matrix44:
		var comps []float64
		if comps, err = Components(dt, v); err == nil {
			out = FromComponents(dt, comps)
		}
	case Exec:
		return nil, nil
	default:
		return nil, errors.Errorf("Unknown data type %v", dt)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "Cannot convert %T to %v", v, dt)
	}
	return out, nil
}

// Components flattens aggregate value into its fields in FieldNames order.
// Matrices are flattened row by row (m11, m12, ..., m21, ...) regardless of storage order.
// Plain arrays and slices are expected in the same order.
func Components(dt DataType, v any) ([]float64, error) {
	n := len(dt.FieldNames())
	if n == 0 {
		return nil, errors.Errorf("Data type %v is not an aggregate", dt)
	}

	var comps []float64
	switch t := v.(type) {
	case mgl64.Vec3:
		comps = t[:]
	case mgl32.Vec3:
		comps = float32to64(t[:])
	case mgl64.Vec4:
		comps = t[:]
	case mgl32.Vec4:
		comps = float32to64(t[:])
	case mgl64.Quat:
		comps = []float64{t.X(), t.Y(), t.Z(), t.W}
	case mgl32.Quat:
		comps = []float64{float64(t.X()), float64(t.Y()), float64(t.Z()), float64(t.W)}
	case mgl64.Mat3:
		comps = matrixRows64(3, t.At)
	case mgl32.Mat3:
		comps = matrixRows64(3, func(r, c int) float64 { return float64(t.At(r, c)) })
	case mgl64.Mat4:
		comps = matrixRows64(4, t.At)
	case mgl32.Mat4:
		comps = matrixRows64(4, func(r, c int) float64 { return float64(t.At(r, c)) })
	case [3]float64:
		comps = t[:]
	case [4]float64:
		comps = t[:]
	case []float64:
		comps = t
	case []float32:
		comps = float32to64(t)
	default:
		return nil, errors.Errorf("Unsupported %v value type %T", dt, v)
	}

	if len(comps) != n {
		return nil, errors.Errorf("%v expects %d fields, got %d", dt, n, len(comps))
	}
	if !sameShape(dt, v) {
		return nil, errors.Errorf("Value of type %T cannot hold %v", v, dt)
	}

	out := make([]float64, n)
	copy(out, comps)
	return out, nil
}

// FromComponents builds aggregate value from fields in FieldNames order.
// Panics if comps length mismatches data type, caller is expected to pass result of Components.
func FromComponents(dt DataType, comps []float64) any {
	if len(comps) != len(dt.FieldNames()) {
		panic(errors.Errorf("%v expects %d fields, got %d", dt, len(dt.FieldNames()), len(comps)))
	}
	switch dt {
	case FloatVector3:
		return mgl64.Vec3{comps[0], comps[1], comps[2]}
	case FloatVector4:
		return mgl64.Vec4{comps[0], comps[1], comps[2], comps[3]}
	case Quaternion:
		return mgl64.Quat{W: comps[3], V: mgl64.Vec3{comps[0], comps[1], comps[2]}}
	case Matrix33:
		var m mgl64.Mat3
		for i, v := range comps {
			m.Set(i/3, i%3, v)
		}
		return m
	case Matrix44:
		var m mgl64.Mat4
		for i, v := range comps {
			m.Set(i/4, i%4, v)
		}
		return m
	}
	panic(errors.Errorf("Data type %v is not an aggregate", dt))
}

// sameShape rejects typed values of a different aggregate kind with the same field count,
// for example matrix passed where quaternion expected
func sameShape(dt DataType, v any) bool {
	switch v.(type) {
	case mgl64.Quat, mgl32.Quat:
		return dt == Quaternion
	case mgl64.Mat3, mgl32.Mat3:
		return dt == Matrix33
	case mgl64.Mat4, mgl32.Mat4:
		return dt == Matrix44
	case mgl64.Vec3, mgl32.Vec3:
		return dt == FloatVector3
	case mgl64.Vec4, mgl32.Vec4:
		return dt == FloatVector4 || dt == Quaternion
	}
	return true
}

func matrixRows64(n int, at func(row, col int) float64) []float64 {
	out := make([]float64, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			out = append(out, at(row, col))
		}
	}
	return out
}

func float32to64(in []float32) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}
