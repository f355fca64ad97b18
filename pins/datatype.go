package pins

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

type DataType int

const (
	Unknown DataType = iota
	Float
	Int
	String
	Bool
	FloatVector3
	FloatVector4
	Quaternion
	Matrix33
	Matrix44
	Exec
)

var dataTypeNames = map[DataType]string{
	Float:        "Float",
	Int:          "Int",
	String:       "String",
	Bool:         "Bool",
	FloatVector3: "FloatVector3",
	FloatVector4: "FloatVector4",
	Quaternion:   "Quaternion",
	Matrix33:     "Matrix33",
	Matrix44:     "Matrix44",
	Exec:         "Exec",
}

// DataTypes lists every known data type in declaration order
var DataTypes = []DataType{Float, Int, String, Bool, FloatVector3, FloatVector4, Quaternion, Matrix33, Matrix44, Exec}

func (dt DataType) String() string {
	if name, ok := dataTypeNames[dt]; ok {
		return name
	}
	return "Unknown"
}

func (dt DataType) Known() bool {
	_, ok := dataTypeNames[dt]
	return ok
}

func ParseDataType(name string) (DataType, error) {
	for dt, dtName := range dataTypeNames {
		if dtName == name {
			return dt, nil
		}
	}
	return Unknown, errors.Errorf("Unknown data type %q", name)
}

// MarshalText and UnmarshalText let data types appear by name in yaml configs
func (dt DataType) MarshalText() ([]byte, error) {
	if !dt.Known() {
		return nil, errors.Errorf("Unknown data type %d", int(dt))
	}
	return []byte(dt.String()), nil
}

func (dt *DataType) UnmarshalText(text []byte) error {
	parsed, err := ParseDataType(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// FieldNames returns names of numeric fields for aggregate types and nil for scalars
func (dt DataType) FieldNames() []string {
	switch dt {
	case FloatVector3:
		return []string{"x", "y", "z"}
	case FloatVector4, Quaternion:
		return []string{"x", "y", "z", "w"}
	case Matrix33:
		return matrixFieldNames(3)
	case Matrix44:
		return matrixFieldNames(4)
	}
	return nil
}

func (dt DataType) IsAggregate() bool {
	return dt.FieldNames() != nil
}

func matrixFieldNames(n int) []string {
	names := make([]string, 0, n*n)
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			names = append(names, "m"+string(rune('0'+row))+string(rune('0'+col)))
		}
	}
	return names
}

// DefaultValue is used when a pin or widget is created without an explicit default
func (dt DataType) DefaultValue() any {
	switch dt {
	case Float:
		return 0.0
	case Int:
		return 0
	case String:
		return ""
	case Bool:
		return false
	case FloatVector3:
		return mgl64.Vec3{}
	case FloatVector4:
		return mgl64.Vec4{}
	case Quaternion:
		return mgl64.QuatIdent()
	case Matrix33:
		return mgl64.Ident3()
	case Matrix44:
		return mgl64.Ident4()
	}
	return nil
}
