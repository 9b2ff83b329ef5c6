package values

import (
	"strconv"
	"strings"
)

type ValueType uint32

const ( // Cross-reference with typeNames below.
	UNDEFINED_VALUE ValueType = iota // For debugging purposes, it is useful to have the zero value something it should never actually be.
	UNIT
	INT
	FLOAT
	BOOL
	STRING
	LIST
	FUNC
)

var typeNames = []string{
	UNDEFINED_VALUE: "Undefined",
	UNIT:            "Unit",
	INT:             "Int",
	FLOAT:           "Float",
	BOOL:            "Bool",
	STRING:          "Str",
	LIST:            "List",
	FUNC:            "Func",
}

func (t ValueType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

type Value struct {
	T ValueType
	V any
}

// The name of the value's type, as shown in diagnostics.
func (v Value) TypeName() string {
	return v.T.String()
}

func (v Value) String() string {
	switch v.T {
	case UNIT:
		return "()"
	case INT:
		return strconv.Itoa(v.V.(int))
	case FLOAT:
		return strconv.FormatFloat(v.V.(float64), 'g', -1, 64)
	case BOOL:
		return strconv.FormatBool(v.V.(bool))
	case STRING:
		return strconv.Quote(v.V.(string))
	case LIST:
		items := v.V.([]Value)
		strs := make([]string, len(items))
		for i, item := range items {
			strs[i] = item.String()
		}
		return "[" + strings.Join(strs, ", ") + "]"
	case FUNC:
		return "<func " + v.V.(string) + ">"
	}
	return "<" + v.T.String() + ">"
}

func Int(i int) Value        { return Value{T: INT, V: i} }
func Float(f float64) Value  { return Value{T: FLOAT, V: f} }
func Bool(b bool) Value      { return Value{T: BOOL, V: b} }
func Str(s string) Value     { return Value{T: STRING, V: s} }
func List(vs ...Value) Value { return Value{T: LIST, V: vs} }
func Func(name string) Value { return Value{T: FUNC, V: name} }

var (
	UNIT_OBJ = Value{T: UNIT}
	FALSE    = Bool(false)
	TRUE     = Bool(true)
)

// Returns a representative value of the given type. Type mismatches are reported with one of these
// standing in for the type that was required.
func Zero(t ValueType) Value {
	switch t {
	case UNIT:
		return UNIT_OBJ
	case INT:
		return Int(0)
	case FLOAT:
		return Float(0)
	case BOOL:
		return FALSE
	case STRING:
		return Str("")
	case LIST:
		return List()
	case FUNC:
		return Func("")
	}
	return Value{T: t}
}
