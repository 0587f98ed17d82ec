// Package table defines the contract between Sazgar's metric table functions
// and a pull-based host query engine: a static column schema per function,
// named bind-time arguments, and a bind/init/next row cursor protocol driven
// by the Executor state machine.
package table

import "fmt"

// Type identifies the semantic type of a column value.
type Type int

const (
	TypeVarchar Type = iota
	TypeBool
	TypeInt32
	TypeInt64
	TypeUint32
	TypeUint64
	TypeFloat32
	TypeFloat64
)

var typeNames = [...]string{
	TypeVarchar: "VARCHAR",
	TypeBool:    "BOOLEAN",
	TypeInt32:   "INTEGER",
	TypeInt64:   "BIGINT",
	TypeUint32:  "UINTEGER",
	TypeUint64:  "UBIGINT",
	TypeFloat32: "FLOAT",
	TypeFloat64: "DOUBLE",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// matches reports whether v is an acceptable dynamic value for t.
// Nil is accepted for any type (rendered as SQL NULL downstream).
func (t Type) matches(v any) bool {
	if v == nil {
		return true
	}
	switch t {
	case TypeVarchar:
		_, ok := v.(string)
		return ok
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeInt32:
		_, ok := v.(int32)
		return ok
	case TypeInt64:
		_, ok := v.(int64)
		return ok
	case TypeUint32:
		_, ok := v.(uint32)
		return ok
	case TypeUint64:
		_, ok := v.(uint64)
		return ok
	case TypeFloat32:
		_, ok := v.(float32)
		return ok
	case TypeFloat64:
		_, ok := v.(float64)
		return ok
	}
	return false
}

// Column describes one output column of a table function. The ordered column
// list of a function is fixed at registration time: arguments may change the
// produced values but never the shape.
type Column struct {
	Name string
	Type Type
}

// Row is one output tuple. Its arity and value types must match the
// function's declared columns.
type Row []any
