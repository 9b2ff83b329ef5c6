package ops

// The operator handler table. The evaluator registers a handler for each (opcode, operand types)
// combination it understands; asking for one that isn't there raises the matching engine error.
// The table has no arithmetic of its own.
//
// A table is owned by one evaluator and is not safe for concurrent registration.

import (
	"engine/source/report"
	"engine/source/settings"
	"engine/source/values"
)

type Opcode uint8

const (
	ADD Opcode = iota
	SUB
	MUL
	DIV
	GREATER_THAN
	GREATER_THAN_OR_EQ
	LESS_THAN
	LESS_THAN_OR_EQ
	AND
	OR
	NEG
	NOT
)

var opcodeNames = []string{
	ADD:                "ADD",
	SUB:                "SUB",
	MUL:                "MUL",
	DIV:                "DIV",
	GREATER_THAN:       "GREATER_THAN",
	GREATER_THAN_OR_EQ: "GREATER_THAN_OR_EQ",
	LESS_THAN:          "LESS_THAN",
	LESS_THAN_OR_EQ:    "LESS_THAN_OR_EQ",
	AND:                "AND",
	OR:                 "OR",
	NEG:                "NEG",
	NOT:                "NOT",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return "?"
}

func (op Opcode) IsUnary() bool {
	return op == NEG || op == NOT
}

type BinaryHandler func(x, y values.Value) (values.Value, error)
type UnaryHandler func(x values.Value) (values.Value, error)

type binaryKey struct {
	op   Opcode
	x, y values.ValueType
}

type unaryKey struct {
	op Opcode
	x  values.ValueType
}

type Table struct {
	binary map[binaryKey]BinaryHandler
	unary  map[unaryKey]UnaryHandler
}

func NewTable() *Table {
	return &Table{binary: make(map[binaryKey]BinaryHandler), unary: make(map[unaryKey]UnaryHandler)}
}

// Registering a second handler for the same key replaces the first.
func (t *Table) RegisterBinary(op Opcode, x, y values.ValueType, fn BinaryHandler) {
	if op.IsUnary() {
		panic("ops: " + op.String() + " is a unary operator")
	}
	t.binary[binaryKey{op, x, y}] = fn
}

func (t *Table) RegisterUnary(op Opcode, x values.ValueType, fn UnaryHandler) {
	if !op.IsUnary() {
		panic("ops: " + op.String() + " is a binary operator")
	}
	t.unary[unaryKey{op, x}] = fn
}

func (t *Table) Binary(op Opcode, x, y values.Value) (values.Value, error) {
	fn, ok := t.binary[binaryKey{op, x.T, y.T}]
	if settings.SHOW_HANDLERS {
		println(describe(op, x, y))
	}
	if !ok {
		return values.UNIT_OBJ, binaryMiss(op, x, y)
	}
	return callBinary(fn, x, y)
}

func (t *Table) Unary(op Opcode, x values.Value) (values.Value, error) {
	fn, ok := t.unary[unaryKey{op, x.T}]
	if settings.SHOW_HANDLERS {
		println(describe(op, x))
	}
	if !ok {
		return values.UNIT_OBJ, unaryMiss(op, x)
	}
	return callUnary(fn, x)
}

// Shows a lookup, e.g. `ADD 1, "a"`.
func describe(op Opcode, args ...values.Value) string {
	result := op.String()
	sep := " "
	for _, arg := range args {
		result = result + sep + arg.String()
		sep = ", "
	}
	return result
}

// A handler that panics has failed in some way nobody classified.
func callBinary(fn BinaryHandler, x, y values.Value) (result values.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = values.UNIT_OBJ, report.Unknown{}
		}
	}()
	return fn(x, y)
}

func callUnary(fn UnaryHandler, x values.Value) (result values.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = values.UNIT_OBJ, report.Unknown{}
		}
	}()
	return fn(x)
}

func binaryMiss(op Opcode, x, y values.Value) report.EngineError {
	switch op {
	case ADD:
		return report.InvalidAddOperation{X: x, Y: y}
	case SUB:
		return report.InvalidSubOperation{X: x, Y: y}
	case MUL:
		return report.InvalidMulOperation{X: x, Y: y}
	case DIV:
		return report.InvalidDivOperation{X: x, Y: y}
	case GREATER_THAN:
		return report.InvalidGreaterThanOperation{X: x, Y: y}
	case GREATER_THAN_OR_EQ:
		return report.InvalidGreaterThanOrEqOperation{X: x, Y: y}
	case LESS_THAN:
		return report.InvalidLessThanOperation{X: x, Y: y}
	case LESS_THAN_OR_EQ:
		return report.InvalidLessThanOrEqOperation{X: x, Y: y}
	case AND:
		return report.InvalidAndOperation{X: x, Y: y}
	case OR:
		return report.InvalidOrOperation{X: x, Y: y}
	}
	return report.Unknown{}
}

func unaryMiss(op Opcode, x values.Value) report.EngineError {
	switch op {
	case NEG:
		return report.InvalidNegOperation{X: x}
	case NOT:
		return report.InvalidNotOperation{X: x}
	}
	return report.Unknown{}
}
