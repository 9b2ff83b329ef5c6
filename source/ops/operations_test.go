package ops

import (
	"testing"

	"engine/source/report"
	"engine/source/test_helper"
	"engine/source/values"
)

func addInts(x, y values.Value) (values.Value, error) {
	return values.Int(x.V.(int) + y.V.(int)), nil
}

func TestRegisteredHandler(t *testing.T) {
	table := NewTable()
	table.RegisterBinary(ADD, values.INT, values.INT, addInts)
	table.RegisterUnary(NOT, values.BOOL, func(x values.Value) (values.Value, error) {
		return values.Bool(!x.V.(bool)), nil
	})
	got, err := table.Binary(ADD, values.Int(2), values.Int(3))
	if err != nil || got.T != values.INT || got.V.(int) != 5 {
		t.Fatalf("2 + 3 gave %v, %v", got, err)
	}
	got, err = table.Unary(NOT, values.TRUE)
	if err != nil || got != values.FALSE {
		t.Fatalf("not true gave %v, %v", got, err)
	}
}

func TestBinaryMissRaisesMatchingKind(t *testing.T) {
	table := NewTable()
	table.RegisterBinary(ADD, values.INT, values.INT, addInts)
	x, y := values.Int(1), values.Str("a")
	tests := []struct {
		op   Opcode
		kind report.Kind
	}{
		{ADD, report.KIND_INVALID_ADD},
		{SUB, report.KIND_INVALID_SUB},
		{MUL, report.KIND_INVALID_MUL},
		{DIV, report.KIND_INVALID_DIV},
		{GREATER_THAN, report.KIND_INVALID_GREATER_THAN},
		{GREATER_THAN_OR_EQ, report.KIND_INVALID_GREATER_THAN_OR_EQ},
		{LESS_THAN, report.KIND_INVALID_LESS_THAN},
		{LESS_THAN_OR_EQ, report.KIND_INVALID_LESS_THAN_OR_EQ},
		{AND, report.KIND_INVALID_AND},
		{OR, report.KIND_INVALID_OR},
	}
	for _, test := range tests {
		_, err := table.Binary(test.op, x, y)
		e, ok := report.As(err)
		if !ok || e.Kind() != test.kind {
			t.Fatalf("%s on Int, Str raised %v", test.op, err)
		}
		test_helper.RunTest(t, []test_helper.TestItem{{Err: err, Want: []string{test.op.String() + " handler", "Int", "Str"}}})
	}
}

func TestBinaryMissKeepsOperandOrder(t *testing.T) {
	table := NewTable()
	_, err := table.Binary(SUB, values.Str("a"), values.Float(2))
	e, ok := err.(report.InvalidSubOperation)
	if !ok {
		t.Fatalf("wanted InvalidSubOperation, got %#v", err)
	}
	if e.X.TypeName() != "Str" || e.Y.TypeName() != "Float" {
		t.Fatalf("operands out of order: %s, %s", e.X.TypeName(), e.Y.TypeName())
	}
}

func TestUnaryMiss(t *testing.T) {
	table := NewTable()
	_, err := table.Unary(NEG, values.Str("a"))
	if _, ok := err.(report.InvalidNegOperation); !ok {
		t.Fatalf("wanted InvalidNegOperation, got %#v", err)
	}
	_, err = table.Unary(NOT, values.Int(1))
	if e, ok := err.(report.InvalidNotOperation); !ok || e.X.TypeName() != "Int" {
		t.Fatalf("wanted InvalidNotOperation on Int, got %#v", err)
	}
}

func TestPanickingHandlerIsUnknown(t *testing.T) {
	table := NewTable()
	table.RegisterBinary(DIV, values.INT, values.INT, func(x, y values.Value) (values.Value, error) {
		return values.Int(x.V.(int) / y.V.(int)), nil
	})
	_, err := table.Binary(DIV, values.Int(1), values.Int(0))
	if _, ok := err.(report.Unknown); !ok {
		t.Fatalf("wanted Unknown, got %#v", err)
	}
}

func TestHandlerErrorsPassThrough(t *testing.T) {
	table := NewTable()
	table.RegisterUnary(NEG, values.LIST, func(x values.Value) (values.Value, error) {
		return values.UNIT_OBJ, report.NotYetImplemented{}
	})
	_, err := table.Unary(NEG, values.List())
	if _, ok := err.(report.NotYetImplemented); !ok {
		t.Fatalf("handler's own error was replaced: %#v", err)
	}
}

func TestRegisterWrongArity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("registering NEG as binary didn't panic")
		}
	}()
	NewTable().RegisterBinary(NEG, values.INT, values.INT, addInts)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{describe(ADD, values.Int(1), values.Str("a")), `ADD 1, "a"`},
		{describe(NOT, values.List(values.TRUE)), "NOT [true]"},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Fatalf("Wanted : %s | Got : %s.", test.want, test.got)
		}
	}
}
