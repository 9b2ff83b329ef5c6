package scope

import (
	"testing"

	"engine/source/report"
	"engine/source/test_helper"
	"engine/source/values"
)

func TestVariables(t *testing.T) {
	env := NewEnvironment()
	if err := env.Declare("x", values.Int(1)); err != nil {
		t.Fatalf("declaring x: %v", err)
	}
	var tests []test_helper.TestItem
	err := env.Declare("x", values.Int(2))
	if _, ok := err.(report.VariableAlreadyExists); !ok {
		t.Fatalf("redeclaring x gave %#v", err)
	}
	tests = append(tests, test_helper.TestItem{Err: err, Want: []string{"variable x already exists"}})
	_, err = env.Get("y")
	if e, ok := err.(report.VariableUndefined); !ok || e.VariableName != "y" {
		t.Fatalf("getting y gave %#v", err)
	}
	tests = append(tests, test_helper.TestItem{Err: err, Want: []string{"variable y is undefined"}})
	err = env.Set("x", values.Str("one"))
	if e, ok := err.(report.MismatchedTypes); !ok || e.Actual.TypeName() != "Str" || e.Expected.TypeName() != "Int" {
		t.Fatalf("assigning a string to x gave %#v", err)
	}
	tests = append(tests, test_helper.TestItem{Err: err, Want: []string{"Expected type Int", "got Str"}})
	test_helper.RunTest(t, tests)

	if err := env.Set("x", values.Int(5)); err != nil {
		t.Fatalf("assigning 5 to x: %v", err)
	}
	if v, _ := env.Get("x"); v.V.(int) != 5 {
		t.Fatalf("x is %v", v)
	}
	if _, ok := env.Set("nope", values.Int(0)).(report.VariableUndefined); !ok {
		t.Fatalf("assigning to an undeclared variable succeeded")
	}
}

func TestShadowing(t *testing.T) {
	outer := NewEnvironment()
	outer.Declare("x", values.Int(1))
	inner := NewEnclosedEnvironment(outer)
	if err := inner.Declare("x", values.Str("inner")); err != nil {
		t.Fatalf("shadowing x: %v", err)
	}
	if v, _ := inner.Get("x"); v.T != values.STRING {
		t.Fatalf("inner x is %v", v)
	}
	if v, _ := outer.Get("x"); v.T != values.INT {
		t.Fatalf("outer x is %v", v)
	}
	inner2 := NewEnclosedEnvironment(outer)
	inner2.Set("x", values.Int(7))
	if v, _ := outer.Get("x"); v.V.(int) != 7 {
		t.Fatalf("assignment through an inner scope didn't reach x")
	}
}

func TestFunctions(t *testing.T) {
	env := NewEnvironment()
	double := &Function{
		Name:   "double",
		Params: []values.ValueType{values.INT},
		Body: func(env *Environment, args []values.Value) (values.Value, error) {
			return values.Int(2 * args[0].V.(int)), nil
		},
	}
	if err := env.Define(double); err != nil {
		t.Fatalf("defining double: %v", err)
	}
	got, err := env.Call("double", []values.Value{values.Int(21)})
	if err != nil || got.V.(int) != 42 {
		t.Fatalf("double 21 gave %v, %v", got, err)
	}

	var tests []test_helper.TestItem
	err = env.Define(&Function{Name: "double"})
	if _, ok := err.(report.FunctionAlreadyExists); !ok {
		t.Fatalf("redefining double gave %#v", err)
	}
	tests = append(tests, test_helper.TestItem{Err: err, Want: []string{"function double already exists"}})

	_, err = env.Call("triple", nil)
	if _, ok := err.(report.FunctionUndefined); !ok {
		t.Fatalf("calling triple gave %#v", err)
	}
	tests = append(tests, test_helper.TestItem{Err: err, Want: []string{"function triple is undefined"}})

	_, err = env.Call("double", []values.Value{values.Int(1), values.Int(2), values.Int(3)})
	if e, ok := err.(report.MismatchedParameterCount); !ok || e.Actual != 3 || e.Expected != 1 {
		t.Fatalf("calling double with three arguments gave %#v", err)
	}
	tests = append(tests, test_helper.TestItem{Err: err, Want: []string{"expected 1 parameters", "received 3"}})

	_, err = env.Call("double", []values.Value{values.Str("x")})
	if _, ok := err.(report.MismatchedTypes); !ok {
		t.Fatalf("calling double on a string gave %#v", err)
	}
	tests = append(tests, test_helper.TestItem{Err: err, Want: []string{"Expected type Int", "got Str"}})
	test_helper.RunTest(t, tests)
}

func TestUnimplementedFunction(t *testing.T) {
	env := NewEnvironment()
	env.Define(&Function{Name: "later", Params: []values.ValueType{}})
	_, err := env.Call("later", nil)
	if _, ok := err.(report.NotYetImplemented); !ok {
		t.Fatalf("calling a function without a body gave %#v", err)
	}
}

func TestCallSeesEnclosingScope(t *testing.T) {
	env := NewEnvironment()
	env.Declare("base", values.Int(10))
	env.Define(&Function{
		Name:   "addBase",
		Params: []values.ValueType{values.INT},
		Body: func(local *Environment, args []values.Value) (values.Value, error) {
			if err := local.Declare("base", values.Int(0)); err != nil {
				return values.UNIT_OBJ, err
			}
			b, err := local.Ext.Get("base")
			if err != nil {
				return values.UNIT_OBJ, err
			}
			return values.Int(b.V.(int) + args[0].V.(int)), nil
		},
	})
	got, err := env.Call("addBase", []values.Value{values.Int(5)})
	if err != nil || got.V.(int) != 15 {
		t.Fatalf("addBase 5 gave %v, %v", got, err)
	}
	if _, err := env.Call("addBase", []values.Value{values.Int(5)}); err != nil {
		t.Fatalf("second call leaked the local declaration: %v", err)
	}
}
