package scope

import (
	"engine/source/report"
	"engine/source/values"
)

// Something the evaluator can call. A nil Body is a function that has been declared but whose
// implementation isn't there yet.
type Function struct {
	Name   string
	Params []values.ValueType
	Body   func(env *Environment, args []values.Value) (values.Value, error)
}

type Environment struct {
	Store     map[string]values.Value
	Functions map[string]*Function
	Ext       *Environment
}

func NewEnvironment() *Environment {
	return &Environment{Store: make(map[string]values.Value), Functions: make(map[string]*Function)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.Ext = outer
	return env
}

// Declarations only look at the current scope: shadowing an outer binding is allowed.
func (e *Environment) Declare(name string, val values.Value) error {
	if _, ok := e.Store[name]; ok {
		return report.VariableAlreadyExists{VariableName: name}
	}
	e.Store[name] = val
	return nil
}

func (e *Environment) Get(name string) (values.Value, error) {
	for env := e; env != nil; env = env.Ext {
		if val, ok := env.Store[name]; ok {
			return val, nil
		}
	}
	return values.UNIT_OBJ, report.VariableUndefined{VariableName: name}
}

// Assigns to the innermost existing binding. A variable keeps the type it was declared with.
func (e *Environment) Set(name string, val values.Value) error {
	for env := e; env != nil; env = env.Ext {
		if old, ok := env.Store[name]; ok {
			if old.T != val.T {
				return report.MismatchedTypes{Actual: val, Expected: values.Zero(old.T)}
			}
			env.Store[name] = val
			return nil
		}
	}
	return report.VariableUndefined{VariableName: name}
}

func (e *Environment) Define(fn *Function) error {
	if _, ok := e.Functions[fn.Name]; ok {
		return report.FunctionAlreadyExists{FunctionName: fn.Name}
	}
	e.Functions[fn.Name] = fn
	return nil
}

func (e *Environment) Lookup(name string) (*Function, error) {
	for env := e; env != nil; env = env.Ext {
		if fn, ok := env.Functions[name]; ok {
			return fn, nil
		}
	}
	return nil, report.FunctionUndefined{FunctionName: name}
}

// Checks the arguments against the function's signature and runs its body in a fresh scope enclosed
// by this one. Errors from the body come back as they are.
func (e *Environment) Call(name string, args []values.Value) (values.Value, error) {
	fn, err := e.Lookup(name)
	if err != nil {
		return values.UNIT_OBJ, err
	}
	if len(args) != len(fn.Params) {
		return values.UNIT_OBJ, report.MismatchedParameterCount{Actual: uint(len(args)), Expected: uint(len(fn.Params))}
	}
	for i, arg := range args {
		if arg.T != fn.Params[i] {
			return values.UNIT_OBJ, report.MismatchedTypes{Actual: arg, Expected: values.Zero(fn.Params[i])}
		}
	}
	if fn.Body == nil {
		return values.UNIT_OBJ, report.NotYetImplemented{}
	}
	return fn.Body(NewEnclosedEnvironment(e), args)
}
