package report

import "strconv"

// A runtime value as far as diagnostics are concerned: all we ever ask of it is the name of its type.
type Val interface {
	TypeName() string
}

// The 'error' type. The set of variants is closed: the marker method is unexported, so only this
// package can add to it, and Render has a case for each.
type EngineError interface {
	error
	Kind() Kind
	engineError()
}

type Kind int

const ( // Cross-reference with kindNames below and the switch in message.
	KIND_INVALID_ADD Kind = iota
	KIND_INVALID_SUB
	KIND_INVALID_MUL
	KIND_INVALID_DIV
	KIND_INVALID_NEG
	KIND_INVALID_GREATER_THAN
	KIND_INVALID_GREATER_THAN_OR_EQ
	KIND_INVALID_LESS_THAN
	KIND_INVALID_LESS_THAN_OR_EQ
	KIND_INVALID_NOT
	KIND_INVALID_AND
	KIND_INVALID_OR
	KIND_VARIABLE_ALREADY_EXISTS
	KIND_VARIABLE_UNDEFINED
	KIND_FUNCTION_ALREADY_EXISTS
	KIND_FUNCTION_UNDEFINED
	KIND_MISMATCHED_PARAMETER_COUNT
	KIND_MISMATCHED_TYPES
	KIND_NOT_YET_IMPLEMENTED
	KIND_UNKNOWN
	kindCount
)

var kindNames = [kindCount]string{
	KIND_INVALID_ADD:                "InvalidAddOperation",
	KIND_INVALID_SUB:                "InvalidSubOperation",
	KIND_INVALID_MUL:                "InvalidMulOperation",
	KIND_INVALID_DIV:                "InvalidDivOperation",
	KIND_INVALID_NEG:                "InvalidNegOperation",
	KIND_INVALID_GREATER_THAN:       "InvalidGreaterThanOperation",
	KIND_INVALID_GREATER_THAN_OR_EQ: "InvalidGreaterThanOrEqOperation",
	KIND_INVALID_LESS_THAN:          "InvalidLessThanOperation",
	KIND_INVALID_LESS_THAN_OR_EQ:    "InvalidLessThanOrEqOperation",
	KIND_INVALID_NOT:                "InvalidNotOperation",
	KIND_INVALID_AND:                "InvalidAndOperation",
	KIND_INVALID_OR:                 "InvalidOrOperation",
	KIND_VARIABLE_ALREADY_EXISTS:    "VariableAlreadyExists",
	KIND_VARIABLE_UNDEFINED:         "VariableUndefined",
	KIND_FUNCTION_ALREADY_EXISTS:    "FunctionAlreadyExists",
	KIND_FUNCTION_UNDEFINED:         "FunctionUndefined",
	KIND_MISMATCHED_PARAMETER_COUNT: "MismatchedParameterCount",
	KIND_MISMATCHED_TYPES:           "MismatchedTypes",
	KIND_NOT_YET_IMPLEMENTED:        "NotYetImplemented",
	KIND_UNKNOWN:                    "Unknown",
}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func AllKinds() []Kind {
	result := make([]Kind, kindCount)
	for i := range result {
		result[i] = Kind(i)
	}
	return result
}

// Looks a kind up by its variant name, e.g. "VariableUndefined".
func KindFromString(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Operator-dispatch misses. X and Y are the operands in evaluation order.

type InvalidAddOperation struct{ X, Y Val }
type InvalidSubOperation struct{ X, Y Val }
type InvalidMulOperation struct{ X, Y Val }
type InvalidDivOperation struct{ X, Y Val }
type InvalidNegOperation struct{ X Val }
type InvalidGreaterThanOperation struct{ X, Y Val }
type InvalidGreaterThanOrEqOperation struct{ X, Y Val }
type InvalidLessThanOperation struct{ X, Y Val }
type InvalidLessThanOrEqOperation struct{ X, Y Val }
type InvalidNotOperation struct{ X Val }
type InvalidAndOperation struct{ X, Y Val }
type InvalidOrOperation struct{ X, Y Val }

// Scope-resolution conflicts. The names are exactly as looked up or declared.

type VariableAlreadyExists struct{ VariableName string }
type VariableUndefined struct{ VariableName string }
type FunctionAlreadyExists struct{ FunctionName string }
type FunctionUndefined struct{ FunctionName string }

// Call-site contract violations.

type MismatchedParameterCount struct{ Actual, Expected uint }

// Expected is a representative value of the required type.
type MismatchedTypes struct{ Actual, Expected Val }

type NotYetImplemented struct{}
type Unknown struct{}

func (InvalidAddOperation) Kind() Kind             { return KIND_INVALID_ADD }
func (InvalidSubOperation) Kind() Kind             { return KIND_INVALID_SUB }
func (InvalidMulOperation) Kind() Kind             { return KIND_INVALID_MUL }
func (InvalidDivOperation) Kind() Kind             { return KIND_INVALID_DIV }
func (InvalidNegOperation) Kind() Kind             { return KIND_INVALID_NEG }
func (InvalidGreaterThanOperation) Kind() Kind     { return KIND_INVALID_GREATER_THAN }
func (InvalidGreaterThanOrEqOperation) Kind() Kind { return KIND_INVALID_GREATER_THAN_OR_EQ }
func (InvalidLessThanOperation) Kind() Kind        { return KIND_INVALID_LESS_THAN }
func (InvalidLessThanOrEqOperation) Kind() Kind    { return KIND_INVALID_LESS_THAN_OR_EQ }
func (InvalidNotOperation) Kind() Kind             { return KIND_INVALID_NOT }
func (InvalidAndOperation) Kind() Kind             { return KIND_INVALID_AND }
func (InvalidOrOperation) Kind() Kind              { return KIND_INVALID_OR }
func (VariableAlreadyExists) Kind() Kind           { return KIND_VARIABLE_ALREADY_EXISTS }
func (VariableUndefined) Kind() Kind               { return KIND_VARIABLE_UNDEFINED }
func (FunctionAlreadyExists) Kind() Kind           { return KIND_FUNCTION_ALREADY_EXISTS }
func (FunctionUndefined) Kind() Kind               { return KIND_FUNCTION_UNDEFINED }
func (MismatchedParameterCount) Kind() Kind        { return KIND_MISMATCHED_PARAMETER_COUNT }
func (MismatchedTypes) Kind() Kind                 { return KIND_MISMATCHED_TYPES }
func (NotYetImplemented) Kind() Kind               { return KIND_NOT_YET_IMPLEMENTED }
func (Unknown) Kind() Kind                         { return KIND_UNKNOWN }

func (InvalidAddOperation) engineError()             {}
func (InvalidSubOperation) engineError()             {}
func (InvalidMulOperation) engineError()             {}
func (InvalidDivOperation) engineError()             {}
func (InvalidNegOperation) engineError()             {}
func (InvalidGreaterThanOperation) engineError()     {}
func (InvalidGreaterThanOrEqOperation) engineError() {}
func (InvalidLessThanOperation) engineError()        {}
func (InvalidLessThanOrEqOperation) engineError()    {}
func (InvalidNotOperation) engineError()             {}
func (InvalidAndOperation) engineError()             {}
func (InvalidOrOperation) engineError()              {}
func (VariableAlreadyExists) engineError()           {}
func (VariableUndefined) engineError()               {}
func (FunctionAlreadyExists) engineError()           {}
func (FunctionUndefined) engineError()               {}
func (MismatchedParameterCount) engineError()        {}
func (MismatchedTypes) engineError()                 {}
func (NotYetImplemented) engineError()               {}
func (Unknown) engineError()                         {}

func (e InvalidAddOperation) Error() string             { return Render(e, defaultHighlighter) }
func (e InvalidSubOperation) Error() string             { return Render(e, defaultHighlighter) }
func (e InvalidMulOperation) Error() string             { return Render(e, defaultHighlighter) }
func (e InvalidDivOperation) Error() string             { return Render(e, defaultHighlighter) }
func (e InvalidNegOperation) Error() string             { return Render(e, defaultHighlighter) }
func (e InvalidGreaterThanOperation) Error() string     { return Render(e, defaultHighlighter) }
func (e InvalidGreaterThanOrEqOperation) Error() string { return Render(e, defaultHighlighter) }
func (e InvalidLessThanOperation) Error() string        { return Render(e, defaultHighlighter) }
func (e InvalidLessThanOrEqOperation) Error() string    { return Render(e, defaultHighlighter) }
func (e InvalidNotOperation) Error() string             { return Render(e, defaultHighlighter) }
func (e InvalidAndOperation) Error() string             { return Render(e, defaultHighlighter) }
func (e InvalidOrOperation) Error() string              { return Render(e, defaultHighlighter) }
func (e VariableAlreadyExists) Error() string           { return Render(e, defaultHighlighter) }
func (e VariableUndefined) Error() string               { return Render(e, defaultHighlighter) }
func (e FunctionAlreadyExists) Error() string           { return Render(e, defaultHighlighter) }
func (e FunctionUndefined) Error() string               { return Render(e, defaultHighlighter) }
func (e MismatchedParameterCount) Error() string        { return Render(e, defaultHighlighter) }
func (e MismatchedTypes) Error() string                 { return Render(e, defaultHighlighter) }
func (e NotYetImplemented) Error() string               { return Render(e, defaultHighlighter) }
func (e Unknown) Error() string                         { return Render(e, defaultHighlighter) }
