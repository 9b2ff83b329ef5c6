package report

import (
	"strconv"

	"github.com/pkg/errors"

	"engine/source/settings"
	"engine/source/text"
)

// What Error() renders with. Colors are applied whether or not anyone is looking at a terminal; use
// Render with text.PLAIN or text.ForFile to choose otherwise.
var defaultHighlighter = text.COLOR

// Produces the diagnostic for e. The same error and highlighter always give the same string.
func Render(e EngineError, hl text.Highlighter) string {
	return hl.Highlight(text.HEADER, settings.HEADER) + ": " + message(e, hl)
}

func message(e EngineError, hl text.Highlighter) string {
	switch e := deref(e).(type) {
	case InvalidAddOperation:
		return missingHandler(hl, "ADD", e.X, e.Y)
	case InvalidSubOperation:
		return missingHandler(hl, "SUB", e.X, e.Y)
	case InvalidMulOperation:
		return missingHandler(hl, "MUL", e.X, e.Y)
	case InvalidDivOperation:
		return missingHandler(hl, "DIV", e.X, e.Y)
	case InvalidNegOperation:
		return missingUnaryHandler(hl, "NEG", e.X)
	case InvalidGreaterThanOperation:
		return missingHandler(hl, "GREATER_THAN", e.X, e.Y)
	case InvalidGreaterThanOrEqOperation:
		return missingHandler(hl, "GREATER_THAN_OR_EQ", e.X, e.Y)
	case InvalidLessThanOperation:
		return missingHandler(hl, "LESS_THAN", e.X, e.Y)
	case InvalidLessThanOrEqOperation:
		return missingHandler(hl, "LESS_THAN_OR_EQ", e.X, e.Y)
	case InvalidNotOperation:
		return missingUnaryHandler(hl, "NOT", e.X)
	case InvalidAndOperation:
		return missingHandler(hl, "AND", e.X, e.Y)
	case InvalidOrOperation:
		return missingHandler(hl, "OR", e.X, e.Y)
	case VariableAlreadyExists:
		return "The variable " + hl.Highlight(text.FAULTY, e.VariableName) + " already exists in the scope"
	case VariableUndefined:
		return "The variable " + hl.Highlight(text.FAULTY, e.VariableName) + " is undefined in the scope"
	case FunctionAlreadyExists:
		return "The function " + hl.Highlight(text.FAULTY, e.FunctionName) + " already exists in the scope"
	case FunctionUndefined:
		return "The function " + hl.Highlight(text.FAULTY, e.FunctionName) + " is undefined in the scope"
	case MismatchedParameterCount:
		return "The function expected " + hl.Highlight(text.EXPECTED, strconv.FormatUint(uint64(e.Expected), 10)) +
			" parameters, but received " + hl.Highlight(text.FAULTY, strconv.FormatUint(uint64(e.Actual), 10))
	case MismatchedTypes:
		return "Expected type " + hl.Highlight(text.EXPECTED, typeOf(e.Expected)) +
			", but got " + hl.Highlight(text.FAULTY, typeOf(e.Actual)) + " instead"
	case NotYetImplemented:
		return "This feature is not yet implemented"
	case Unknown:
		return "An unknown error occurred"
	}
	// Only reachable if a variant was added to errortype.go without a case here.
	panic("report: no message for " + deref(e).Kind().String())
}

// The variants have value receivers, so a pointer to one is an EngineError too. A nil pointer has no
// payload to show and is rendered as Unknown.
func deref(e EngineError) EngineError {
	switch p := e.(type) {
	case *InvalidAddOperation:
		if p != nil {
			return *p
		}
	case *InvalidSubOperation:
		if p != nil {
			return *p
		}
	case *InvalidMulOperation:
		if p != nil {
			return *p
		}
	case *InvalidDivOperation:
		if p != nil {
			return *p
		}
	case *InvalidNegOperation:
		if p != nil {
			return *p
		}
	case *InvalidGreaterThanOperation:
		if p != nil {
			return *p
		}
	case *InvalidGreaterThanOrEqOperation:
		if p != nil {
			return *p
		}
	case *InvalidLessThanOperation:
		if p != nil {
			return *p
		}
	case *InvalidLessThanOrEqOperation:
		if p != nil {
			return *p
		}
	case *InvalidNotOperation:
		if p != nil {
			return *p
		}
	case *InvalidAndOperation:
		if p != nil {
			return *p
		}
	case *InvalidOrOperation:
		if p != nil {
			return *p
		}
	case *VariableAlreadyExists:
		if p != nil {
			return *p
		}
	case *VariableUndefined:
		if p != nil {
			return *p
		}
	case *FunctionAlreadyExists:
		if p != nil {
			return *p
		}
	case *FunctionUndefined:
		if p != nil {
			return *p
		}
	case *MismatchedParameterCount:
		if p != nil {
			return *p
		}
	case *MismatchedTypes:
		if p != nil {
			return *p
		}
	case *NotYetImplemented:
		if p != nil {
			return *p
		}
	case *Unknown:
		if p != nil {
			return *p
		}
	case nil:
	default:
		return e
	}
	return Unknown{}
}

func missingHandler(hl text.Highlighter, opcode string, x, y Val) string {
	return "Could not find " + opcode + " handler for the provided types " +
		hl.Highlight(text.FAULTY, typeOf(x)) + " and " + hl.Highlight(text.FAULTY, typeOf(y))
}

func missingUnaryHandler(hl text.Highlighter, opcode string, x Val) string {
	return "Could not find " + opcode + " handler for the provided type " + hl.Highlight(text.FAULTY, typeOf(x))
}

func typeOf(v Val) string {
	if v == nil {
		return "<nil>"
	}
	return v.TypeName()
}

// Finds the engine error in err's chain, if there is one, however many times it has been wrapped on
// the way up. A pointer variant comes back as the value it points to.
func As(err error) (EngineError, bool) {
	var e EngineError
	if errors.As(err, &e) {
		return deref(e), true
	}
	return nil, false
}
