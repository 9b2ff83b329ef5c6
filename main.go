// The engine command prints the diagnostics the engine can raise, one sample of each kind, or of the
// kinds named on the command line.
//
//	engine [--plain | --auto] [--log] [Kind ...]

package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/dnephin/pflag"
	"github.com/sirupsen/logrus"

	"engine/source/report"
	"engine/source/text"
	"engine/source/values"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("engine", flag.ContinueOnError)
	flags.SetOutput(stderr)
	plain := flags.Bool("plain", false, "render without color")
	auto := flags.Bool("auto", false, "render with color only when stdout is a terminal")
	toLog := flags.Bool("log", false, "send the diagnostics through the logger instead of printing them")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	hl := text.COLOR
	switch {
	case *plain:
		hl = text.PLAIN
	case *auto:
		if f, ok := stdout.(*os.File); ok {
			hl = text.ForFile(f)
		} else {
			hl = text.PLAIN
		}
	}

	kinds := report.AllKinds()
	if flags.NArg() > 0 {
		kinds = kinds[:0]
		for _, name := range flags.Args() {
			k, ok := report.KindFromString(name)
			if !ok {
				fmt.Fprintln(stderr, "engine: no such error kind "+text.Emph(name))
				return 2
			}
			kinds = append(kinds, k)
		}
	}

	logger := logrus.New()
	logger.SetOutput(stdout)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: hl == text.PLAIN})

	for _, k := range kinds {
		e := sample(k)
		if *toLog {
			report.Log(logger, hl, e)
			continue
		}
		fmt.Fprintln(stdout, report.Render(e, hl))
	}
	return 0
}

func sample(k report.Kind) report.EngineError {
	x, y := values.Int(1), values.Str("a")
	switch k {
	case report.KIND_INVALID_ADD:
		return report.InvalidAddOperation{X: x, Y: y}
	case report.KIND_INVALID_SUB:
		return report.InvalidSubOperation{X: x, Y: y}
	case report.KIND_INVALID_MUL:
		return report.InvalidMulOperation{X: x, Y: y}
	case report.KIND_INVALID_DIV:
		return report.InvalidDivOperation{X: x, Y: y}
	case report.KIND_INVALID_NEG:
		return report.InvalidNegOperation{X: y}
	case report.KIND_INVALID_GREATER_THAN:
		return report.InvalidGreaterThanOperation{X: x, Y: y}
	case report.KIND_INVALID_GREATER_THAN_OR_EQ:
		return report.InvalidGreaterThanOrEqOperation{X: x, Y: y}
	case report.KIND_INVALID_LESS_THAN:
		return report.InvalidLessThanOperation{X: x, Y: y}
	case report.KIND_INVALID_LESS_THAN_OR_EQ:
		return report.InvalidLessThanOrEqOperation{X: x, Y: y}
	case report.KIND_INVALID_NOT:
		return report.InvalidNotOperation{X: x}
	case report.KIND_INVALID_AND:
		return report.InvalidAndOperation{X: x, Y: values.TRUE}
	case report.KIND_INVALID_OR:
		return report.InvalidOrOperation{X: values.TRUE, Y: y}
	case report.KIND_VARIABLE_ALREADY_EXISTS:
		return report.VariableAlreadyExists{VariableName: "x"}
	case report.KIND_VARIABLE_UNDEFINED:
		return report.VariableUndefined{VariableName: "x"}
	case report.KIND_FUNCTION_ALREADY_EXISTS:
		return report.FunctionAlreadyExists{FunctionName: "f"}
	case report.KIND_FUNCTION_UNDEFINED:
		return report.FunctionUndefined{FunctionName: "f"}
	case report.KIND_MISMATCHED_PARAMETER_COUNT:
		return report.MismatchedParameterCount{Actual: 1, Expected: 3}
	case report.KIND_MISMATCHED_TYPES:
		return report.MismatchedTypes{Actual: y, Expected: values.Zero(values.INT)}
	case report.KIND_NOT_YET_IMPLEMENTED:
		return report.NotYetImplemented{}
	}
	return report.Unknown{}
}
