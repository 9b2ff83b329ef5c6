package text

// This consists of the text utilities used to decorate diagnostics: a small set of highlighting roles,
// and backends that turn a role plus some text into what gets printed.

import (
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"engine/source/settings"
)

const BULLET = "  ▪ "

// The semantic roles a piece of a diagnostic can play.
type Role int

const (
	HEADER   Role = iota // The "Engine Error" prefix.
	FAULTY               // Whatever was wrong: operand types, bad identifiers, received counts and types.
	EXPECTED             // Whatever was required instead.
)

func (r Role) String() string {
	switch r {
	case HEADER:
		return "header"
	case FAULTY:
		return "faulty"
	case EXPECTED:
		return "expected"
	}
	return "role(" + strconv.Itoa(int(r)) + ")"
}

type Highlighter interface {
	Highlight(role Role, s string) string
}

// Forced on, overriding color.NoColor. Whether to color at all is settled by which Highlighter the
// caller picks.
var (
	headerColor   = forced(settings.HEADER_COLOR)
	faultyColor   = forced(settings.FAULTY_COLOR)
	expectedColor = forced(settings.EXPECTED_COLOR)
)

func forced(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

type colorHighlighter struct{}

func (colorHighlighter) Highlight(role Role, s string) string {
	switch role {
	case HEADER:
		return headerColor.Sprint(s)
	case FAULTY:
		return faultyColor.Sprint(s)
	case EXPECTED:
		return expectedColor.Sprint(s)
	}
	return s
}

type plainHighlighter struct{}

func (plainHighlighter) Highlight(role Role, s string) string {
	return s
}

var (
	COLOR Highlighter = colorHighlighter{}
	PLAIN Highlighter = plainHighlighter{}
)

// Returns COLOR if f is a terminal and PLAIN otherwise.
func ForFile(f *os.File) Highlighter {
	if f != nil && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return COLOR
	}
	return PLAIN
}

func Emph(s string) string {
	return "'" + s + "'"
}
