// All this does is contain in one place the constants controlling how diagnostics look and how chatty
// the tests and the handler table are.

package settings

import "github.com/fatih/color"

// The fixed prefix of every rendered diagnostic.
const HEADER = "Engine Error"

// Each highlighting role maps to exactly one terminal color. Callers compare the escape sequences
// byte for byte, so these are not to be changed lightly.
const (
	HEADER_COLOR   = color.FgRed
	FAULTY_COLOR   = color.FgYellow
	EXPECTED_COLOR = color.FgGreen
)

const (
	SHOW_TESTS    = false // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.
	SHOW_HANDLERS = false // Prints each lookup made in the operator handler table.
)
