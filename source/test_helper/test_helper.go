package test_helper

import (
	"strings"
	"testing"

	"engine/source/report"
	"engine/source/settings"
	"engine/source/text"
)

// Auxiliary types and functions for testing diagnostics.

// Err is rendered with text.PLAIN, and each string in Want must then appear in it, in order.
type TestItem struct {
	Err  error
	Want []string
}

func RunTest(t *testing.T, tests []TestItem) {
	t.Helper()
	for _, test := range tests {
		e, ok := report.As(test.Err)
		if !ok {
			t.Fatalf("Test failed: wanted an engine error, got %v", test.Err)
		}
		got := report.Render(e, text.PLAIN)
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(got))
		}
		if !ContainsInOrder(got, test.Want...) {
			t.Fatalf(`Test failed with %s | Wanted : %q in order | Got : %s.`, e.Kind(), test.Want, got)
		}
	}
}

func ContainsInOrder(s string, subs ...string) bool {
	for _, sub := range subs {
		i := strings.Index(s, sub)
		if i < 0 {
			return false
		}
		s = s[i+len(sub):]
	}
	return true
}
