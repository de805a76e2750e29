package balanced

import (
	"strings"
)

// Derivation is a sequence of sentential forms, starting with the start
// symbol "S" and ending with a string of terminals.
type Derivation []string

// String renders a derivation as "S ⇒ aSb ⇒ aabb".
func (d Derivation) String() string {
	return strings.Join(d, " ⇒ ")
}

// Derive reconstructs the leftmost derivation of s, if one exists. The
// derivation of aⁿbⁿ consists of n+1 sentential forms, the first being "S"
// and the last being s itself:
//
//    Derive("aaabbb") = [S aSb aaSbb aaabbb]
//
// The final form applies S → aSb and S → ε in a single step.
//
// If s is not a member of the language, Derive returns (nil, false).
func Derive(s string) (Derivation, bool) {
	forms, ok := derive(s, 0)
	if !ok {
		T().Debugf("no derivation for %q", s)
		return nil, false
	}
	return forms, true
}

// derive peels one 'a' from the front and one 'b' from the back per level of
// recursion.
func derive(s string, depth int) (Derivation, bool) {
	if len(s) == 0 {
		return Derivation{"S"}, true
	}
	if s[0] != 'a' || s[len(s)-1] != 'b' {
		return nil, false
	}
	forms, ok := derive(substr(s, 1, len(s)-1), depth+1)
	if !ok {
		return nil, false
	}
	T().Debugf("derive: depth %d, input %q", depth, s)
	if depth == 0 {
		return append(forms, s), true
	}
	return append(forms, "a"+forms[len(forms)-1]+"b"), true
}

// substr is a total version of s[from:to]: out-of-range indices yield "".
func substr(s string, from, to int) string {
	if from < 0 || to > len(s) || from > to {
		return ""
	}
	return s[from:to]
}
