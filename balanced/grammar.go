package balanced

import (
	"github.com/npillmayer/cfg"
)

// Name is the name of the balanced grammar.
const Name = "Balanced"

// Grammar creates the grammar S → aSb | ε.
func Grammar() *cfg.Grammar {
	S, a, b := cfg.N("S"), cfg.T('a'), cfg.T('b')
	return cfg.MustGrammar(Name,
		[]cfg.Symbol{S},
		[]cfg.Symbol{a, b},
		S,
		[]cfg.Production{
			cfg.NewProduction(S, a, S, b),
			cfg.NewProduction(S), // ε
		})
}

// Decider returns the membership decider for the balanced grammar.
func Decider() cfg.Decider {
	return cfg.DeciderFunc{G: Grammar(), Decide: Membership}
}

// Membership decides if s is a member of { aⁿbⁿ | n ≥ 0 }, i.e. if there is
// a derivation of s.
func Membership(s string) bool {
	_, ok := Derive(s)
	return ok
}
