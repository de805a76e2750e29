/*
Package bonus implements the grammar

   S → aAbBcC
   A → aA | ε
   B → bB | ε
   C → cC | ε

and a membership decider for the language L = { aⁿbⁿcⁿ | n ≥ 1 }.

L is not context-free, so no CFG is able to generate it. The grammar above
is an approximation: it generates a⁺b⁺c⁺, where the number of a's, b's
and c's is independent. Membership does not decide the grammar's language,
but L itself. Clients must not rely on Membership agreeing with the grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package bonus

import (
	"strings"

	"github.com/npillmayer/cfg"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Name is the name of the bonus grammar.
const Name = "BonusTriple"

// Grammar creates the bonus grammar S → aAbBcC; A → aA | ε; B → bB | ε; C → cC | ε.
func Grammar() *cfg.Grammar {
	S, A, B, C := cfg.N("S"), cfg.N("A"), cfg.N("B"), cfg.N("C")
	a, b, c := cfg.T('a'), cfg.T('b'), cfg.T('c')
	return cfg.MustGrammar(Name,
		[]cfg.Symbol{S, A, B, C},
		[]cfg.Symbol{a, b, c},
		S,
		[]cfg.Production{
			cfg.NewProduction(S, a, A, b, B, c, C),
			cfg.NewProduction(A, a, A),
			cfg.NewProduction(A),
			cfg.NewProduction(B, b, B),
			cfg.NewProduction(B),
			cfg.NewProduction(C, c, C),
			cfg.NewProduction(C),
		})
}

// Decider returns the membership decider for L = { aⁿbⁿcⁿ | n ≥ 1 }, paired
// with the bonus grammar.
func Decider() cfg.Decider {
	return cfg.DeciderFunc{G: Grammar(), Decide: Membership}
}

// Membership decides if s = aⁿbⁿcⁿ for some n ≥ 1. The string is split into
// three parts of equal length, which have to consist of a's, b's and c's,
// respectively.
func Membership(s string) bool {
	n := len(s)
	if n == 0 || n%3 != 0 {
		return false
	}
	p := n / 3
	accept := s[:p] == strings.Repeat("a", p) &&
		s[p:2*p] == strings.Repeat("b", p) &&
		s[2*p:] == strings.Repeat("c", p)
	T().Debugf("bonus membership of %q = %v", s, accept)
	return accept
}
