package cfg

import (
	"fmt"
	"strings"
)

// Kind tags a Symbol as either a terminal or a nonterminal.
type Kind int8

// Symbol kinds
const (
	Terminal Kind = iota
	NonTerminal
)

func (k Kind) String() string {
	if k == NonTerminal {
		return "NonTerminal"
	}
	return "Terminal"
}

// Symbol is a grammar atom. Terminals are single characters of the terminal
// alphabet; nonterminals are identified by a name, usually a single
// uppercase letter.
//
// Symbols are values; two symbols are equal iff kind and name are equal.
type Symbol struct {
	Kind Kind
	Name string
}

// T creates a terminal symbol for character c.
func T(c byte) Symbol {
	return Symbol{Kind: Terminal, Name: string([]byte{c})}
}

// N creates a nonterminal symbol.
func N(name string) Symbol {
	return Symbol{Kind: NonTerminal, Name: name}
}

// IsTerminal is a predicate.
func (sym Symbol) IsTerminal() bool {
	return sym.Kind == Terminal
}

// IsNonTerminal is a predicate.
func (sym Symbol) IsNonTerminal() bool {
	return sym.Kind == NonTerminal
}

// Char returns the character of a terminal symbol, or 0 for nonterminals.
func (sym Symbol) Char() byte {
	if sym.Kind != Terminal || len(sym.Name) == 0 {
		return 0
	}
	return sym.Name[0]
}

func (sym Symbol) String() string {
	return sym.Name
}

// GoString renders a symbol in a debug notation, e.g. Terminal('a').
func (sym Symbol) GoString() string {
	if sym.Kind == Terminal {
		return fmt.Sprintf("Terminal(%q)", sym.Char())
	}
	return fmt.Sprintf("NonTerminal(%q)", sym.Name)
}

// Production is a rewrite rule LHS → RHS. An empty RHS denotes an
// ε-production.
type Production struct {
	LHS Symbol
	RHS []Symbol
}

// NewProduction creates a production, copying rhs.
func NewProduction(lhs Symbol, rhs ...Symbol) Production {
	p := Production{LHS: lhs}
	if len(rhs) > 0 {
		p.RHS = make([]Symbol, len(rhs))
		copy(p.RHS, rhs)
	}
	return p
}

// IsEpsilon returns true for ε-productions.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

// Equals compares two productions structurally.
func (p Production) Equals(other Production) bool {
	if p.LHS != other.LHS || len(p.RHS) != len(other.RHS) {
		return false
	}
	for i, sym := range p.RHS {
		if sym != other.RHS[i] {
			return false
		}
	}
	return true
}

func (p Production) clone() Production {
	return NewProduction(p.LHS, p.RHS...)
}

func (p Production) String() string {
	var b strings.Builder
	b.WriteString(p.LHS.Name)
	b.WriteString(" → ")
	if p.IsEpsilon() {
		b.WriteString("ε")
		return b.String()
	}
	for _, sym := range p.RHS {
		b.WriteString(sym.Name)
	}
	return b.String()
}
