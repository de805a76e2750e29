package cfg

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGrammar is returned (wrapped) by NewGrammar if a grammar violates
// one of the structural invariants of a CFG.
var ErrInvalidGrammar = errors.New("invalid grammar")

// Grammar is an immutable context-free grammar. It holds a set of
// nonterminals, a set of terminals, a start symbol and an ordered list of
// productions.
//
// A Grammar is created once and never mutated afterwards. All accessors
// return copies, therefore a Grammar may be shared freely between goroutines.
type Grammar struct {
	name         string
	nonterminals []Symbol
	terminals    []Symbol
	start        Symbol
	productions  []Production
}

// NewGrammar creates a grammar from its parts. Slices are copied, symbol
// sets are de-duplicated while keeping their order.
//
// NewGrammar checks that
//
//  - the start symbol is a member of the set of nonterminals,
//  - every LHS of every production is a member of the set of nonterminals,
//  - every terminal in any RHS is a member of the set of terminals,
//  - every nonterminal in any RHS is a member of the set of nonterminals.
//
// If any of these does not hold, an error wrapping ErrInvalidGrammar is returned.
func NewGrammar(name string, nonterminals, terminals []Symbol, start Symbol,
	productions []Production) (*Grammar, error) {
	//
	g := &Grammar{name: name, start: start}
	var err error
	if g.nonterminals, err = symbolSet(nonterminals, NonTerminal); err != nil {
		return nil, err
	}
	if g.terminals, err = symbolSet(terminals, Terminal); err != nil {
		return nil, err
	}
	if !start.IsNonTerminal() || !contains(g.nonterminals, start) {
		return nil, fmt.Errorf("%w: start symbol %#v is not a nonterminal of the grammar",
			ErrInvalidGrammar, start)
	}
	g.productions = make([]Production, len(productions))
	for i, p := range productions {
		if err = g.checkProduction(p); err != nil {
			return nil, fmt.Errorf("%w: production #%d (%s): %s", ErrInvalidGrammar, i, p, err.Error())
		}
		g.productions[i] = p.clone()
	}
	CT().Debugf("created grammar %s with %d production(s)", g.name, len(g.productions))
	return g, nil
}

// MustGrammar is like NewGrammar, but panics on an invalid grammar. It is
// intended for initializing built-in grammars.
func MustGrammar(name string, nonterminals, terminals []Symbol, start Symbol,
	productions []Production) *Grammar {
	//
	g, err := NewGrammar(name, nonterminals, terminals, start, productions)
	if err != nil {
		panic(err)
	}
	return g
}

func symbolSet(syms []Symbol, kind Kind) ([]Symbol, error) {
	set := make([]Symbol, 0, len(syms))
	for _, sym := range syms {
		if sym.Kind != kind {
			return nil, fmt.Errorf("%w: symbol %#v in set of %s symbols", ErrInvalidGrammar, sym, kind)
		}
		if sym.Name == "" || (kind == Terminal && len(sym.Name) != 1) {
			return nil, fmt.Errorf("%w: malformed symbol %#v", ErrInvalidGrammar, sym)
		}
		if !contains(set, sym) {
			set = append(set, sym)
		}
	}
	return set, nil
}

func (g *Grammar) checkProduction(p Production) error {
	if !p.LHS.IsNonTerminal() || !contains(g.nonterminals, p.LHS) {
		return fmt.Errorf("LHS %#v is not a nonterminal of the grammar", p.LHS)
	}
	for _, sym := range p.RHS {
		if sym.IsTerminal() && !contains(g.terminals, sym) {
			return fmt.Errorf("terminal %#v is not a terminal of the grammar", sym)
		}
		if sym.IsNonTerminal() && !contains(g.nonterminals, sym) {
			return fmt.Errorf("nonterminal %#v is not a nonterminal of the grammar", sym)
		}
	}
	return nil
}

func contains(set []Symbol, sym Symbol) bool {
	for _, s := range set {
		if s == sym {
			return true
		}
	}
	return false
}

// Name returns the name of the grammar.
func (g *Grammar) Name() string {
	return g.name
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// NonTerminals returns the set of nonterminals, in order of declaration.
func (g *Grammar) NonTerminals() []Symbol {
	return append([]Symbol(nil), g.nonterminals...)
}

// Terminals returns the set of terminals, in order of declaration.
func (g *Grammar) Terminals() []Symbol {
	return append([]Symbol(nil), g.terminals...)
}

// IsTerminal checks whether c is a character of the terminal alphabet.
func (g *Grammar) IsTerminal(c byte) bool {
	return contains(g.terminals, T(c))
}

// Productions returns the list of productions, in order of declaration.
func (g *Grammar) Productions() []Production {
	prods := make([]Production, len(g.productions))
	for i, p := range g.productions {
		prods[i] = p.clone()
	}
	return prods
}

// ProductionsFor returns all productions with left hand side lhs.
func (g *Grammar) ProductionsFor(lhs Symbol) []Production {
	var prods []Production
	for _, p := range g.productions {
		if p.LHS == lhs {
			prods = append(prods, p.clone())
		}
	}
	return prods
}

// String renders the grammar in a multi-line, human readable form.
func (g *Grammar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grammar %s {\n", g.name)
	fmt.Fprintf(&b, "    nonterminals: %s,\n", symbolList(g.nonterminals))
	fmt.Fprintf(&b, "    terminals:    %s,\n", symbolList(g.terminals))
	fmt.Fprintf(&b, "    start symbol: %#v,\n", g.start)
	b.WriteString("    productions: [\n")
	for _, p := range g.productions {
		fmt.Fprintf(&b, "        %s,\n", p)
	}
	b.WriteString("    ],\n}")
	return b.String()
}

func symbolList(syms []Symbol) string {
	names := make([]string, len(syms))
	for i, sym := range syms {
		names[i] = fmt.Sprintf("%#v", sym)
	}
	return "[" + strings.Join(names, ", ") + "]"
}
