package cfg

import (
	"github.com/npillmayer/gorgo/lr"
)

// LR converts the grammar into a grammar of package gorgo/lr and returns an
// LR analysis for it. Terminals are given their character value as token
// value. Productions for the start symbol are emitted first, as gorgo
// will take the LHS of the first rule as the start symbol.
//
// The conversion is useful for dumping a grammar and for handing it to
// LR tooling.
func (g *Grammar) LR() (*lr.LRAnalysis, error) {
	b := lr.NewGrammarBuilder(g.name)
	for _, p := range g.ProductionsFor(g.start) {
		addRule(b, p)
	}
	for _, p := range g.productions {
		if p.LHS != g.start {
			addRule(b, p)
		}
	}
	lrg, err := b.Grammar()
	if err != nil {
		CT().Errorf("cannot convert grammar %s: %v", g.name, err)
		return nil, err
	}
	return lr.Analysis(lrg), nil
}

func addRule(b *lr.GrammarBuilder, p Production) {
	if p.IsEpsilon() {
		b.LHS(p.LHS.Name).Epsilon()
		return
	}
	r := b.LHS(p.LHS.Name)
	for _, sym := range p.RHS {
		if sym.IsTerminal() {
			r = r.T(sym.Name, int(sym.Char()))
		} else {
			r = r.N(sym.Name)
		}
	}
	r.End()
}
