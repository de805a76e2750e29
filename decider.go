package cfg

// Decider decides membership of strings in the language of a grammar.
//
// Each shipped grammar carries its own decider. A decider need not
// implement exactly the language generated by its grammar; see package bonus
// for a decider of a language which is not context-free.
type Decider interface {
	Grammar() *Grammar   // the grammar this decider belongs to
	Member(s string) bool // is s a member of the language?
}

// DeciderFunc adapts a grammar and a plain predicate to interface Decider.
type DeciderFunc struct {
	G      *Grammar
	Decide func(string) bool
}

var _ Decider = DeciderFunc{}

// Grammar is part of interface Decider.
func (d DeciderFunc) Grammar() *Grammar {
	return d.G
}

// Member is part of interface Decider. A DeciderFunc without a predicate
// rejects every input.
func (d DeciderFunc) Member(s string) bool {
	if d.Decide == nil {
		return false
	}
	accept := d.Decide(s)
	if d.G != nil {
		CT().Debugf("membership of %q in L(%s) = %v", s, d.G.Name(), accept)
	}
	return accept
}
