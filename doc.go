/*
Package cfg is a small toolkit for exploring context-free grammars.

Description

A context-free grammar G = (V, Σ, R, S) consists of a set of nonterminals V,
a set of terminals Σ, a list of productions R and a start symbol S ∈ V.
The language of G is the set of all terminal strings derivable from S.

This package holds the data model: Symbol, Production and Grammar.
Concrete grammars live in sub-packages, together with the algorithms
working on them:

■ balanced: the grammar S → aSb | ε, with a random generator for strings
of its language, a deriver reconstructing leftmost derivations, and a
membership decider.

■ bonus: the grammar S → aAbBcC; A → aA | ε; B → bB | ε; C → cC | ε,
together with a decider for { aⁿbⁿcⁿ | n ≥ 1 }. Please note that this
language is not context-free; the grammar over-generates and the decider
intentionally implements the intended language, not the grammar's.

■ entropy: a pool of private random sources for running generators
concurrently.

Grammars are immutable after construction and may be shared between
goroutines without locking.

Grammars may be converted into the grammar type of package
github.com/npillmayer/gorgo/lr, which is useful for dumping and for
feeding them into LR tooling.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Usage

Clients usually do not construct grammars themselves, but use the builders
of the sub-packages:

   g := balanced.Grammar()
   fmt.Println(g)
   derivation, ok := balanced.Derive("aaabbb")   // S ⇒ aSb ⇒ aaSbb ⇒ aaabbb

Every shipped grammar comes with a Decider, which decides membership of
strings in the grammar's (intended) language.
*/
package cfg

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
