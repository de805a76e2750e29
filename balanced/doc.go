/*
Package balanced implements the grammar of balanced a/b-strings

   S → aSb | ε

which generates the language { aⁿbⁿ | n ≥ 0 }.

Besides the grammar itself, the package offers three operations on it:

■ Generate produces random strings of the language by unfolding S
top-down with a fair coin.

■ Derive reconstructs the leftmost derivation of a string, i.e. the
sequence of sentential forms S ⇒ aSb ⇒ … ⇒ aⁿbⁿ.

■ Membership decides if a string is a member of the language.

As S → aSb is the only recursive production, the leftmost and the rightmost
derivation of a string coincide. Derive peels one 'a' from the front and
one 'b' from the back of the input per step. It does not perform a general
search for derivations and must not be used for other grammars.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package balanced

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
