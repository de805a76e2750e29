package cfg_test

import (
	"fmt"

	"github.com/npillmayer/cfg/balanced"
)

func Example() {
	derivation, ok := balanced.Derive("aaabbb")
	fmt.Println(derivation, ok)
	derivation, ok = balanced.Derive("aabb")
	fmt.Println(derivation, ok)
	// Output:
	// S ⇒ aSb ⇒ aaSbb ⇒ aaabbb true
	// S ⇒ aSb ⇒ aabb true
}
