/*
Package derive implements a derivation engine for context-free grammars.

The engine decides whether a target string is derivable from a grammar's
start symbol, using depth-first backtracking over sentential forms. At
every step the first (leftmost) or last (rightmost) variable occurrence of
the current form is rewritten, trying the variable's productions in
declaration order. Search states which have been shown unproductive are
memoized and never retried, which bounds cyclic grammars like A ➞ A.
Exponential blowup on adversarial grammars remains an inherent limitation
of this class of engine; an optional explored-state budget serves as a
safety valve.

Usage

Clients construct a grammar (package cfg), then a Tracer:

    tr := derive.NewTracer(g)
    d, err := tr.Trace("aabb", gocfg.Leftmost)
    if err != nil { ... }             // budget exceeded, if one was set
    if d == nil { ... }               // target is not in the language
    for _, step := range d.Steps {
        fmt.Println("=>", step.Form)
    }

The result is deterministic: for a fixed grammar, target and strategy, the
derivation found is determined solely by production declaration order and
scan direction. A Derivation carries the expansion edges used at each step,
from which package ptree reconstructs a parse tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package derive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocfg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gocfg.grammar")
}
