/*
Package cfg implements a model for context-free grammars.

A grammar consists of a set of variables (non-terminals), a set of
terminals, a mapping from variables to ordered production bodies, and a
designated start variable. Production order is relevant: it defines the
priority in which the derivation engine tries alternatives.

Building a Grammar

Grammars are specified using a builder object. Clients declare variables
and terminals, then add productions referring to them. Every call
validates its argument on the spot and rejects without touching the model,
so a loader can report one bad record and decide to continue or abort.

Example:

    b := cfg.NewBuilder("anbn")
    b.AddVariable('S')
    b.AddTerminal('a')
    b.AddTerminal('b')
    b.AddProduction('S', []gocfg.Symbol{gocfg.Term('a'), gocfg.Var('S'), gocfg.Term('b')})
    b.AddProduction('S', []gocfg.Symbol{gocfg.Eps()})
    b.SetStart('S')
    g, err := b.Grammar()

This results in the following trivial grammar:

    g.Dump()

    0: [S] ::= [a S b]
    1: [S] ::= [ε]

The grammar handed out by the builder is read-only. The derivation engine
(package derive) relies on this: independent queries against the same
grammar may run concurrently without coordination.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocfg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gocfg.grammar")
}
