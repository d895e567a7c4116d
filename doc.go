/*
Package gocfg is a toolbox for context-free grammars.

GoCFG models a CFG and answers three questions about it: is a given string
derivable from the start symbol, what is a leftmost or rightmost derivation
sequence producing it, and what parse tree corresponds to that derivation.
Package structure is as follows:

■ cfg: Package cfg implements the grammar model, together with a builder
object for incremental, validating construction.

■ cfg/derive: Package derive implements the derivation engine, a
backtracking search over sentential forms, and a tracer recording
derivation steps and expansion edges.

■ cfg/ptree: Package ptree builds parse trees from recorded expansion
edges and offers tree walking and export.

■ cfg/loader: Package loader reads grammars from the sectioned text format
or record-by-record from interactive input.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gocfg
