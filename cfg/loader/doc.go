/*
Package loader reads context-free grammars from text.

The accepted format is sectioned, with one record per line. Blank lines
and lines starting with '#' are skipped:

    VARIABLES
    S
    TERMINALS
    a
    b
    PRODUCTIONS
    S -> a S b | epsilon
    START
    S

Production lines list alternatives separated by '|'; symbols are single
characters separated by spaces, and the keyword 'epsilon' denotes the
empty-string body. An empty alternative is read as epsilon as well.

The loader owns all I/O and text-format decisions. It feeds a validating
grammar builder (package cfg) record by record, so interactive frontends
may drive ApplyLine with lines from any source, one at a time, and report
a single bad record without losing the model built so far.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loader

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocfg.loader'.
func tracer() tracing.Trace {
	return tracing.Select("gocfg.loader")
}
