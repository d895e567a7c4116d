package derive

import (
	"fmt"
	"os"
)

// Derivation2GraphViz exports a derivation chain to the Graphviz Dot
// format, given a filename: one box per sentential form, connected in step
// order. The initial form is highlighted blue, the final string green.
// Rendering to an image is left to external tooling.
func Derivation2GraphViz(d *Derivation, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		panic(fmt.Sprintf("file open error: %v", err.Error()))
	}
	defer f.Close()
	f.WriteString(`digraph {
graph [rankdir=TB, fontname=Helvetica, fontsize=10];
node [shape=box, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	last := len(d.Steps) - 1
	for i, step := range d.Steps {
		switch i {
		case 0:
			f.WriteString(fmt.Sprintf("step%03d [style=filled, fillcolor=lightblue, label=%q]\n",
				i, step.Form.String()))
		case last:
			f.WriteString(fmt.Sprintf("step%03d [style=filled, fillcolor=lightgreen, label=%q]\n",
				i, step.Form.String()))
		default:
			f.WriteString(fmt.Sprintf("step%03d [label=%q]\n", i, step.Form.String()))
		}
		if i > 0 {
			f.WriteString(fmt.Sprintf("step%03d -> step%03d [label=\"Step %d\"]\n", i-1, i, i))
		}
	}
	f.WriteString("}\n")
}
