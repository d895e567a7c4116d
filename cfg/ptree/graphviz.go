package ptree

import (
	"fmt"
	"os"
)

// Tree2GraphViz exports a parse tree to the Graphviz Dot format, given a
// filename. Variables are drawn as filled circles, terminals and epsilon
// leaves as filled boxes. Rendering to an image is left to external
// tooling.
func Tree2GraphViz(root *Node, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		panic(fmt.Sprintf("file open error: %v", err.Error()))
	}
	defer f.Close()
	f.WriteString(`digraph {
graph [rankdir=TB, fontname=Helvetica, fontsize=10];
node [fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	serial := 0
	writeNode(f, root, &serial)
	f.WriteString("}\n")
}

func writeNode(f *os.File, node *Node, serial *int) int {
	id := *serial
	*serial++
	if node.Symbol.IsVariable() {
		f.WriteString(fmt.Sprintf("n%03d [shape=circle, style=filled, fillcolor=lightblue, label=%q]\n",
			id, node.Symbol.String()))
	} else {
		f.WriteString(fmt.Sprintf("n%03d [shape=box, style=filled, fillcolor=lightgrey, label=%q]\n",
			id, node.Symbol.String()))
	}
	for _, ch := range node.Children() {
		chID := writeNode(f, ch, serial)
		f.WriteString(fmt.Sprintf("n%03d -> n%03d\n", id, chID))
	}
	return id
}
