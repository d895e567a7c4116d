/*
Package ptree builds parse trees from recorded expansion edges.

A successful trace (package derive) records one edge per substitution, in
the order the derivation strategy visited them. Rebuilding the tree is
therefore exact and needs no reconstruction heuristics: the next edge
always expands the first (leftmost trace) or last (rightmost trace)
pending variable node, mirroring how the trace rewrote one variable
occurrence of the sentential form at a time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ptree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/gocfg"
	"github.com/npillmayer/gocfg/cfg/derive"
)

// tracer traces with key 'gocfg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gocfg.grammar")
}

// ErrInconsistentEdges flags an edge list which does not describe a
// complete derivation from the given start symbol. This is a programming
// contract violation of the producer of the edges, never a user-input
// condition. It is fatal to the current query only.
var ErrInconsistentEdges = errors.New("inconsistent expansion edges")

// Node is a node of a rooted ordered parse tree. Children are owned
// exclusively by their parent; the tree has no back-edges and no sharing.
// The root node's symbol is always the grammar's start variable.
type Node struct {
	Symbol   gocfg.Symbol
	children []*Node
}

// Children returns the ordered children of a node. Terminal and epsilon
// nodes are always leaves.
func (node *Node) Children() []*Node {
	return node.children
}

// IsLeaf returns true for nodes without children.
func (node *Node) IsLeaf() bool {
	return len(node.children) == 0
}

// Leaves concatenates the terminal leaves of the subtree, read left to
// right. Epsilon leaves contribute nothing. For a tree built from a
// successful trace this is exactly the derived target string.
func (node *Node) Leaves() string {
	var b strings.Builder
	node.collectLeaves(&b)
	return b.String()
}

func (node *Node) collectLeaves(b *strings.Builder) {
	if node.IsLeaf() {
		if node.Symbol.IsTerminal() {
			b.WriteRune(node.Symbol.Char)
		}
		return
	}
	for _, ch := range node.children {
		ch.collectLeaves(b)
	}
}

func (node *Node) String() string {
	return fmt.Sprintf("(node %s | [%d])", node.Symbol, len(node.children))
}

// Build consumes the edge list of a successful trace and constructs the
// parse tree. strat must be the strategy the trace ran with: a leftmost
// trace expands the oldest pending variable occurrence, a rightmost trace
// the newest. Given a well-formed edge list this operation cannot fail;
// malformed input is signalled as ErrInconsistentEdges.
func Build(edges []derive.Edge, start gocfg.Symbol, strat gocfg.Strategy) (*Node, error) {
	root := &Node{Symbol: start}
	pending := []*Node{root} // unattached variable nodes, in sentential-form order
	for _, edge := range edges {
		if len(pending) == 0 {
			return nil, inconsistent("edge [%s] has no pending occurrence left", edge.Head)
		}
		at := 0
		if strat == gocfg.Rightmost {
			at = len(pending) - 1
		}
		parent := pending[at]
		if parent.Symbol != edge.Head {
			return nil, inconsistent("edge [%s] does not match pending occurrence [%s]",
				edge.Head, parent.Symbol)
		}
		children := make([]*Node, len(edge.Children))
		var produced []*Node // children which are variables, awaiting expansion
		for i, sym := range edge.Children {
			children[i] = &Node{Symbol: sym}
			if sym.IsVariable() {
				produced = append(produced, children[i])
			}
		}
		parent.children = children
		// the produced variables take the parent's place in form order
		rest := append(produced, pending[at+1:]...)
		pending = append(pending[:at], rest...)
	}
	if len(pending) > 0 {
		return nil, inconsistent("%d pending occurrences left unexpanded", len(pending))
	}
	tracer().Debugf("built parse tree for %s, %d substitutions", start, len(edges))
	return root, nil
}

func inconsistent(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	tracer().Errorf("parse tree: %s", msg)
	if gconf.GetBool("panic-on-inconsistent-edges") {
		panic(`Parse tree edges are inconsistent.

Configuration flag panic-on-inconsistent-edges is set to true. It is aimed at
helping to debug a tracer and do a post-mortem of why its edge recording went
wrong. However, if this is a production environment and you did not expect
this to panic, please unset panic-on-inconsistent-edges to its default (false).

` + msg)
	}
	return fmt.Errorf("%s: %w", msg, ErrInconsistentEdges)
}
