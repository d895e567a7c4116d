package ptree

// Listener is a type for walking a parse tree. Enter is called before a
// node's children are visited and may return false to skip the subtree;
// Exit is called after. Children are visited left to right.
type Listener interface {
	Enter(node *Node, level int) bool
	Exit(node *Node, level int)
}

// Walk traverses the subtree below node top-down, applying the
// listener's methods for every node encountered.
func (node *Node) Walk(listener Listener) {
	node.walk(listener, 0)
}

func (node *Node) walk(listener Listener, level int) {
	if listener.Enter(node, level) {
		for _, ch := range node.children {
			ch.walk(listener, level+1)
		}
	}
	listener.Exit(node, level)
}
