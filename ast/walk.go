package ast

// Walk traverses a tree in depth-first pre-order and calls f for every
// node. If f returns false, the node's children (and argument values) are
// skipped. Nodes inside template argument values are visited as well.
func Walk(n *Node, f func(*Node) bool) {
	if n == nil {
		return
	}
	if !f(n) {
		return
	}
	if tmpl, ok := n.Payload.(TemplatePayload); ok {
		for _, arg := range tmpl.Args {
			for _, frag := range arg.Value {
				if frag.IsNode() {
					Walk(frag.Node, f)
				}
			}
		}
	}
	for _, c := range n.Children {
		Walk(c, f)
	}
}

// WalkAll applies Walk to a sequence of sibling nodes in order.
func WalkAll(nodes []*Node, f func(*Node) bool) {
	for _, n := range nodes {
		Walk(n, f)
	}
}
