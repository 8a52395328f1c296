package band

// Node is one element of a chromosome's band specification tree: either a
// leaf band token, or a container label with ordered children representing
// an ISCN merged region (e.g. q22q23q24) that subsumes more specific
// sub-bands.
//
// Order is nomenclature order, p-telomere through centromere to q-telomere,
// and determines which classes are asserted mutually disjoint. A container
// meant for the p arm must place a p-arm child first: the container's
// superclass is inferred from its first leaf. The static band data upholds
// this; it is not validated generically.
type Node struct {
	Token    string
	Children []Node
}

// Leaf returns a leaf node for a single band token.
func Leaf(token string) Node {
	return Node{Token: token}
}

// Container returns a container node with the given label and children.
func Container(label string, children ...Node) Node {
	return Node{Token: label, Children: children}
}

// IsContainer reports whether the node has children.
func (n Node) IsContainer() bool { return len(n.Children) > 0 }

// FirstLeaf returns the token of the first leaf reached by descending
// first children. It reports false for an empty container.
func (n Node) FirstLeaf() (string, bool) {
	cur := n
	for cur.IsContainer() {
		cur = cur.Children[0]
	}
	if cur.Token == "" {
		return "", false
	}
	return cur.Token, true
}
