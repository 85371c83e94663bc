// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf

import "slices"

// Node is a single node of a hierarchical configuration tree.
//
// A node has a name, an optional scalar value, ordered attribute nodes and
// ordered child nodes. Attribute nodes carry scalar metadata (e.g. XML
// attributes) and never have children of their own. Child order follows
// document order of the source the tree was loaded from.
type Node struct {
	name       string
	value      any
	attribute  bool
	parent     *Node
	attributes []*Node
	children   []*Node
}

// NewNode creates a detached element node with the given name.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's name. It is empty for synthetic root nodes.
func (n *Node) Name() string { return n.name }

// Value returns the node's own value, which may be nil.
func (n *Node) Value() any { return n.value }

// SetValue sets the node's own value.
func (n *Node) SetValue(value any) { n.value = value }

// IsAttribute reports whether the node is an attribute node.
func (n *Node) IsAttribute() bool { return n.attribute }

// Parent returns the enclosing node, or nil for a root node.
func (n *Node) Parent() *Node { return n.parent }

// Attributes returns the node's attribute nodes in document order.
func (n *Node) Attributes() []*Node { return slices.Clone(n.attributes) }

// Children returns the node's child element nodes in document order.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// ChildrenNamed returns every child element with the given name,
// in document order. The name is matched literally.
func (n *Node) ChildrenNamed(name string) []*Node {
	var named []*Node
	for _, child := range n.children {
		if child.name == name {
			named = append(named, child)
		}
	}

	return named
}

// Attribute returns the value of the attribute with the given name.
// The name is matched literally. The second return value reports
// whether the attribute exists.
func (n *Node) Attribute(name string) (any, bool) {
	if attr := n.attributeNamed(name); attr != nil {
		return attr.value, true
	}

	return nil, false
}

// AppendChild adds child as the last child element of n.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		panic("cannot append nil node")
	}

	child.parent = n
	n.children = append(n.children, child)
}

// SetAttribute sets the attribute with the given name to value,
// adding the attribute if it does not exist yet.
func (n *Node) SetAttribute(name string, value any) {
	if attr := n.attributeNamed(name); attr != nil {
		attr.value = value

		return
	}

	n.attributes = append(n.attributes, &Node{
		name:      name,
		value:     value,
		attribute: true,
		parent:    n,
	})
}

func (n *Node) attributeNamed(name string) *Node {
	for _, attr := range n.attributes {
		if attr.name == name {
			return attr
		}
	}

	return nil
}

// detach removes n from its parent. It is a no-op for root nodes.
func (n *Node) detach() {
	parent := n.parent
	if parent == nil {
		return
	}

	remove := func(nodes []*Node) []*Node {
		return slices.DeleteFunc(nodes, func(node *Node) bool { return node == n })
	}
	if n.attribute {
		parent.attributes = remove(parent.attributes)
	} else {
		parent.children = remove(parent.children)
	}
	n.parent = nil
}

// clone returns a deep copy of n detached from any parent.
func (n *Node) clone() *Node {
	copied := &Node{
		name:      n.name,
		value:     n.value,
		attribute: n.attribute,
	}
	for _, attr := range n.attributes {
		child := attr.clone()
		child.parent = copied
		copied.attributes = append(copied.attributes, child)
	}
	for _, child := range n.children {
		copiedChild := child.clone()
		copiedChild.parent = copied
		copied.children = append(copied.children, copiedChild)
	}

	return copied
}
