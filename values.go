// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf

// nodeValue converts a node into a plain Go value: a leaf node yields its
// scalar value, anything else yields a nested map[string]any.
func nodeValue(n *Node) any {
	if len(n.children) == 0 && len(n.attributes) == 0 {
		return n.value
	}

	return nodeMap(n)
}

// nodeMap flattens a node's attributes and children into a nested map.
// Repeated same-named children collapse into a []any in document order.
func nodeMap(n *Node) map[string]any {
	values := make(map[string]any, len(n.attributes)+len(n.children))
	for _, attr := range n.attributes {
		values[attr.name] = attr.value
	}
	for _, child := range n.children {
		value := nodeValue(child)
		existing, ok := values[child.name]
		if !ok {
			values[child.name] = value

			continue
		}

		if list, ok := existing.([]any); ok {
			values[child.name] = append(list, value)
		} else {
			values[child.name] = []any{existing, value}
		}
	}

	return values
}
