// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package tree provides helpers for building configuration node trees
// from flat key paths.
package tree

import (
	"strings"

	"github.com/hierconf/hierconf"
)

// Insert creates the chain of child nodes for the given path under root
// and sets value on the final node. Existing nodes along the path are
// reused; a final segment starting with `@` becomes an attribute of the
// preceding node. Empty segments are skipped.
func Insert(root *hierconf.Node, path []string, value any) {
	node := root
	for i, segment := range path {
		if segment == "" {
			continue
		}

		if name, ok := strings.CutPrefix(segment, "@"); ok && i == len(path)-1 {
			node.SetAttribute(name, value)

			return
		}

		if named := node.ChildrenNamed(segment); len(named) > 0 {
			node = named[0]

			continue
		}
		child := hierconf.NewNode(segment)
		node.AppendChild(child)
		node = child
	}

	if node != root {
		node.SetValue(value)
	}
}
