// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf

import "fmt"

// Sub is a scoped view of a [Config] rooted at a specific node.
//
// Unlike Config keys, Sub lookups interpret names literally: there is no
// delimiter splitting and no attribute syntax, so names containing special
// characters are matched exactly. Lookups never fail; an absent name
// yields an absent value.
type Sub struct {
	config *Config
	root   *Node
}

// Root returns the node the view is rooted at.
func (s *Sub) Root() *Node { return s.root }

// Config returns the configuration the view was derived from.
// It serves as the variable-resolution context for interpolation.
func (s *Sub) Config() *Config { return s.config }

// Get returns the value stored under the given literal name: the value of
// the attribute with that name if one exists, otherwise the value of the
// child element(s) with that name. Multiple same-named children yield a
// []any in document order. The second return value reports whether the
// name matched at all.
func (s *Sub) Get(name string) (any, bool) {
	if value, ok := s.root.Attribute(name); ok {
		return value, true
	}

	named := s.root.ChildrenNamed(name)
	switch len(named) {
	case 0:
		return nil, false
	case 1:
		return nodeValue(named[0]), true
	default:
		values := make([]any, 0, len(named))
		for _, node := range named {
			values = append(values, nodeValue(node))
		}

		return values, true
	}
}

// String returns the value stored under the given literal name formatted
// as a string, or the empty string if the name is absent.
func (s *Sub) String(name string) string {
	value, ok := s.Get(name)
	if !ok || value == nil {
		return ""
	}
	if str, ok := value.(string); ok {
		return str
	}

	return fmt.Sprint(value)
}

// SubsNamed returns a scoped view for every child element with the given
// literal name, in document order.
func (s *Sub) SubsNamed(name string) []*Sub {
	named := s.root.ChildrenNamed(name)
	subs := make([]*Sub, 0, len(named))
	for _, node := range named {
		subs = append(subs, &Sub{config: s.config, root: node})
	}

	return subs
}
