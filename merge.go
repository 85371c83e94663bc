// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf

// mergeNodes recursively merges the src tree into the dst tree.
// Conflicts are resolved by preferring src: attributes and scalar values
// override, a uniquely named child on both sides merges recursively,
// and repeated same-named children replace the dst children wholesale
// since there is no meaningful pairing between the two sequences.
//
// src is cloned into dst so that the caller's tree stays untouched.
func mergeNodes(dst, src *Node) {
	if src == nil {
		return
	}

	for _, attr := range src.attributes {
		dst.SetAttribute(attr.name, attr.value)
	}
	if src.value != nil {
		dst.value = src.value
	}

	merged := make(map[string]bool, len(src.children))
	for _, child := range src.children {
		if merged[child.name] {
			continue
		}
		merged[child.name] = true

		srcNamed := src.ChildrenNamed(child.name)
		dstNamed := dst.ChildrenNamed(child.name)
		if len(srcNamed) == 1 && len(dstNamed) == 1 {
			mergeNodes(dstNamed[0], srcNamed[0])

			continue
		}

		for _, named := range dstNamed {
			named.detach()
		}
		for _, named := range srcNamed {
			dst.AppendChild(named.clone())
		}
	}
}
