// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package hierconf defines a hierarchical configuration API over a tree of
named nodes with attributes and ordered children, loaded from sources such
as XML, YAML, JSON or properties documents.

It defines a type, [Config], which merges trees from multiple [Loader]
implementations and resolves delimiter-separated keys against the merged
tree. [Config.SubAt] derives a [Sub], a scoped view rooted at a single
node, which resolves names literally. Mutating operations fire paired
[Event] notifications, one before and one after each update, to listeners
registered with [Config.OnChange]; [Config.Watch] keeps the configuration
up to date with sources that support watching.

The beans subpackage reads declarative object descriptions out of
configuration subtrees and instantiates them.
*/
package hierconf
