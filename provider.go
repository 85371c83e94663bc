// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf

import "context"

// Loader is the interface that wraps the basic Load method.
//
// Load loads configuration and returns it as a [Node] tree.
// The root node itself is anonymous; its children and attributes
// carry the loaded configuration.
type Loader interface {
	Load() (*Node, error)
}

// Watcher is the interface that wraps the basic Watch method.
//
// Watch watches the source for changes and calls onChange with the
// freshly loaded tree whenever it changes. It blocks until ctx is done
// or watching fails.
type Watcher interface {
	Watch(ctx context.Context, onChange func(*Node)) error
}
