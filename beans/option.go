// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package beans

// Optional marks the declaration as optional: if the key designates no
// node, construction succeeds with a declaration over an empty synthetic
// node instead of failing. A key designating several nodes still fails.
//
// It is possible to create objects from such an empty declaration if a
// default class is provided to [Helper.Create].
func Optional() Option {
	return func(options *options) {
		options.optional = true
	}
}

// WithNestedBuilder provides the builder used to construct declarations
// for nested complex properties.
//
// By default, nested declarations are TreeDeclarations over the matched
// child view and node.
func WithNestedBuilder(builder NestedBuilder) Option {
	return func(options *options) {
		options.builder = builder
	}
}

// Option configures the construction of a TreeDeclaration.
type Option func(*options)

type options struct {
	optional bool
	builder  NestedBuilder
}
