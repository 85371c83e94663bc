// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package properties

// WithDelimiter provides the delimiter used when splitting property keys
// into nested node names.
//
// The default delimiter is `.`, which splits keys like `parent.child.key`.
func WithDelimiter(delimiter string) Option {
	return func(options *options) {
		options.delimiter = delimiter
	}
}

type (
	// Option configures a Properties with specific options.
	Option  func(*options)
	options Properties
)
