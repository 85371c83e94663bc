// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fs

import "github.com/hierconf/hierconf"

// WithParser provides the function that parses the file content into a
// node tree.
//
// The default parser is chosen by the file extension.
func WithParser(parser func([]byte) (*hierconf.Node, error)) Option {
	return func(options *options) {
		options.parser = parser
	}
}

type (
	// Option configures an FS with specific options.
	Option  func(*options)
	options FS
)
