// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package properties parses Java-style properties documents into
// configuration node trees.
//
// Flat keys are split on the delimiter (`.` by default) into nested
// nodes; a final segment starting with `@` becomes an attribute.
// Value references like `key=${other.key}` are expanded by the
// underlying properties reader.
package properties

import (
	"fmt"
	"strings"

	"github.com/magiconair/properties"

	"github.com/hierconf/hierconf"
	"github.com/hierconf/hierconf/internal/tree"
)

// Properties is a Loader that parses an in-memory properties document.
//
// To create a new Properties, call [New].
type Properties struct {
	_         [0]func() // Ensure it's incomparable.
	source    []byte
	delimiter string
}

// New creates a Properties with the given document source and Option(s).
func New(source []byte, opts ...Option) Properties {
	option := &options{source: source}
	for _, opt := range opts {
		opt(option)
	}

	return Properties(*option)
}

func (p Properties) Load() (*hierconf.Node, error) {
	loaded, err := properties.Load(p.source, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("parse properties: %w", err)
	}

	delimiter := p.delimiter
	if delimiter == "" {
		delimiter = "."
	}

	root := hierconf.NewNode("")
	for _, key := range loaded.Keys() {
		// Ignore ok: Keys only returns existing keys.
		value, _ := loaded.Get(key)
		tree.Insert(root, strings.Split(key, delimiter), value)
	}

	return root, nil
}

func (p Properties) String() string {
	return "properties"
}

// Parse parses a properties document into a node tree with the default
// delimiter.
func Parse(data []byte) (*hierconf.Node, error) {
	return New(data).Load()
}
