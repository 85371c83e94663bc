// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package env loads configuration from environment variables.
//
// Env loads all environment variables and builds a node tree by splitting
// the names by `_` and lowercasing the segments. E.g. the environment
// variable `PARENT_CHILD_KEY="1"` is loaded as a `parent.child.key` node
// with value "1". The environment variables with empty value are treated
// as unset.
//
// The default behavior can be changed with following options:
//   - WithPrefix only loads environment variables with the given prefix in the name.
//   - WithNameSplitter provides the function that splits variable names into node names.
package env

import (
	"os"
	"strings"

	"github.com/hierconf/hierconf"
	"github.com/hierconf/hierconf/internal/tree"
)

// Env is a Loader that loads configuration from environment variables.
type Env struct {
	_        [0]func() // Ensure it's incomparable.
	prefix   string
	splitter func(string) []string
}

// New returns an Env with the given Option(s).
func New(opts ...Option) Env {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}

	return Env(*option)
}

func (e Env) Load() (*hierconf.Node, error) {
	splitter := e.splitter
	if splitter == nil {
		splitter = func(name string) []string {
			return strings.Split(strings.ToLower(name), "_")
		}
	}

	root := hierconf.NewNode("")
	for _, env := range os.Environ() {
		if e.prefix != "" && !strings.HasPrefix(env, e.prefix) {
			continue
		}

		name, value, _ := strings.Cut(env, "=")
		if value == "" {
			// The environment variable with empty value is treated as unset.
			continue
		}

		if keys := splitter(name); len(keys) > 0 {
			tree.Insert(root, keys, value)
		}
	}

	return root, nil
}

func (e Env) String() string {
	if e.prefix == "" {
		return "env"
	}

	return "env:" + e.prefix
}
