// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package yaml parses YAML documents into configuration node trees.
//
// Mappings become child nodes, sequences become repeated same-named child
// nodes in document order and scalars become node values. A mapping key
// starting with `@` becomes an attribute of the enclosing node.
package yaml

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hierconf/hierconf"
)

// YAML is a Loader that parses an in-memory YAML document.
//
// To create a new YAML, call [New].
type YAML struct {
	_      [0]func() // Ensure it's incomparable.
	source []byte
}

// New creates a YAML with the given document source.
func New(source []byte) YAML {
	return YAML{source: source}
}

func (y YAML) Load() (*hierconf.Node, error) {
	return Parse(y.source)
}

func (y YAML) String() string {
	return "yaml"
}

// Parse parses a YAML document into a node tree.
// The top-level value must be a mapping.
func Parse(data []byte) (*hierconf.Node, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	root := hierconf.NewNode("")
	if document.Kind == 0 || len(document.Content) == 0 {
		return root, nil
	}

	mapping := document.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, errTopLevel
	}
	if err := buildMapping(mapping, root); err != nil {
		return nil, err
	}

	return root, nil
}

func buildMapping(mapping *yaml.Node, into *hierconf.Node) error {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		value := mapping.Content[i+1]

		if name, ok := strings.CutPrefix(key, "@"); ok && value.Kind == yaml.ScalarNode {
			scalar, err := decodeScalar(value)
			if err != nil {
				return err
			}
			into.SetAttribute(name, scalar)

			continue
		}

		if err := buildValue(key, value, into); err != nil {
			return err
		}
	}

	return nil
}

func buildValue(name string, value *yaml.Node, parent *hierconf.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		child := hierconf.NewNode(name)
		parent.AppendChild(child)

		return buildMapping(value, child)
	case yaml.SequenceNode:
		for _, item := range value.Content {
			if err := buildValue(name, item, parent); err != nil {
				return err
			}
		}

		return nil
	default:
		scalar, err := decodeScalar(value)
		if err != nil {
			return err
		}
		child := hierconf.NewNode(name)
		child.SetValue(scalar)
		parent.AppendChild(child)

		return nil
	}
}

func decodeScalar(value *yaml.Node) (any, error) {
	var scalar any
	if err := value.Decode(&scalar); err != nil {
		return nil, fmt.Errorf("decode yaml value: %w", err)
	}

	return scalar, nil
}

var errTopLevel = errors.New("top-level yaml value must be a mapping")
