// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package json parses JSON documents into configuration node trees.
//
// Objects become child nodes, arrays become repeated same-named child
// nodes in document order and primitive values become node values. An
// object key starting with `@` becomes an attribute of the enclosing node.
package json

import (
	"bytes"
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/hierconf/hierconf"
)

// JSON is a Loader that parses an in-memory JSON document.
//
// To create a new JSON, call [New].
type JSON struct {
	_      [0]func() // Ensure it's incomparable.
	source []byte
}

// New creates a JSON with the given document source.
func New(source []byte) JSON {
	return JSON{source: source}
}

func (j JSON) Load() (*hierconf.Node, error) {
	return Parse(j.source)
}

func (j JSON) String() string {
	return "json"
}

// Parse parses a JSON document into a node tree.
// The top-level value must be an object.
func Parse(data []byte) (*hierconf.Node, error) {
	root := hierconf.NewNode("")
	if len(bytes.TrimSpace(data)) == 0 {
		return root, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, errInvalid
	}

	document := gjson.ParseBytes(data)
	if !document.IsObject() {
		return nil, errTopLevel
	}
	buildObject(document, root)

	return root, nil
}

func buildObject(object gjson.Result, into *hierconf.Node) {
	object.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if attr, ok := strings.CutPrefix(name, "@"); ok && !value.IsObject() && !value.IsArray() {
			into.SetAttribute(attr, value.Value())

			return true
		}

		buildValue(name, value, into)

		return true
	})
}

func buildValue(name string, value gjson.Result, parent *hierconf.Node) {
	switch {
	case value.IsObject():
		child := hierconf.NewNode(name)
		parent.AppendChild(child)
		buildObject(value, child)
	case value.IsArray():
		for _, item := range value.Array() {
			buildValue(name, item, parent)
		}
	default:
		child := hierconf.NewNode(name)
		child.SetValue(value.Value())
		parent.AppendChild(child)
	}
}

var (
	errInvalid  = errors.New("invalid json document")
	errTopLevel = errors.New("top-level json value must be an object")
)
