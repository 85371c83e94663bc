// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package xml parses XML documents into configuration node trees.
//
// Element attributes become attribute nodes, nested elements become child
// nodes and character data becomes the node value. When the document has a
// single document element, that element becomes the tree root, so keys are
// resolved relative to it.
package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hierconf/hierconf"
)

// XML is a Loader that parses an in-memory XML document.
//
// To create a new XML, call [New].
type XML struct {
	_      [0]func() // Ensure it's incomparable.
	source []byte
}

// New creates an XML with the given document source.
func New(source []byte) XML {
	return XML{source: source}
}

func (x XML) Load() (*hierconf.Node, error) {
	return Parse(x.source)
}

func (x XML) String() string {
	return "xml"
}

// Parse parses an XML document into a node tree.
func Parse(data []byte) (*hierconf.Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	root := hierconf.NewNode("")
	stack := []*hierconf.Node{root}
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := hierconf.NewNode(t.Name.Local)
			for _, attr := range t.Attr {
				node.SetAttribute(attr.Name.Local, attr.Value)
			}
			stack[len(stack)-1].AppendChild(node)
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if text := strings.TrimSpace(string(t)); text != "" {
				stack[len(stack)-1].SetValue(text)
			}
		}
	}

	// The document element is the configuration root.
	if children := root.Children(); len(children) == 1 {
		return children[0], nil
	}

	return root, nil
}
