// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package hierconf

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-viper/mapstructure/v2"

	"github.com/hierconf/hierconf/internal"
)

// Config is a hierarchical configuration loaded from appropriate sources.
//
// To create a new Config, call [New].
type Config struct {
	nocopy internal.NoCopy[Config]

	// Options.
	logger     *slog.Logger
	decodeHook mapstructure.DecodeHookFunc
	tagName    string
	delimiter  string

	// Loaded configuration.
	root      *Node
	providers []*provider

	// For change notification.
	listeners      []listener
	listenersMutex sync.RWMutex
	watched        atomic.Bool
}

// New creates a new Config with the given Option(s).
func New(opts ...Option) *Config {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}

	return (*Config)(option)
}

// Load loads configuration from the given loader.
// Each loader takes precedence over the loaders before it.
// The loaded tree is merged into the current merged tree, so values set
// earlier with [Config.SetProperty] and friends are preserved.
//
// This method can be called multiple times but it is not concurrency-safe.
func (c *Config) Load(loader Loader) error {
	c.nocopy.Check()

	if loader == nil {
		return errNilLoader
	}

	tree, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if tree == nil {
		tree = NewNode("")
	}

	c.providers = append(c.providers, &provider{loader: loader, tree: tree})
	mergeNodes(c.rootNode(), tree)

	return nil
}

// rebuild recomputes the merged tree from all provider trees, discarding
// direct mutations made since loading. Provider trees are never aliased
// into the merged tree so that a watcher can replace them wholesale.
func (c *Config) rebuild() {
	root := NewNode("")
	for _, p := range c.providers {
		mergeNodes(root, p.tree)
	}
	c.root = root
}

func (c *Config) rootNode() *Node {
	if c.root == nil {
		c.root = NewNode("")
	}

	return c.root
}

func (c *Config) split(key string) []string {
	delimiter := c.delimiter
	if delimiter == "" {
		delimiter = "."
	}

	return strings.Split(key, delimiter)
}

// nodesAt resolves a key to every node it designates. Each key segment
// matches child element names literally; a segment starting with `@`
// addresses an attribute of the nodes matched so far.
func (c *Config) nodesAt(key string) []*Node {
	nodes := []*Node{c.rootNode()}
	if key == "" {
		return nodes
	}

	for _, segment := range c.split(key) {
		if segment == "" {
			continue
		}

		var next []*Node
		if name, ok := strings.CutPrefix(segment, "@"); ok {
			for _, node := range nodes {
				if attr := node.attributeNamed(name); attr != nil {
					next = append(next, attr)
				}
			}
		} else {
			for _, node := range nodes {
				next = append(next, node.ChildrenNamed(segment)...)
			}
		}
		nodes = next
	}

	return nodes
}

// Get returns the value under the given key. A key matching a single leaf
// yields its scalar value, a single inner node yields a nested
// map[string]any, and multiple matches yield a []any in document order.
// The second return value reports whether the key matched at all.
func (c *Config) Get(key string) (any, bool) {
	c.nocopy.Check()

	nodes := c.nodesAt(key)
	switch len(nodes) {
	case 0:
		return nil, false
	case 1:
		return nodeValue(nodes[0]), true
	default:
		values := make([]any, 0, len(nodes))
		for _, node := range nodes {
			values = append(values, nodeValue(node))
		}

		return values, true
	}
}

// String returns the value under the given key formatted as a string.
// It returns the empty string if the key is absent.
func (c *Config) String(key string) string {
	value, ok := c.Get(key)
	if !ok || value == nil {
		return ""
	}
	if str, ok := value.(string); ok {
		return str
	}

	return fmt.Sprint(value)
}

// MaxIndex returns the highest index the given key can be addressed with:
// -1 if the key matches nothing, 0 if it matches a single node, and n if
// it matches n+1 nodes. It is the cardinality probe backing optional
// declaration construction.
func (c *Config) MaxIndex(key string) int {
	c.nocopy.Check()

	return len(c.nodesAt(key)) - 1
}

// SubAt returns the scoped view rooted at the single node the given key
// designates. It fails with [ErrNotFound] if the key matches nothing and
// with [ErrAmbiguous] if it matches more than one node. The empty key
// designates the root.
func (c *Config) SubAt(key string) (*Sub, error) {
	c.nocopy.Check()

	nodes := c.nodesAt(key)
	switch len(nodes) {
	case 0:
		return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
	case 1:
		return &Sub{config: c, root: nodes[0]}, nil
	default:
		return nil, fmt.Errorf("key %q matches %d nodes: %w", key, len(nodes), ErrAmbiguous)
	}
}

// Unmarshal reads configuration under the given path from the Config
// and decodes it into the given object pointed to by target.
func (c *Config) Unmarshal(path string, target any) error {
	if c == nil {
		return nil
	}

	c.nocopy.Check()

	decodeHook := c.decodeHook
	if decodeHook == nil {
		decodeHook = defaultDecodeHook
	}
	tagName := c.tagName
	if tagName == "" {
		tagName = "hierconf"
	}
	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook:       decodeHook,
			TagName:          tagName,
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}

	value, _ := c.Get(path)
	if err := decoder.Decode(value); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// SetProperty sets the value of the property under the given key,
// creating the node path if it does not exist and collapsing multiple
// matches down to the first. It fires a before/after pair of
// [EventSetProperty] events.
func (c *Config) SetProperty(key string, value any) {
	c.nocopy.Check()
	if key == "" {
		panic("cannot set property with empty key")
	}

	c.fire(EventSetProperty, key, value, true)
	nodes := c.nodesAt(key)
	if len(nodes) == 0 {
		c.ensurePath(key).SetValue(value)
	} else {
		nodes[0].SetValue(value)
		for _, node := range nodes[1:] {
			node.detach()
		}
	}
	c.fire(EventSetProperty, key, value, false)
}

// AddProperty adds a value for the property under the given key. Unlike
// [Config.SetProperty] it appends a further same-named child when the key
// already exists. It fires a before/after pair of [EventAddProperty] events.
func (c *Config) AddProperty(key string, value any) {
	c.nocopy.Check()
	if key == "" {
		panic("cannot add property with empty key")
	}

	c.fire(EventAddProperty, key, value, true)
	segments := c.split(key)
	last := segments[len(segments)-1]
	parent := c.ensureNodes(segments[:len(segments)-1])
	if name, ok := strings.CutPrefix(last, "@"); ok {
		parent.SetAttribute(name, value)
	} else {
		child := NewNode(last)
		child.SetValue(value)
		parent.AppendChild(child)
	}
	c.fire(EventAddProperty, key, value, false)
}

// ClearProperty removes every node the given key designates. It fires a
// before/after pair of [EventClearProperty] events.
func (c *Config) ClearProperty(key string) {
	c.nocopy.Check()
	if key == "" {
		panic("cannot clear property with empty key")
	}

	c.fire(EventClearProperty, key, nil, true)
	for _, node := range c.nodesAt(key) {
		node.detach()
	}
	c.fire(EventClearProperty, key, nil, false)
}

// Clear removes the whole configuration, including the record of loaded
// providers. It fires a before/after pair of [EventClear] events.
func (c *Config) Clear() {
	c.nocopy.Check()

	c.fire(EventClear, "", nil, true)
	c.root = NewNode("")
	c.providers = nil
	c.fire(EventClear, "", nil, false)
}

func (c *Config) ensurePath(key string) *Node {
	return c.ensureNodes(c.split(key))
}

// ensureNodes walks the first-match chain of the given segments,
// creating missing nodes along the way, and returns the final node.
func (c *Config) ensureNodes(segments []string) *Node {
	node := c.rootNode()
	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if name, ok := strings.CutPrefix(segment, "@"); ok {
			if node.attributeNamed(name) == nil {
				node.SetAttribute(name, nil)
			}
			node = node.attributeNamed(name)

			continue
		}

		if named := node.ChildrenNamed(segment); len(named) > 0 {
			node = named[0]

			continue
		}
		child := NewNode(segment)
		node.AppendChild(child)
		node = child
	}

	return node
}

type provider struct {
	loader Loader
	tree   *Node
}

var (
	errNilLoader = errors.New("cannot load config from nil loader")

	// ErrNotFound reports a key that does not designate any node.
	ErrNotFound = errors.New("key does not map to an existing node")
	// ErrAmbiguous reports a key that designates more than one node.
	ErrAmbiguous = errors.New("key maps to multiple nodes")

	defaultDecodeHook = mapstructure.ComposeDecodeHookFunc( //nolint:gochecknoglobals
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
)
