// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package beans

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hierconf/hierconf"
)

// TreeDeclaration is a [Declaration] backed by one node of a hierarchical
// configuration. It derives a scoped view for the node and reads class
// name, factory selection, simple properties and nested declarations from
// it on demand.
//
// To create a new TreeDeclaration, call [New] or [NewAt].
type TreeDeclaration struct {
	view    *hierconf.Sub
	node    *hierconf.Node
	builder NestedBuilder
}

// NestedBuilder constructs the declaration for a child node during
// [Declaration.NestedBeanDeclarations]. Alternate declaration flavors can
// provide their own builder to reuse the traversal while changing how
// child declarations are created.
type NestedBuilder interface {
	BuildNested(view *hierconf.Sub, node *hierconf.Node) (Declaration, error)
}

// BuilderFunc adapts a function to the [NestedBuilder] interface.
type BuilderFunc func(view *hierconf.Sub, node *hierconf.Node) (Declaration, error)

func (f BuilderFunc) BuildNested(view *hierconf.Sub, node *hierconf.Node) (Declaration, error) {
	return f(view, node)
}

// ErrUnmatchedNode reports that a child node could not be matched back to
// any scoped child view. It indicates the backing tree changed between
// traversal steps, which is out of contract.
var ErrUnmatchedNode = errors.New("cannot match node to a scoped view")

// New creates a TreeDeclaration from the node the given key designates.
//
// The key must designate exactly one node, or construction fails: with an
// error wrapping [hierconf.ErrNotFound] if it matches nothing and
// [hierconf.ErrAmbiguous] if it matches more than one node. With the
// [Optional] option a key matching nothing yields a declaration over an
// empty synthetic node instead; a key matching several nodes still fails.
// The empty key designates the configuration root.
//
// It panics if config is nil.
func New(config *hierconf.Config, key string, opts ...Option) (*TreeDeclaration, error) {
	if config == nil {
		panic("cannot create bean declaration from nil configuration")
	}

	option := &options{}
	for _, opt := range opts {
		opt(option)
	}

	if option.optional && config.MaxIndex(key) < 0 {
		view, err := config.SubAt("")
		if err != nil {
			return nil, fmt.Errorf("resolve configuration root: %w", err)
		}

		return &TreeDeclaration{view: view, node: hierconf.NewNode(""), builder: option.builder}, nil
	}

	view, err := config.SubAt(key)
	if err != nil {
		return nil, fmt.Errorf("resolve bean declaration at %q: %w", key, err)
	}

	return &TreeDeclaration{view: view, node: view.Root(), builder: option.builder}, nil
}

// NewAt creates a TreeDeclaration from an explicit scoped view and the
// node containing the declaration. It is used for the recursive
// construction of nested declarations.
//
// It panics if view or node is nil.
func NewAt(view *hierconf.Sub, node *hierconf.Node, opts ...Option) *TreeDeclaration {
	if view == nil {
		panic("cannot create bean declaration from nil view")
	}
	if node == nil {
		panic("cannot create bean declaration from nil node")
	}

	option := &options{}
	for _, opt := range opts {
		opt(option)
	}

	return &TreeDeclaration{view: view, node: node, builder: option.builder}
}

// View returns the scoped view the declaration is based on.
func (d *TreeDeclaration) View() *hierconf.Sub { return d.view }

// Node returns the node that contains the bean declaration.
func (d *TreeDeclaration) Node() *hierconf.Node { return d.node }

// BeanClassName returns the value of the `config-class` attribute,
// or the empty string if it is not present.
func (d *TreeDeclaration) BeanClassName() string {
	return d.view.String(AttrBeanClass)
}

// BeanFactoryName returns the value of the `config-factory` attribute,
// or the empty string if it is not present.
func (d *TreeDeclaration) BeanFactoryName() string {
	return d.view.String(AttrBeanFactory)
}

// BeanFactoryParameter returns the value of the `config-factoryParam`
// attribute, or nil if it is not present.
func (d *TreeDeclaration) BeanFactoryParameter() any {
	value, _ := d.view.Get(AttrFactoryParam)

	return value
}

// BeanProperties returns a map with the bean's simple properties,
// collected from all attribute nodes that are not reserved. Values are
// interpolated against the enclosing configuration.
func (d *TreeDeclaration) BeanProperties() map[string]any {
	properties := make(map[string]any)
	for _, attr := range d.node.Attributes() {
		if isReserved(attr) {
			continue
		}
		properties[attr.Name()] = d.interpolate(attr.Value())
	}

	return properties
}

// NestedBeanDeclarations returns declarations for the bean's complex
// properties, obtained from the non-reserved child nodes of the
// declaration's node. A name used by exactly one child yields a [Single];
// repeated same-named children yield a [Multiple] in document order.
func (d *TreeDeclaration) NestedBeanDeclarations() (map[string]Nested, error) {
	builder := d.builder
	if builder == nil {
		builder = BuilderFunc(d.buildNested)
	}

	nested := make(map[string]Nested)
	for _, child := range d.node.Children() {
		if isReserved(child) {
			continue
		}

		declaration, err := builder.BuildNested(d.view, child)
		if err != nil {
			return nil, err
		}

		switch existing := nested[child.Name()].(type) {
		case nil:
			nested[child.Name()] = Single{Declaration: declaration}
		case Single:
			nested[child.Name()] = Multiple{existing.Declaration, declaration}
		case Multiple:
			nested[child.Name()] = append(existing, declaration)
		}
	}

	return nested, nil
}

// buildNested locates, among the view's children matching the node's
// name, the one whose root is exactly this node, and constructs a
// declaration over that pair. The match assumes the backing tree is not
// mutated between child iteration and view re-resolution.
func (d *TreeDeclaration) buildNested(view *hierconf.Sub, node *hierconf.Node) (Declaration, error) {
	subs := view.SubsNamed(node.Name())
	if len(subs) == 1 {
		return NewAt(subs[0], node), nil
	}

	for _, sub := range subs {
		if sub.Root() == node {
			return NewAt(sub, node), nil
		}
	}

	return nil, fmt.Errorf("node %q: %w", node.Name(), ErrUnmatchedNode)
}

// interpolate substitutes variable references in the given value against
// the enclosing configuration.
func (d *TreeDeclaration) interpolate(value any) any {
	return hierconf.Interpolate(value, d.view.Config())
}

// isReserved checks whether the given node carries declaration metadata
// rather than a bean property: it is an attribute node whose name is
// absent or starts with the reserved prefix.
func isReserved(node *hierconf.Node) bool {
	return node.IsAttribute() &&
		(node.Name() == "" || strings.HasPrefix(node.Name(), ReservedPrefix))
}

var _ Declaration = (*TreeDeclaration)(nil)
