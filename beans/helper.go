// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package beans

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// Factory creates a bean from a declaration. Custom factories are
// registered with [Helper.RegisterFactory] and selected per declaration
// with the `config-factory` attribute; they can read a parameter from
// the `config-factoryParam` attribute.
type Factory interface {
	Create(declaration Declaration, defaultClass string, helper *Helper) (any, error)
}

// Helper instantiates beans from declarations.
//
// Since Go has no class lookup by name, the types a declaration may name
// in its `config-class` attribute must be registered up front with
// [Helper.RegisterType].
//
// To create a new Helper, call [NewHelper].
type Helper struct {
	types      map[string]reflect.Type
	factories  map[string]Factory
	tagName    string
	decodeHook mapstructure.DecodeHookFunc
	validate   *validator.Validate
}

// NewHelper creates a new Helper with the given HelperOption(s).
func NewHelper(opts ...HelperOption) *Helper {
	helper := &Helper{
		types:     make(map[string]reflect.Type),
		factories: make(map[string]Factory),
	}
	for _, opt := range opts {
		opt(helper)
	}

	return helper
}

// HelperOption configures the given Helper.
type HelperOption func(*Helper)

// WithTagName provides the struct tag name read when decoding bean
// properties.
//
// The default tag name is `hierconf`.
func WithTagName(tagName string) HelperOption {
	return func(helper *Helper) {
		helper.tagName = tagName
	}
}

// WithDecodeHook provides the mapstructure decode hook used when decoding
// bean properties.
func WithDecodeHook(decodeHook mapstructure.DecodeHookFunc) HelperOption {
	return func(helper *Helper) {
		helper.decodeHook = decodeHook
	}
}

// WithValidation validates every created bean against its `validate`
// struct tags.
func WithValidation() HelperOption {
	return func(helper *Helper) {
		helper.validate = validator.New()
	}
}

// RegisterType registers the type of the given prototype value under the
// given name, so that declarations can refer to it with the
// `config-class` attribute. Pointer prototypes are dereferenced.
//
// It panics if the name is empty or the prototype is nil.
func (h *Helper) RegisterType(name string, prototype any) {
	if name == "" {
		panic("cannot register bean type with empty name")
	}
	if prototype == nil {
		panic("cannot register nil bean prototype")
	}

	typ := reflect.TypeOf(prototype)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	h.types[name] = typ
}

// RegisterFactory registers a factory under the given name, so that
// declarations can select it with the `config-factory` attribute.
//
// It panics if the name is empty or the factory is nil.
func (h *Helper) RegisterFactory(name string, factory Factory) {
	if name == "" {
		panic("cannot register bean factory with empty name")
	}
	if factory == nil {
		panic("cannot register nil bean factory")
	}

	h.factories[name] = factory
}

// Create creates a bean from the given declaration. The declaration's
// class name selects the registered type; defaultClass is used when the
// declaration does not name one, which notably allows creating beans
// from empty optional declarations. The bean is returned as a pointer to
// the registered type.
//
// It panics if declaration is nil.
func (h *Helper) Create(declaration Declaration, defaultClass string) (any, error) {
	if declaration == nil {
		panic("cannot create bean from nil declaration")
	}

	factory := Factory(defaultFactory{})
	if name := declaration.BeanFactoryName(); name != "" {
		registered, ok := h.factories[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFactory, name)
		}
		factory = registered
	}

	bean, err := factory.Create(declaration, defaultClass, h)
	if err != nil {
		return nil, err
	}

	if h.validate != nil && bean != nil {
		if value := reflect.Indirect(reflect.ValueOf(bean)); value.Kind() == reflect.Struct {
			if err := h.validate.Struct(bean); err != nil {
				return nil, fmt.Errorf("validate bean: %w", err)
			}
		}
	}

	return bean, nil
}

// defaultFactory builds a fresh value of the declared type, decodes the
// simple properties into it and recursively creates nested beans for the
// complex properties.
type defaultFactory struct{}

func (defaultFactory) Create(declaration Declaration, defaultClass string, helper *Helper) (any, error) {
	className := declaration.BeanClassName()
	if className == "" {
		className = defaultClass
	}
	if className == "" {
		return nil, ErrNoBeanClass
	}

	typ, ok := helper.types[className]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, className)
	}

	bean := reflect.New(typ)
	if err := helper.decodeProperties(declaration.BeanProperties(), bean.Interface()); err != nil {
		return nil, err
	}

	nested, err := declaration.NestedBeanDeclarations()
	if err != nil {
		return nil, err
	}
	for name, entry := range nested {
		if err := helper.initNested(bean.Elem(), name, entry); err != nil {
			return nil, err
		}
	}

	return bean.Interface(), nil
}

func (h *Helper) decodeProperties(properties map[string]any, target any) error {
	decodeHook := h.decodeHook
	if decodeHook == nil {
		decodeHook = defaultDecodeHook
	}
	tagName := h.tagName
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

	if err := decoder.Decode(properties); err != nil {
		return fmt.Errorf("decode bean properties: %w", err)
	}

	return nil
}

// initNested creates the bean(s) for one complex property and sets them
// on the struct field whose name matches the property name, ignoring case.
func (h *Helper) initNested(bean reflect.Value, name string, entry Nested) error {
	field := bean.FieldByNameFunc(func(fieldName string) bool {
		return strings.EqualFold(fieldName, name)
	})
	if !field.IsValid() || !field.CanSet() {
		return fmt.Errorf("bean type %s has no settable field for nested property %q", bean.Type(), name)
	}

	switch declared := entry.(type) {
	case Single:
		child, err := h.Create(declared.Declaration, "")
		if err != nil {
			return err
		}

		return assign(field, child)
	case Multiple:
		if field.Kind() != reflect.Slice {
			return fmt.Errorf("field for repeated nested property %q of %s must be a slice", name, bean.Type())
		}

		slice := reflect.MakeSlice(field.Type(), 0, len(declared))
		for _, declaration := range declared {
			child, err := h.Create(declaration, "")
			if err != nil {
				return err
			}
			element := reflect.New(field.Type().Elem()).Elem()
			if err := assign(element, child); err != nil {
				return err
			}
			slice = reflect.Append(slice, element)
		}
		field.Set(slice)

		return nil
	}

	return nil
}

// assign sets a created bean (a pointer to the registered type) on dst,
// dereferencing when dst holds the value type.
func assign(dst reflect.Value, bean any) error {
	value := reflect.ValueOf(bean)
	if value.Type().AssignableTo(dst.Type()) {
		dst.Set(value)

		return nil
	}
	if value.Kind() == reflect.Pointer && value.Elem().Type().AssignableTo(dst.Type()) {
		dst.Set(value.Elem())

		return nil
	}

	return fmt.Errorf("cannot assign bean of type %s to field of type %s", value.Type(), dst.Type())
}

var (
	// ErrNoBeanClass reports a declaration that names no bean class while
	// no default class was provided.
	ErrNoBeanClass = errors.New("bean declaration names no class and no default class is provided")
	// ErrUnknownClass reports a class name with no registered type.
	ErrUnknownClass = errors.New("bean class is not registered")
	// ErrUnknownFactory reports a factory name with no registered factory.
	ErrUnknownFactory = errors.New("bean factory is not registered")

	defaultDecodeHook = mapstructure.ComposeDecodeHookFunc( //nolint:gochecknoglobals
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
)
