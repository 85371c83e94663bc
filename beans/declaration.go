// Copyright (c) 2024 The hierconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package beans reads declarative object descriptions out of configuration
subtrees and instantiates them.

A bean declaration can be contained in an arbitrary configuration element,
for example:

	<personBean config-class="Person" lastName="Doe" firstName="John">
	    <address config-class="Address" street="21st street 11"
	        zip="1234" city="TestCity"/>
	</personBean>

Attributes whose names start with the reserved `config-` prefix carry
metadata: `config-class` names the type of the object to create,
`config-factory` selects a registered [Factory] and `config-factoryParam`
passes a parameter to it. All other attributes are treated as simple
properties of the object. Nested elements describe complex properties,
which are themselves bean declarations of the same format.

[TreeDeclaration] translates one configuration node into these
bean-construction inputs; [Helper] consumes them to build the objects.
*/
package beans

// Reserved attribute names of a bean declaration. Any attribute whose
// name starts with ReservedPrefix carries declaration metadata and is
// never reported as a bean property.
const (
	ReservedPrefix = "config-"

	AttrBeanClass    = ReservedPrefix + "class"
	AttrBeanFactory  = ReservedPrefix + "factory"
	AttrFactoryParam = ReservedPrefix + "factoryParam"
)

// Declaration is the translated view of one configuration node into
// bean-construction inputs.
type Declaration interface {
	// BeanClassName returns the name of the type of the bean to be
	// created, or the empty string if the declaration does not name one.
	BeanClassName() string

	// BeanFactoryName returns the name of the factory that should create
	// the bean, or the empty string for the default factory.
	BeanFactoryName() string

	// BeanFactoryParameter returns the parameter for the bean factory,
	// if available.
	BeanFactoryParameter() any

	// BeanProperties returns the bean's simple properties, collected from
	// all attributes that are not reserved, with values interpolated.
	BeanProperties() map[string]any

	// NestedBeanDeclarations returns declarations for the bean's complex
	// properties, keyed by child element name.
	NestedBeanDeclarations() (map[string]Nested, error)
}

// Nested is a complex-property entry of a bean declaration: either a
// [Single] declaration or a [Multiple] ordered list of declarations for
// repeated same-named child elements. Consumers switch on the two
// variants.
type Nested interface {
	nested()
}

// Single holds the declaration of a complex property declared by exactly
// one child element.
type Single struct {
	Declaration Declaration
}

func (Single) nested() {}

// Multiple holds the declarations of a complex property declared by two
// or more same-named child elements, in document order.
type Multiple []Declaration

func (Multiple) nested() {}
