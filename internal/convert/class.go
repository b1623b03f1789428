package convert

import (
	"slices"
	"strings"

	"xsd-validator-generator/internal/common"
	"xsd-validator-generator/internal/rules"
)

// ValueProperty holds the text content of a class wrapping a simple value.
const ValueProperty = "__value"

// Class is a generated class or a type alias.
type Class struct {
	// Name is the fully qualified class name, or the alias target.
	Name       string
	Alias      bool
	Properties *Properties
}

// NewClass returns a class without properties.
func NewClass(name string) *Class {
	return &Class{Name: name, Properties: NewProperties()}
}

// Namespace returns the namespace part of the class name.
func (c *Class) Namespace() string {
	return common.ClassNamespace(c.Name)
}

// IsGenerated reports whether c is a namespaced class rather than an alias.
func (c *Class) IsGenerated() bool {
	return !c.Alias && strings.Contains(c.Name, common.ClassSeparator)
}

// Clone returns a deep copy of c.
func (c *Class) Clone() *Class {
	out := &Class{Name: c.Name, Alias: c.Alias, Properties: NewProperties()}
	for _, name := range c.Properties.Names() {
		p, _ := c.Properties.Get(name)
		out.Properties.Set(name, p.Clone())
	}

	return out
}

// Property is a class property: its target type and validation rules.
type Property struct {
	Type  string
	Rules []rules.Rule
}

// IsEmpty reports whether p carries neither a type nor rules.
func (p *Property) IsEmpty() bool {
	return p == nil || (p.Type == "" && common.IsEmpty(p.Rules))
}

// Clone returns a copy of p that shares no slices with it.
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}

	return &Property{Type: p.Type, Rules: slices.Clone(p.Rules)}
}

// Properties is a map of properties that remembers insertion order.
type Properties struct {
	names  []string
	byName map[string]*Property
}

// NewProperties returns an empty property map.
func NewProperties() *Properties {
	return &Properties{byName: make(map[string]*Property)}
}

// Get returns the named property.
func (p *Properties) Get(name string) (*Property, bool) {
	prop, ok := p.byName[name]
	return prop, ok
}

// Set stores prop under name. A replaced property keeps its position.
func (p *Properties) Set(name string, prop *Property) {
	if _, ok := p.byName[name]; !ok {
		p.names = append(p.names, name)
	}

	p.byName[name] = prop
}

// Ensure returns the named property, adding an empty one when missing.
func (p *Properties) Ensure(name string) *Property {
	if prop, ok := p.byName[name]; ok && prop != nil {
		return prop
	}

	prop := &Property{}
	p.Set(name, prop)

	return prop
}

// Delete removes the named property.
func (p *Properties) Delete(name string) {
	if _, ok := p.byName[name]; !ok {
		return
	}

	delete(p.byName, name)
	p.names = slices.DeleteFunc(p.names, func(n string) bool { return n == name })
}

// Names returns the property names in insertion order.
func (p *Properties) Names() []string {
	return slices.Clone(p.names)
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.names)
}
