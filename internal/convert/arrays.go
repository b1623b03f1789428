package convert

import (
	"xsd-validator-generator/internal/common"
	"xsd-validator-generator/internal/xsd"
)

// ArrayItem returns the repeated element of an array wrapper: a complex
// type without base or attributes whose only element repeats.
func (c *Converter) ArrayItem(t xsd.Type) (*xsd.Element, bool) {
	el, ok := wrapped(t)
	if !ok || !c.IsArrayElement(el) {
		return nil, false
	}

	return el, true
}

// IsArrayType reports whether t is an array wrapper.
func (c *Converter) IsArrayType(t xsd.Type) bool {
	_, ok := c.ArrayItem(t)
	return ok
}

// IsArrayElement reports whether el may occur more than once.
func (c *Converter) IsArrayElement(el *xsd.Element) bool {
	return el != nil && el.IsArray()
}

// IsArrayNestedElement reports whether t wraps a single repeated element
// whose own type is declared inline.
func (c *Converter) IsArrayNestedElement(t xsd.Type) bool {
	el, ok := wrapped(t)

	return ok && c.IsArrayElement(el) && el.Type != nil && el.Type.IsAnonymous()
}

// ResolvesClass visits t and reports whether it resolves to a class or alias.
func (c *Converter) ResolvesClass(t xsd.Type) bool {
	return t != nil && c.hooks.VisitType(t, true) != nil
}

func wrapped(t xsd.Type) (*xsd.Element, bool) {
	ct, ok := t.(*xsd.ComplexType)
	if !ok || ct.Base != nil || !common.IsEmpty(ct.Attributes) {
		return nil, false
	}

	return common.Sole(ct.Elements)
}
