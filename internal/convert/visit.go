package convert

import (
	"github.com/untillpro/goutils/logger"

	"xsd-validator-generator/internal/common"
	"xsd-validator-generator/internal/xsd"
)

// VisitType calls BaseVisitType.
func (c *Converter) VisitType(t xsd.Type, force bool) *Class {
	return c.BaseVisitType(t, force)
}

// VisitSimpleType calls BaseVisitSimpleType.
func (c *Converter) VisitSimpleType(cls *Class, t *xsd.SimpleType, name string) {
	c.BaseVisitSimpleType(cls, t, name)
}

// VisitElement calls BaseVisitElement.
func (c *Converter) VisitElement(cls *Class, el *xsd.Element, arrayize bool) *Property {
	return c.BaseVisitElement(cls, el, arrayize)
}

// VisitAttribute calls BaseVisitAttribute.
func (c *Converter) VisitAttribute(cls *Class, attr *xsd.Attribute) *Property {
	return c.BaseVisitAttribute(cls, attr)
}

// HandleClassExtension calls BaseHandleClassExtension.
func (c *Converter) HandleClassExtension(cls *Class, base xsd.Type, parentName string) {
	c.BaseHandleClassExtension(cls, base, parentName)
}

// BaseVisitType returns the class of t, building it on first visit.
//
// Aliased types yield an alias class. Simple types, types of the built-in
// namespaces and, without force, array wrapper types are visited but
// skipped in Types. Forcing an already visited complex type un-skips it.
func (c *Converter) BaseVisitType(t xsd.Type, force bool) *Class {
	if t == nil {
		return nil
	}

	skip := isBaseNamespace(t.Namespace())

	e, ok := c.entries[t]
	if !ok {
		e = &entry{}
		c.register(t, e)

		if alias := c.TypeAlias(t); alias != "" {
			e.class = &Class{Name: alias, Alias: true, Properties: NewProperties()}
			e.skip = true

			return e.class
		}

		e.class = NewClass(c.className(t))
		logger.Verbose("visiting type", xsd.TypeName(t).String(), "as", e.class.Name)

		c.visitTypeBase(e.class, t, t.Name())

		switch {
		case isSimple(t):
			e.skip = true
		case !force && (c.IsArrayType(t) || c.IsArrayNestedElement(t)):
			e.skip = true
		default:
			e.skip = skip
		}
	} else if force && !isSimple(t) && c.TypeAlias(t) == "" {
		e.skip = skip
	}

	return e.class
}

// visitTypeAnonymous builds the class of an anonymous type declared by the
// item parentName inside parent.
func (c *Converter) visitTypeAnonymous(t xsd.Type, parentName string, parent *Class) *Class {
	if e, ok := c.entries[t]; ok {
		return e.class
	}

	name := common.JoinClass(parent.Namespace(),
		c.naming.AnonymousTypeName(common.ClassBase(parent.Name), parentName))

	e := &entry{class: NewClass(name), skip: isSimple(t)}
	c.register(t, e)

	logger.Verbose("visiting anonymous type of", parentName, "as", name)

	c.visitTypeBase(e.class, t, parentName)

	return e.class
}

// ResolveClass returns the class of t. Anonymous types are named after the
// item that declares them inside parent.
func (c *Converter) ResolveClass(t xsd.Type, itemName string, parent *Class) *Class {
	if t == nil {
		return nil
	}

	if t.IsAnonymous() && parent != nil {
		return c.visitTypeAnonymous(t, itemName, parent)
	}

	return c.hooks.VisitType(t, true)
}

// FindClass returns the class of the type of el declared inside cls.
func (c *Converter) FindClass(cls *Class, el *xsd.Element) *Class {
	if el.Type == nil {
		return nil
	}

	if el.Type.IsAnonymous() {
		return c.visitTypeAnonymous(el.Type, el.Name, cls)
	}

	return c.hooks.VisitType(el.Type, false)
}

func (c *Converter) visitTypeBase(cls *Class, t xsd.Type, name string) {
	switch t := t.(type) {
	case *xsd.ComplexType:
		c.visitBaseComplexType(cls, t, name)

		if !t.SimpleContent {
			c.visitComplexType(cls, t)
		}
	case *xsd.SimpleType:
		c.hooks.VisitSimpleType(cls, t, name)
	}
}

func (c *Converter) visitBaseComplexType(cls *Class, t *xsd.ComplexType, name string) {
	if t.Base != nil {
		c.hooks.HandleClassExtension(cls, t.Base, name)
	}

	for _, attr := range t.Attributes {
		cls.Properties.Set(c.naming.PropertyName(attr.Name), c.hooks.VisitAttribute(cls, attr))
	}
}

func (c *Converter) visitComplexType(cls *Class, t *xsd.ComplexType) {
	for _, el := range t.Elements {
		cls.Properties.Set(c.naming.PropertyName(el.Name), c.hooks.VisitElement(cls, el, true))
	}
}

// BaseVisitSimpleType extends cls from the restriction base of t, or from
// the first member of a union.
func (c *Converter) BaseVisitSimpleType(cls *Class, t *xsd.SimpleType, name string) {
	if r := t.Restriction(); r != nil && r.Base != nil {
		c.hooks.HandleClassExtension(cls, r.Base, name)
		return
	}

	if member, ok := common.First(t.Union); ok {
		c.hooks.HandleClassExtension(cls, member, name+"0")
	}
}

// BaseVisitElement returns a property typed with the class or alias of
// the element type; repeated elements and array wrappers are typed
// array<item>.
func (c *Converter) BaseVisitElement(cls *Class, el *xsd.Element, arrayize bool) *Property {
	prop := &Property{}

	if target := c.FindClass(cls, el); target != nil {
		prop.Type = target.Name
	}

	if isSimple(el.Type) {
		if value := c.TypeHasValue(el.Type, cls, el.Name); value != "" {
			prop.Type = value
		}
	}

	if !arrayize {
		return prop
	}

	if item, ok := c.ArrayItem(el.Type); ok {
		if target := c.FindClass(cls, item); target != nil {
			prop.Type = arrayOf(target.Name)
		}
	} else if c.IsArrayElement(el) {
		prop.Type = arrayOf(prop.Type)
	}

	return prop
}

// BaseVisitAttribute returns a property typed with the value type of the
// attribute type.
func (c *Converter) BaseVisitAttribute(cls *Class, attr *xsd.Attribute) *Property {
	prop := &Property{Type: c.TypeHasValue(attr.Type, cls, attr.Name)}

	if prop.Type == "" {
		if target := c.ResolveClass(attr.Type, attr.Name, cls); target != nil {
			prop.Type = target.Name
		}
	}

	return prop
}

// BaseHandleClassExtension gives cls the value property of base.
//
// An aliased base becomes a __value of the alias type. Otherwise base is
// visited: a lone __value is inherited as is, and a simple base without
// one gets a __value typed after its value type.
func (c *Converter) BaseHandleClassExtension(cls *Class, base xsd.Type, parentName string) {
	if alias := c.TypeAlias(base); alias != "" {
		cls.Properties.Set(ValueProperty, &Property{Type: alias})
		return
	}

	ext := c.ResolveClass(base, parentName, cls)
	if ext == nil {
		return
	}

	if value, ok := SoleValue(ext); ok {
		cls.Properties.Set(ValueProperty, value.Clone())
		return
	}

	if _, simple := base.(*xsd.SimpleType); !simple {
		return
	}

	prop := &Property{Type: c.TypeHasValue(base, cls, parentName)}
	if prop.Type == "" {
		if first, ok := common.First(ext.Properties.Names()); ok {
			prop.Type = first
		}
	}

	cls.Properties.Set(ValueProperty, prop)
}

// SoleValue returns the value property of a class that has no other property.
func SoleValue(cls *Class) (*Property, bool) {
	name, ok := common.Sole(cls.Properties.Names())
	if !ok || name != ValueProperty {
		return nil, false
	}

	return cls.Properties.Get(name)
}

// TypeHasValue walks the restriction chain of t and returns the first alias
// or typed lone value property found, or "".
func (c *Converter) TypeHasValue(t xsd.Type, parent *Class, name string) string {
	seen := make(map[xsd.Type]bool)

	for cur := t; cur != nil && !seen[cur]; {
		seen[cur] = true

		if alias := c.TypeAlias(cur); alias != "" {
			return alias
		}

		if cls := c.ResolveClass(cur, name, parent); cls != nil {
			if value, ok := SoleValue(cls); ok && value.Type != "" {
				return value.Type
			}
		}

		r := cur.Restriction()
		if r == nil {
			break
		}

		cur = r.Base
	}

	return ""
}

func isSimple(t xsd.Type) bool {
	_, ok := t.(*xsd.SimpleType)
	return ok
}

func arrayOf(item string) string {
	return "array<" + item + ">"
}
