package validator

import (
	"slices"

	"xsd-validator-generator/internal/common"
	"xsd-validator-generator/internal/convert"
	"xsd-validator-generator/internal/rules"
	"xsd-validator-generator/internal/xsd"
)

// Converter produces classes whose properties carry validation rules.
type Converter struct {
	*convert.Converter
}

var (
	_ convert.Visitor       = (*Converter)(nil)
	_ rules.ElementResolver = (*Converter)(nil)
)

// New returns a Converter with its hooks installed.
func New(cfg convert.Config) *Converter {
	v := &Converter{Converter: convert.New(cfg)}
	v.SetVisitor(v)

	return v
}

// Convert visits schemas and returns the classes that carry rules.
func (v *Converter) Convert(schemas ...*xsd.Schema) ([]*convert.Class, error) {
	classes, err := v.Converter.Convert(schemas...)
	if err != nil {
		return nil, err
	}

	return FilterEmptyClasses(classes), nil
}

// Types returns the visited classes that carry rules.
func (v *Converter) Types() []*convert.Class {
	return FilterEmptyClasses(v.Converter.Types())
}

// VisitType always forces the visit.
func (v *Converter) VisitType(t xsd.Type, _ bool) *convert.Class {
	return v.BaseVisitType(t, true)
}

// VisitSimpleType adds the rules of a restricted simple type to __value.
func (v *Converter) VisitSimpleType(cls *convert.Class, t *xsd.SimpleType, name string) {
	v.BaseVisitSimpleType(cls, t, name)

	if r := t.Restriction(); r != nil && r.Base != nil {
		value := cls.Properties.Ensure(convert.ValueProperty)
		value.Rules = append(value.Rules, rules.MapType(t, false)...)
	}
}

// VisitElement returns a property holding the element rules.
func (v *Converter) VisitElement(cls *convert.Class, el *xsd.Element, arrayize bool) *convert.Property {
	v.FindClass(cls, el)

	return &convert.Property{Rules: rules.MapElement(el, arrayize, v)}
}

// VisitAttribute returns a property holding the attribute rules.
func (v *Converter) VisitAttribute(_ *convert.Class, attr *xsd.Attribute) *convert.Property {
	return &convert.Property{Rules: rules.MapAttribute(attr)}
}

// HandleClassExtension inherits the value property of base and, for a
// complex base, copies its non-empty properties into cls.
func (v *Converter) HandleClassExtension(cls *convert.Class, base xsd.Type, parentName string) {
	v.BaseHandleClassExtension(cls, base, parentName)

	if _, isComplex := base.(*xsd.ComplexType); !isComplex || v.TypeAlias(base) != "" {
		return
	}

	ext := v.ResolveClass(base, parentName, cls)
	if ext == nil {
		return
	}

	if _, sole := convert.SoleValue(ext); sole {
		return
	}

	for _, name := range ext.Properties.Names() {
		if p, _ := ext.Properties.Get(name); !p.IsEmpty() {
			cls.Properties.Set(name, p.Clone())
		}
	}
}

// FilterEmptyClasses returns copies of classes reduced to their rules.
// Property types are dropped, then properties without rules, then classes
// without properties. The input is not modified.
func FilterEmptyClasses(classes []*convert.Class) []*convert.Class {
	var out []*convert.Class

	for _, cls := range classes {
		kept := &convert.Class{Name: cls.Name, Alias: cls.Alias, Properties: convert.NewProperties()}

		for _, name := range cls.Properties.Names() {
			p, _ := cls.Properties.Get(name)
			if p == nil || common.IsEmpty(p.Rules) {
				continue
			}

			kept.Properties.Set(name, &convert.Property{Rules: slices.Clone(p.Rules)})
		}

		if kept.Properties.Len() > 0 {
			out = append(out, kept)
		}
	}

	return out
}
