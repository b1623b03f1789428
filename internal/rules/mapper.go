package rules

import (
	"xsd-validator-generator/internal/xsd"
)

// ElementResolver answers the questions about elements and types that
// depend on the class model being generated.
type ElementResolver interface {
	// ArrayItem returns the repeated element of an array wrapper type.
	ArrayItem(t xsd.Type) (*xsd.Element, bool)
	// IsArrayElement reports whether the element itself repeats.
	IsArrayElement(el *xsd.Element) bool
	// ResolvesClass visits t and reports whether it resolves to a class or
	// to an alias; both make a required element NotNull.
	ResolvesClass(t xsd.Type) bool
}

// Cardinality holds the occurrence bounds of a repeated element.
type Cardinality struct {
	Min int
	Max int
}

// Count returns the Count options of c. A zero minimum and an unbounded
// maximum impose nothing and are left out.
func (c Cardinality) Count() []Option {
	var opts []Option
	if c.Min != 0 {
		opts = append(opts, Opt("min", c.Min))
	}

	if c.Max != xsd.Unbounded {
		opts = append(opts, Opt("max", c.Max))
	}

	return opts
}

// MapType returns the constraints implied by the restriction facets of t.
//
// Digit facets add a trailing Range{min: 0}. A complex type without facets
// yields Valid. When arrayized is set, a non-empty result is wrapped in a
// single All rule.
func MapType(t xsd.Type, arrayized bool) []Rule {
	if t == nil {
		return nil
	}

	var out []Rule

	if r := t.Restriction(); r.HasFacets() {
		numeric := false

		for _, kind := range xsd.FacetKinds() {
			facets := r.Checks(kind)
			if len(facets) == 0 {
				continue
			}

			if kind.IsDigits() {
				numeric = true
			}

			out = append(out, facetRules(kind, facets)...)
		}

		if numeric {
			out = append(out, Range(Opt("min", 0)))
		}
	} else if ct, ok := t.(*xsd.ComplexType); ok && !ct.SimpleContent {
		out = append(out, Valid())
	}

	if len(out) > 0 && arrayized {
		return []Rule{All(out)}
	}

	return out
}

func facetRules(kind xsd.FacetKind, facets []xsd.Facet) []Rule {
	if kind == xsd.FacetEnumeration {
		choices := make([]string, 0, len(facets))
		for _, f := range facets {
			choices = append(choices, f.Value)
		}

		return []Rule{Choice(choices)}
	}

	out := make([]Rule, 0, len(facets))

	for _, f := range facets {
		switch kind {
		case xsd.FacetFractionDigits:
			out = append(out, Regex(`/^(\d+\.\d{1,`+f.Value+`})|\d*$/`))
		case xsd.FacetTotalDigits:
			out = append(out, Regex(`/^[\d]{0,`+f.Value+`}$/`))
		case xsd.FacetLength:
			out = append(out, Length(Opt("min", literal(f.Value)), Opt("max", literal(f.Value))))
		case xsd.FacetMaxLength:
			out = append(out, Length(Opt("max", literal(f.Value))))
		case xsd.FacetMinLength:
			out = append(out, Length(Opt("min", literal(f.Value))))
		case xsd.FacetPattern:
			out = append(out, Regex("/^"+f.Value+"$/"))
		case xsd.FacetMaxExclusive:
			out = append(out, Compare(NameLessThan, literal(f.Value)))
		case xsd.FacetMaxInclusive:
			out = append(out, Compare(NameLessThanOrEqual, literal(f.Value)))
		case xsd.FacetMinExclusive:
			out = append(out, Compare(NameGreaterThan, literal(f.Value)))
		case xsd.FacetMinInclusive:
			out = append(out, Compare(NameGreaterThanOrEqual, literal(f.Value)))
		}
	}

	return out
}

// MapElement returns the constraints of an element property.
//
// With arrayize set, an element whose type wraps a repeated item, or which
// repeats itself, is validated as a collection: a Count rule carries its
// non-trivial bounds and the type constraints apply to every item. An
// element that resolves to a class and may not be omitted gets NotNull,
// preceded by Count{min: 1} for collections whose bounds were all trivial.
func MapElement(el *xsd.Element, arrayize bool, resolver ElementResolver) []Rule {
	var (
		out       []Rule
		count     []Option
		arrayized bool
	)

	if arrayize {
		if item, ok := resolver.ArrayItem(el.Type); ok {
			arrayized = true
			count = Cardinality{Min: item.Min, Max: item.Max}.Count()
		} else if resolver.IsArrayElement(el) {
			arrayized = true
			count = Cardinality{Min: el.Min, Max: el.Max}.Count()
		}

		if len(count) > 0 {
			out = append(out, Count(count...))
		}
	}

	out = append(out, MapType(el.Type, arrayized)...)

	if resolver.ResolvesClass(el.Type) && el.Min != 0 {
		if arrayized && len(count) == 0 {
			out = append(out, Count(Opt("min", 1)))
		}

		out = append(out, NotNull())
	}

	return out
}

// MapAttribute returns the constraints of an attribute property.
// Attributes are never collections.
func MapAttribute(attr *xsd.Attribute) []Rule {
	out := MapType(attr.Type, false)

	if attr.IsRequired() {
		out = append(out, NotNull())
	}

	return out
}
