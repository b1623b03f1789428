package xsd

// Namespace is the XML Schema namespace; its types are the built-ins.
const Namespace = "http://www.w3.org/2001/XMLSchema"

// Unbounded is the Max of a particle declared with maxOccurs="unbounded".
const Unbounded = -1

// Attribute use designations.
const (
	UseOptional   = "optional"
	UseRequired   = "required"
	UseProhibited = "prohibited"
)

// Type is a simple or complex schema type.
type Type interface {
	// Name is the local name; empty for anonymous types.
	Name() string
	// Namespace is the target namespace of the declaring schema.
	Namespace() string
	// Schema is the declaring schema document.
	Schema() *Schema
	// Restriction returns the facet-carrying restriction, or nil.
	Restriction() *Restriction
	// IsAnonymous reports whether the type was declared inline.
	IsAnonymous() bool
	// Context is the dotted path of the declarations enclosing an
	// anonymous type, e.g. "Order.lines"; empty for named types.
	Context() string

	isType()
}

// QName identifies a global schema component.
type QName struct {
	Space string
	Local string
}

// String returns "{ns}local", or "local" when the namespace is empty.
func (q QName) String() string {
	if q.Space == "" {
		return q.Local
	}

	return "{" + q.Space + "}" + q.Local
}

// TypeName returns the qualified name of t; the zero QName for nil or anonymous types.
func TypeName(t Type) QName {
	if t == nil || t.IsAnonymous() {
		return QName{}
	}

	return QName{Space: t.Namespace(), Local: t.Name()}
}

// IsBuiltin reports whether t is a type of the XMLSchema namespace.
func IsBuiltin(t Type) bool {
	st, ok := t.(*SimpleType)
	return ok && st.Builtin
}

type typeBase struct {
	name    string
	schema  *Schema
	doc     string
	context string
}

func (b *typeBase) Name() string { return b.name }

func (b *typeBase) Namespace() string {
	if b.schema == nil {
		return ""
	}

	return b.schema.TargetNamespace
}

func (b *typeBase) Schema() *Schema { return b.schema }

func (b *typeBase) IsAnonymous() bool { return b.name == "" }

func (b *typeBase) Context() string { return b.context }

// Doc returns the documentation annotation of the type.
func (b *typeBase) Doc() string { return b.doc }

// SimpleType is an atomic, list or union type.
type SimpleType struct {
	typeBase

	// Builtin marks the types of the XMLSchema namespace.
	Builtin bool
	// List is the item type of a list type.
	List Type
	// Union holds the member types of a union type.
	Union []Type

	restriction *Restriction
}

// NewSimpleType returns a simple type declared in schema; r may be nil.
func NewSimpleType(name string, schema *Schema, r *Restriction) *SimpleType {
	return &SimpleType{typeBase: typeBase{name: name, schema: schema}, restriction: r}
}

func (t *SimpleType) Restriction() *Restriction { return t.restriction }

// SetRestriction replaces the restriction of t.
func (t *SimpleType) SetRestriction(r *Restriction) { t.restriction = r }

func (*SimpleType) isType() {}

// Derivation tells how a complex type is derived from its base.
type Derivation int

const (
	DerivationNone Derivation = iota
	DerivationExtension
	DerivationRestriction
)

// ComplexType is a type with element or simple content.
type ComplexType struct {
	typeBase

	// Elements are the local elements of the content model, flattened in
	// document order.
	Elements []*Element
	// Attributes are the attribute uses, flattened in document order.
	Attributes []*Attribute
	// Base is the type this one extends or restricts, nil when not derived.
	Base       Type
	Derivation Derivation
	// SimpleContent marks complex types whose content is a simple value.
	SimpleContent bool
	Abstract      bool
	Mixed         bool

	restriction *Restriction
}

// NewComplexType returns a complex type declared in schema.
func NewComplexType(name string, schema *Schema) *ComplexType {
	return &ComplexType{typeBase: typeBase{name: name, schema: schema}}
}

// Restriction returns the facets of a simple content restriction, or nil.
func (t *ComplexType) Restriction() *Restriction { return t.restriction }

// SetRestriction replaces the simple content restriction of t.
func (t *ComplexType) SetRestriction(r *Restriction) { t.restriction = r }

func (*ComplexType) isType() {}

// Restriction derives a type from Base by constraining it with facets.
type Restriction struct {
	Base   Type
	Facets []Facet
}

// HasFacets reports whether the restriction declares at least one facet.
func (r *Restriction) HasFacets() bool {
	return r != nil && len(r.Facets) > 0
}

// Checks returns the facets of the given kind in declaration order.
func (r *Restriction) Checks(kind FacetKind) []Facet {
	if r == nil {
		return nil
	}

	var out []Facet
	for _, f := range r.Facets {
		if f.Kind == kind {
			out = append(out, f)
		}
	}

	return out
}

// AddFacet appends a facet of the given kind.
func (r *Restriction) AddFacet(kind FacetKind, value string) *Restriction {
	r.Facets = append(r.Facets, Facet{Kind: kind, Name: kind.facetName(), Value: value})
	return r
}

func (k FacetKind) facetName() string {
	for name, kind := range facetNames {
		if kind == k {
			return name
		}
	}

	return ""
}

// Element is a global element or a local element of a content model.
type Element struct {
	Name      string
	Namespace string
	Type      Type
	Min       int
	Max       int
	Nillable  bool
	Global    bool
	Default   string
	Fixed     string
	Doc       string
	Schema    *Schema
}

// NewElement returns a local element occurring exactly once.
func NewElement(name string, t Type) *Element {
	return &Element{Name: name, Type: t, Min: 1, Max: 1}
}

// IsArray reports whether the element may occur more than once.
func (e *Element) IsArray() bool {
	return e.Max > 1 || e.Max == Unbounded
}

// Attribute is a global attribute or an attribute use of a complex type.
type Attribute struct {
	Name      string
	Namespace string
	Type      Type
	Use       string
	Default   string
	Fixed     string
	Global    bool
	Doc       string
	Schema    *Schema
}

// NewAttribute returns an optional attribute.
func NewAttribute(name string, t Type) *Attribute {
	return &Attribute{Name: name, Type: t, Use: UseOptional}
}

// IsRequired reports whether the attribute use is "required".
func (a *Attribute) IsRequired() bool {
	return a.Use == UseRequired
}

// Schema is one loaded schema document.
type Schema struct {
	TargetNamespace string
	Location        string

	Types      []Type
	Elements   []*Element
	Attributes []*Attribute
	// Imports are the schemas imported or included by this document.
	Imports []*Schema
}

// Type returns the global type named local, or nil.
func (s *Schema) Type(local string) Type {
	for _, t := range s.Types {
		if t.Name() == local {
			return t
		}
	}

	return nil
}

// Element returns the global element named local, or nil.
func (s *Schema) Element(local string) *Element {
	for _, e := range s.Elements {
		if e.Name == local {
			return e
		}
	}

	return nil
}

// AddType declares t as a global type of s.
func (s *Schema) AddType(t Type) {
	s.Types = append(s.Types, t)
}

// AddElement declares e as a global element of s.
func (s *Schema) AddElement(e *Element) {
	e.Global = true
	e.Schema = s
	e.Namespace = s.TargetNamespace
	s.Elements = append(s.Elements, e)
}
