package convert

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/untillpro/goutils/logger"

	"xsd-validator-generator/internal/common"
	"xsd-validator-generator/internal/diagnostic"
	"xsd-validator-generator/internal/naming"
	"xsd-validator-generator/internal/xsd"
)

// ErrNamespaceNotMapped is returned when a schema namespace has no class namespace.
var ErrNamespaceNotMapped = errors.New("namespace not mapped")

// CodeNamespaceNotMapped is the diagnostic code of an unmapped namespace.
const CodeNamespaceNotMapped = "CNV001"

// ArrayAlias is the alias of list simple types.
const ArrayAlias = "array"

// Config controls class naming.
type Config struct {
	// Namespaces maps XML namespaces to class namespaces.
	Namespaces map[string]string
	// Aliases maps an XML namespace and a type or element name to the target
	// type that replaces it.
	Aliases map[string]map[string]string
	// Naming derives class and property names. Defaults to the short strategy.
	Naming naming.Strategy
}

// Visitor is the set of extension points called during traversal.
type Visitor interface {
	// VisitType returns the class of t. Unless force is set, array wrapper
	// types are visited but left out of the result.
	VisitType(t xsd.Type, force bool) *Class
	// VisitSimpleType fills cls from the simple type t declared as name.
	VisitSimpleType(cls *Class, t *xsd.SimpleType, name string)
	// VisitElement returns the property of el inside cls.
	VisitElement(cls *Class, el *xsd.Element, arrayize bool) *Property
	// VisitAttribute returns the property of attr inside cls.
	VisitAttribute(cls *Class, attr *xsd.Attribute) *Property
	// HandleClassExtension copies what cls inherits from base.
	HandleClassExtension(cls *Class, base xsd.Type, parentName string)
}

// entry is a visited type or element.
type entry struct {
	class *Class
	skip  bool
}

// Converter builds classes from schemas.
type Converter struct {
	cfg    Config
	naming naming.Strategy
	hooks  Visitor

	// entries is keyed by xsd.Type or *xsd.Element.
	entries map[any]*entry
	order   []*entry

	unmapped map[string]bool
	diags    diagnostic.Diagnostics
}

// New returns a Converter using its own hooks.
func New(cfg Config) *Converter {
	c := &Converter{cfg: cfg, naming: cfg.Naming}
	if c.naming == nil {
		c.naming = naming.ShortStrategy{}
	}

	c.hooks = c
	c.reset()

	return c
}

// SetVisitor installs the hooks called during traversal.
func (c *Converter) SetVisitor(v Visitor) {
	c.hooks = v
}

// Naming returns the naming strategy in use.
func (c *Converter) Naming() naming.Strategy {
	return c.naming
}

// Diagnostics returns the findings of the last conversion.
func (c *Converter) Diagnostics() diagnostic.Diagnostics {
	return c.diags
}

func (c *Converter) reset() {
	c.entries = make(map[any]*entry)
	c.order = nil
	c.unmapped = make(map[string]bool)
	c.diags = diagnostic.Diagnostics{}
}

// Convert visits schemas and everything they import, and returns the
// generated classes sorted by name.
func (c *Converter) Convert(schemas ...*xsd.Schema) ([]*Class, error) {
	c.reset()

	visited := make(map[*xsd.Schema]bool)
	for _, s := range schemas {
		c.navigate(s, visited)
	}

	if c.diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrNamespaceNotMapped, c.diags.Error())
	}

	return c.Types(), nil
}

func (c *Converter) navigate(s *xsd.Schema, visited map[*xsd.Schema]bool) {
	if s == nil || visited[s] || isBaseNamespace(s.TargetNamespace) {
		return
	}

	visited[s] = true

	logger.Verbose("converting schema", s.Location)

	for _, t := range s.Types {
		c.hooks.VisitType(t, false)
	}

	for _, el := range s.Elements {
		c.visitElementDef(el)
	}

	for _, imported := range s.Imports {
		c.navigate(imported, visited)
	}
}

// Types returns the generated classes sorted by name. Aliases and skipped
// types are left out; of several classes with the same name the last
// visited wins.
func (c *Converter) Types() []*Class {
	sorted := slices.Clone(c.order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].class.Name < sorted[j].class.Name
	})

	var out []*Class

	for _, e := range sorted {
		if e.skip || !e.class.IsGenerated() {
			continue
		}

		if n := len(out); n > 0 && out[n-1].Name == e.class.Name {
			out[n-1] = e.class
			continue
		}

		out = append(out, e.class)
	}

	return out
}

func (c *Converter) register(key any, e *entry) {
	c.entries[key] = e
	c.order = append(c.order, e)
}

// visitElementDef builds the class of a global element.
func (c *Converter) visitElementDef(el *xsd.Element) {
	e, ok := c.entries[el]
	if !ok {
		cls := NewClass(common.JoinClass(c.classNamespace(el.Namespace, "element "+el.Name), c.naming.ItemName(el.Name)))
		e = &entry{class: cls}
		c.register(el, e)

		switch {
		case el.Type == nil:
		case el.Type.IsAnonymous():
			c.visitTypeBase(cls, el.Type, el.Name)
		default:
			c.hooks.HandleClassExtension(cls, el.Type, el.Name)
		}
	}

	e.skip = c.alias(el.Namespace, el.Name) != ""
}

// TypeAlias returns the target type that replaces t, or "" when t becomes
// a class. Configured aliases win over the built-in ones; list types are
// arrays.
func (c *Converter) TypeAlias(t xsd.Type) string {
	if t == nil {
		return ""
	}

	if st, ok := t.(*xsd.SimpleType); ok && st.List != nil {
		return ArrayAlias
	}

	if t.IsAnonymous() {
		return ""
	}

	if a := c.alias(t.Namespace(), t.Name()); a != "" {
		return a
	}

	if t.Namespace() == xsd.Namespace {
		return builtinAliases[t.Name()]
	}

	return ""
}

var builtinAliases = xsd.BuiltinAliases()

func (c *Converter) alias(ns, name string) string {
	return c.cfg.Aliases[ns][name]
}

// className returns the fully qualified class name of t. An anonymous type
// visited on its own is named after the declarations enclosing it.
func (c *Converter) className(t xsd.Type) string {
	ns := c.classNamespace(t.Namespace(), "type "+t.Name())

	if t.IsAnonymous() {
		parent, item := "", "Anonymous"
		if ctx := t.Context(); ctx != "" {
			if i := strings.LastIndex(ctx, "."); i >= 0 {
				parent, item = ctx[:i], ctx[i+1:]
			} else {
				item = ctx
			}
		}

		return common.JoinClass(ns, c.naming.AnonymousTypeName(parent, item))
	}

	return common.JoinClass(ns, c.naming.TypeName(t.Name()))
}

// classNamespace returns the class namespace configured for xmlns. A
// missing mapping is reported once per namespace.
func (c *Converter) classNamespace(xmlns, component string) string {
	if ns, ok := c.cfg.Namespaces[xmlns]; ok {
		return ns
	}

	if !c.unmapped[xmlns] {
		c.unmapped[xmlns] = true

		c.diags.AddError(CodeNamespaceNotMapped,
			fmt.Sprintf("no class namespace configured for %q", xmlns), "", component,
			naming.Suggest(xmlns, slices.Sorted(maps.Keys(c.cfg.Namespaces)), naming.DefaultMaxSuggestions)...)
	}

	return ""
}

func isBaseNamespace(ns string) bool {
	return ns == xsd.Namespace || ns == xsd.XMLNamespace
}
