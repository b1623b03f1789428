package xsd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"xsd-validator-generator/internal/naming"
)

// at returns the component of n, a descendant of c's node.
func (c component) at(n *node) component {
	owner := c.owner
	if name, ok := n.attr("name"); ok && name != "" {
		owner = ownerPath(owner, name)
	}

	return component{doc: c.doc, node: n, scope: c.scope.push(n), owner: owner}
}

func (c component) withOwner(owner string) component {
	c.owner = owner
	return c
}

func ownerPath(owner, name string) string {
	if owner == "" {
		return name
	}

	return owner + "." + name
}

func (c component) location() string {
	return c.doc.schema.Location
}

// qname resolves a QName attribute value in c's scope. Unqualified names
// in chameleon documents take the including document's namespace.
func (c component) qname(value string) (QName, error) {
	qn, err := c.scope.resolve(value)
	if err != nil {
		return qn, err
	}

	if qn.Space == "" && c.doc.chameleon {
		qn.Space = c.doc.schema.TargetNamespace
	}

	return qn, nil
}

func (l *Loader) resolveType(c component, value, what string) Type {
	qn, err := c.qname(value)
	if err != nil {
		l.diags.AddError(CodeUnresolvedType, err.Error(), c.location(), what)
		return nil
	}

	if qn.Space == Namespace {
		if t := Builtin(qn.Local); t != nil {
			return t
		}

		l.unresolved(CodeUnresolvedType, c, what, "type", qn, builtinNames)

		return nil
	}

	if t, ok := l.global.types[qn]; ok {
		return t
	}

	l.unresolved(CodeUnresolvedType, c, what, "type", qn, localNames(l.global.types, qn.Space))

	return nil
}

func (l *Loader) unresolved(code string, c component, what, kind string, qn QName, candidates []string) {
	l.diags.AddError(code,
		fmt.Sprintf("unresolved %s %s", kind, qn),
		c.location(), what,
		naming.Suggest(qn.Local, candidates, naming.DefaultMaxSuggestions)...)
}

func localNames[V any](m map[QName]V, space string) []string {
	var names []string
	for qn := range m {
		if qn.Space == space {
			names = append(names, qn.Local)
		}
	}

	sort.Strings(names)

	return names
}

// elementType returns the type of an element declaration node.
func (l *Loader) elementType(c component, what string) Type {
	if v, ok := c.node.attr("type"); ok {
		return l.resolveType(c, v, what)
	}

	for i := range c.node.Children {
		child := &c.node.Children[i]
		if child.is("simpleType") || child.is("complexType") {
			return l.anonymousType(c.at(child), "")
		}
	}

	return Builtin("anyType")
}

// attributeType returns the type of an attribute declaration node.
func (l *Loader) attributeType(c component, what string) Type {
	if v, ok := c.node.attr("type"); ok {
		return l.resolveType(c, v, what)
	}

	if child := c.node.child("simpleType"); child != nil {
		return l.anonymousType(c.at(child), "")
	}

	return Builtin("anySimpleType")
}

// anonymousType builds the inline type declared by c. role tells the
// inline type apart from its siblings inside the same declaration.
func (l *Loader) anonymousType(c component, role string) Type {
	s := c.doc.schema
	owner := c.owner
	if role != "" {
		owner = ownerPath(owner, role)
	}

	if c.node.is("complexType") {
		ct := NewComplexType("", s)
		ct.context = owner
		ct.doc = c.node.documentation()
		l.buildComplexType(ct, c.withOwner(owner))

		return ct
	}

	st := NewSimpleType("", s, nil)
	st.context = owner
	st.doc = c.node.documentation()
	l.buildSimpleType(st, c.withOwner(owner))

	return st
}

func (l *Loader) buildSimpleType(st *SimpleType, c component) {
	what := "type " + st.Name()
	if st.IsAnonymous() {
		what = "anonymous simple type"
	}

	for i := range c.node.Children {
		n := &c.node.Children[i]
		cc := c.at(n)

		switch {
		case n.is("restriction"):
			r := &Restriction{}
			if v, ok := n.attr("base"); ok {
				r.Base = l.resolveType(cc, v, what)
			} else if inline := n.child("simpleType"); inline != nil {
				r.Base = l.anonymousType(cc.at(inline), "base")
			}

			l.facets(r, cc, what)
			st.restriction = r

		case n.is("list"):
			if v, ok := n.attr("itemType"); ok {
				st.List = l.resolveType(cc, v, what)
			} else if inline := n.child("simpleType"); inline != nil {
				st.List = l.anonymousType(cc.at(inline), "item")
			}

		case n.is("union"):
			for _, member := range strings.Fields(n.attrOr("memberTypes", "")) {
				if t := l.resolveType(cc, member, what); t != nil {
					st.Union = append(st.Union, t)
				}
			}

			member := 0

			for j := range n.Children {
				if n.Children[j].is("simpleType") {
					member++
					st.Union = append(st.Union, l.anonymousType(cc.at(&n.Children[j]), "member"+strconv.Itoa(member)))
				}
			}
		}
	}
}

// facets collects the facet children of a restriction node in document order.
func (l *Loader) facets(r *Restriction, c component, what string) {
	for i := range c.node.Children {
		n := &c.node.Children[i]
		if n.XMLName.Space != Namespace {
			continue
		}

		switch n.local() {
		case "annotation", "simpleType", "attribute", "attributeGroup", "anyAttribute",
			"sequence", "choice", "all", "group":
			continue
		}

		kind, ok := ParseFacetKind(n.local())
		if !ok {
			l.diags.AddInfo(CodeUnsupportedFacet,
				fmt.Sprintf("facet %s is not supported and produces no rule", n.local()), c.location(), what)
		}

		r.Facets = append(r.Facets, Facet{Kind: kind, Name: n.local(), Value: n.attrOr("value", "")})
	}
}

func (l *Loader) buildComplexType(ct *ComplexType, c component) {
	ct.Abstract = c.node.boolAttr("abstract")
	ct.Mixed = c.node.boolAttr("mixed")

	what := "type " + ct.Name()
	if ct.IsAnonymous() {
		what = "anonymous complex type"
	}

	for i := range c.node.Children {
		n := &c.node.Children[i]
		cc := c.at(n)

		switch {
		case n.is("simpleContent"), n.is("complexContent"):
			ct.SimpleContent = n.is("simpleContent")
			if n.boolAttr("mixed") {
				ct.Mixed = true
			}

			l.derivation(ct, cc, what)

		case n.is("sequence"), n.is("choice"), n.is("all"), n.is("group"):
			l.particle(ct, cc, exactlyOnce)

		case n.is("attribute"), n.is("attributeGroup"):
			l.attributeUse(ct, cc)
		}
	}
}

// derivation reads the extension or restriction of a simple or complex content node.
func (l *Loader) derivation(ct *ComplexType, c component, what string) {
	for i := range c.node.Children {
		n := &c.node.Children[i]
		cc := c.at(n)

		switch {
		case n.is("extension"):
			ct.Derivation = DerivationExtension
		case n.is("restriction"):
			ct.Derivation = DerivationRestriction
		default:
			continue
		}

		if v, ok := n.attr("base"); ok {
			ct.Base = l.resolveType(cc, v, what)
		}

		if ct.SimpleContent && ct.Derivation == DerivationRestriction {
			r := &Restriction{Base: ct.Base}
			l.facets(r, cc, what)

			if len(r.Facets) > 0 {
				ct.restriction = r
			}
		}

		for j := range n.Children {
			child := &n.Children[j]

			switch {
			case child.is("sequence"), child.is("choice"), child.is("all"), child.is("group"):
				l.particle(ct, cc.at(child), exactlyOnce)
			case child.is("attribute"), child.is("attributeGroup"):
				l.attributeUse(ct, cc.at(child))
			}
		}
	}
}

// particle flattens an element, model group or group reference into ct.Elements.
// outer is the effective occurrence of the enclosing particle.
func (l *Loader) particle(ct *ComplexType, c component, outer occurs) {
	n := c.node

	occ, err := parseOccurs(n)
	if err != nil {
		l.diags.AddError(CodeInvalidOccurs, err.Error(), c.location(), "type "+ct.Name())
	}

	occ = outer.nest(occ)

	switch {
	case n.is("element"):
		if el := l.localElement(c, occ); el != nil {
			ct.Elements = append(ct.Elements, el)
		}

	case n.is("sequence"), n.is("all"), n.is("choice"):
		if n.is("choice") {
			// only one branch is present in an instance
			occ.min = 0
		}

		for i := range n.Children {
			l.particle(ct, c.at(&n.Children[i]), occ)
		}

	case n.is("group"):
		ref, ok := n.attr("ref")
		if !ok {
			return
		}

		g, qn, found := l.lookupGroup(c, ref, l.global.groups, "group")
		if !found {
			return
		}

		if l.expanding[qn] {
			l.diags.AddError(CodeCircularGroup,
				fmt.Sprintf("group %s references itself", qn), c.location(), "type "+ct.Name())

			return
		}

		l.expanding[qn] = true
		for i := range g.node.Children {
			l.particle(ct, g.at(&g.node.Children[i]), occ)
		}

		delete(l.expanding, qn)
	}
}

func (l *Loader) lookupGroup(c component, ref string, in map[QName]component, kind string) (component, QName, bool) {
	qn, err := c.qname(ref)
	if err != nil {
		l.diags.AddError(CodeUnresolvedGroup, err.Error(), c.location(), kind+" "+ref)
		return component{}, qn, false
	}

	g, ok := in[qn]
	if !ok {
		l.unresolved(CodeUnresolvedGroup, c, kind+" "+ref, kind, qn, localNames(in, qn.Space))
		return component{}, qn, false
	}

	return g, qn, true
}

func (l *Loader) localElement(c component, occ occurs) *Element {
	n := c.node
	s := c.doc.schema

	el := &Element{
		Min:      occ.min,
		Max:      occ.max,
		Nillable: n.boolAttr("nillable"),
		Default:  n.attrOr("default", ""),
		Fixed:    n.attrOr("fixed", ""),
		Doc:      n.documentation(),
		Schema:   s,
	}

	if ref, ok := n.attr("ref"); ok {
		qn, err := c.qname(ref)
		if err != nil {
			l.diags.AddError(CodeUnresolvedElement, err.Error(), c.location(), "element "+ref)
			return nil
		}

		global, found := l.global.elements[qn]
		if !found {
			l.unresolved(CodeUnresolvedElement, c, "element "+ref, "element", qn, localNames(l.global.elements, qn.Space))
			return nil
		}

		el.Name = global.Name
		el.Namespace = global.Namespace
		// the referenced declaration may not be built yet
		l.pending = append(l.pending, func() {
			el.Type = global.Type
			if el.Doc == "" {
				el.Doc = global.Doc
			}
		})

		return el
	}

	el.Name = n.attrOr("name", "")
	if form := n.attrOr("form", ""); form == "qualified" || (form == "" && c.doc.qualifiedElements) {
		el.Namespace = s.TargetNamespace
	}

	el.Type = l.elementType(c, "element "+el.Name)

	return el
}

// attributeUse adds an attribute or the attributes of an attribute group to ct.
func (l *Loader) attributeUse(ct *ComplexType, c component) {
	n := c.node

	if n.is("attributeGroup") {
		ref, ok := n.attr("ref")
		if !ok {
			return
		}

		g, qn, found := l.lookupGroup(c, ref, l.global.attrGroups, "attribute group")
		if !found {
			return
		}

		if l.expanding[qn] {
			l.diags.AddError(CodeCircularGroup,
				fmt.Sprintf("attribute group %s references itself", qn), c.location(), "type "+ct.Name())

			return
		}

		l.expanding[qn] = true
		for i := range g.node.Children {
			child := &g.node.Children[i]
			if child.is("attribute") || child.is("attributeGroup") {
				l.attributeUse(ct, g.at(child))
			}
		}

		delete(l.expanding, qn)

		return
	}

	if attr := l.localAttribute(c); attr != nil && attr.Use != UseProhibited {
		ct.Attributes = append(ct.Attributes, attr)
	}
}

func (l *Loader) localAttribute(c component) *Attribute {
	n := c.node
	s := c.doc.schema

	attr := &Attribute{
		Use:     n.attrOr("use", UseOptional),
		Default: n.attrOr("default", ""),
		Fixed:   n.attrOr("fixed", ""),
		Doc:     n.documentation(),
		Schema:  s,
	}

	if ref, ok := n.attr("ref"); ok {
		qn, err := c.qname(ref)
		if err != nil {
			l.diags.AddError(CodeUnresolvedAttribute, err.Error(), c.location(), "attribute "+ref)
			return nil
		}

		global := l.global.attributes[qn]
		if qn.Space == XMLNamespace {
			for _, a := range xmlSchema.Attributes {
				if a.Name == qn.Local {
					global = a
				}
			}
		}

		if global == nil {
			l.unresolved(CodeUnresolvedAttribute, c, "attribute "+ref, "attribute", qn, localNames(l.global.attributes, qn.Space))
			return nil
		}

		attr.Name = global.Name
		attr.Namespace = global.Namespace
		l.pending = append(l.pending, func() { attr.Type = global.Type })

		return attr
	}

	attr.Name = n.attrOr("name", "")
	if form := n.attrOr("form", ""); form == "qualified" || (form == "" && c.doc.qualifiedAttributes) {
		attr.Namespace = s.TargetNamespace
	}

	attr.Type = l.attributeType(c, "attribute "+attr.Name)

	return attr
}
