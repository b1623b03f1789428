package xsd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/untillpro/goutils/logger"

	"xsd-validator-generator/internal/diagnostic"
)

// ErrInvalidSchema is returned when loading produced error diagnostics.
var ErrInvalidSchema = errors.New("invalid schema")

// Diagnostic codes reported by the loader.
const (
	CodeUnresolvedType       = "XSD001"
	CodeUnresolvedElement    = "XSD002"
	CodeUnresolvedAttribute  = "XSD003"
	CodeUnresolvedGroup      = "XSD004"
	CodeDuplicateComponent   = "XSD005"
	CodeCircularDerivation   = "XSD006"
	CodeCircularGroup        = "XSD007"
	CodeInvalidOccurs        = "XSD008"
	CodeUnsupportedFacet     = "XSD100"
	CodeUnsupportedConstruct = "XSD101"
	CodeRemoteImport         = "XSD102"
)

// Loader reads schema documents, follows their imports and includes, and
// resolves them into one connected object model.
type Loader struct {
	readFile func(name string) ([]byte, error)
	join     func(base, ref string) string

	docs   []*document
	byLoc  map[string]*document
	global globals
	work   []func()

	// pending runs after every global component is built.
	pending []func()

	// expanding guards group and attribute group expansion against cycles.
	expanding map[QName]bool

	diags diagnostic.Diagnostics
}

type document struct {
	schema *Schema
	root   *node
	scope  *scope

	// chameleon marks included documents without a target namespace.
	chameleon           bool
	qualifiedElements   bool
	qualifiedAttributes bool
}

// component is a raw schema node together with the document it was read from.
type component struct {
	doc   *document
	node  *node
	scope *scope
	// owner is the dotted path of the named declarations enclosing node,
	// node included, e.g. "Order.lines".
	owner string
}

type globals struct {
	types      map[QName]Type
	elements   map[QName]*Element
	attributes map[QName]*Attribute
	groups     map[QName]component
	attrGroups map[QName]component
}

// NewLoader returns a Loader reading from the operating system file system.
func NewLoader() *Loader {
	return newLoader(os.ReadFile, func(base, ref string) string {
		if filepath.IsAbs(ref) {
			return filepath.Clean(ref)
		}

		return filepath.Join(filepath.Dir(base), filepath.FromSlash(ref))
	})
}

// NewFSLoader returns a Loader reading from fsys. Locations are slash-separated
// paths relative to the root of fsys.
func NewFSLoader(fsys fs.FS) *Loader {
	return newLoader(func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	}, func(base, ref string) string {
		return path.Join(path.Dir(base), ref)
	})
}

func newLoader(readFile func(string) ([]byte, error), join func(string, string) string) *Loader {
	return &Loader{
		readFile: readFile,
		join:     join,
		byLoc:    make(map[string]*document),
		global: globals{
			types:      make(map[QName]Type),
			elements:   make(map[QName]*Element),
			attributes: make(map[QName]*Attribute),
			groups:     make(map[QName]component),
			attrGroups: make(map[QName]component),
		},
		expanding: make(map[QName]bool),
	}
}

// Diagnostics returns the findings collected by the last Load.
func (l *Loader) Diagnostics() diagnostic.Diagnostics {
	return l.diags
}

// Load reads the schema documents at locations with everything they import
// or include, and returns every loaded schema in load order.
//
// Read and decode failures are returned immediately. Unresolved references
// and other schema errors are collected as diagnostics; when any is present
// the returned error wraps ErrInvalidSchema.
func (l *Loader) Load(locations ...string) ([]*Schema, error) {
	for _, loc := range locations {
		if _, err := l.loadDocument(loc, "", false); err != nil {
			return nil, err
		}
	}

	for _, doc := range l.docs {
		l.register(doc)
	}

	for _, build := range l.work {
		build()
	}

	for _, patch := range l.pending {
		patch()
	}

	l.checkDerivations()

	schemas := make([]*Schema, 0, len(l.docs))
	for _, doc := range l.docs {
		schemas = append(schemas, doc.schema)
	}

	if l.diags.HasErrors() {
		return schemas, fmt.Errorf("%w: %w", ErrInvalidSchema, l.diags.Error())
	}

	return schemas, nil
}

// LoadFiles loads schema files from the operating system file system.
func LoadFiles(paths ...string) ([]*Schema, diagnostic.Diagnostics, error) {
	l := NewLoader()
	schemas, err := l.Load(paths...)

	return schemas, l.Diagnostics(), err
}

// Parse loads a single in-memory schema document. Only imports of the
// built-in namespaces may be used; other schemaLocation references fail to read.
func Parse(data []byte) (*Schema, error) {
	const location = "schema.xsd"

	l := newLoader(func(name string) ([]byte, error) {
		if name == location {
			return data, nil
		}

		return nil, fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
	}, func(_, ref string) string {
		return ref
	})

	schemas, err := l.Load(location)
	if err != nil {
		return nil, err
	}

	return schemas[0], nil
}

// loadDocument reads the document at loc once. targetNS is the including
// document's namespace for xs:include, used when loc declares none.
func (l *Loader) loadDocument(loc, targetNS string, include bool) (*document, error) {
	if doc, ok := l.byLoc[loc]; ok {
		return doc, nil
	}

	data, err := l.readFile(loc)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", loc, err)
	}

	root, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", loc, err)
	}

	doc := &document{
		schema: &Schema{
			TargetNamespace: root.attrOr("targetNamespace", ""),
			Location:        loc,
		},
		root:                root,
		scope:               rootScope().push(root),
		qualifiedElements:   root.attrOr("elementFormDefault", "") == "qualified",
		qualifiedAttributes: root.attrOr("attributeFormDefault", "") == "qualified",
	}

	if include && doc.schema.TargetNamespace == "" && targetNS != "" {
		doc.schema.TargetNamespace = targetNS
		doc.chameleon = true
	}

	l.byLoc[loc] = doc
	l.docs = append(l.docs, doc)

	logger.Verbose("loaded schema", loc, "targetNamespace", doc.schema.TargetNamespace)

	for i := range root.Children {
		child := &root.Children[i]

		switch {
		case child.is("import"), child.is("include"):
			if err := l.loadReference(doc, child); err != nil {
				return nil, err
			}
		case child.is("redefine"), child.is("override"):
			l.diags.AddWarning(CodeUnsupportedConstruct,
				fmt.Sprintf("xs:%s is not supported and was skipped", child.local()), loc, "")
		}
	}

	return doc, nil
}

func (l *Loader) loadReference(doc *document, n *node) error {
	include := n.is("include")

	ns := n.attrOr("namespace", "")
	if ns == Namespace || ns == XMLNamespace {
		return nil
	}

	ref, ok := n.attr("schemaLocation")
	if !ok || strings.TrimSpace(ref) == "" {
		// namespace expected to be loaded through another location
		return nil
	}

	if strings.Contains(ref, "://") {
		l.diags.AddWarning(CodeRemoteImport,
			fmt.Sprintf("remote schema %s was not fetched", ref), doc.schema.Location, "")

		return nil
	}

	target, err := l.loadDocument(l.join(doc.schema.Location, ref), doc.schema.TargetNamespace, include)
	if err != nil {
		return err
	}

	doc.schema.Imports = append(doc.schema.Imports, target.schema)

	return nil
}

// register declares every named top-level component of doc and queues
// building its content.
func (l *Loader) register(doc *document) {
	s := doc.schema

	for i := range doc.root.Children {
		n := &doc.root.Children[i]
		name, hasName := n.attr("name")
		if !hasName {
			continue
		}

		c := component{doc: doc, node: n, scope: doc.scope.push(n), owner: name}

		qn := QName{Space: s.TargetNamespace, Local: name}

		switch {
		case n.is("simpleType"):
			st := NewSimpleType(name, s, nil)
			st.doc = n.documentation()

			if l.declare(c, "type", qn, l.global.types[qn] != nil) {
				l.global.types[qn] = st
				s.AddType(st)
				l.work = append(l.work, func() { l.buildSimpleType(st, c) })
			}

		case n.is("complexType"):
			ct := NewComplexType(name, s)
			ct.doc = n.documentation()

			if l.declare(c, "type", qn, l.global.types[qn] != nil) {
				l.global.types[qn] = ct
				s.AddType(ct)
				l.work = append(l.work, func() { l.buildComplexType(ct, c) })
			}

		case n.is("element"):
			el := &Element{Name: name, Min: 1, Max: 1, Doc: n.documentation()}

			if l.declare(c, "element", qn, l.global.elements[qn] != nil) {
				l.global.elements[qn] = el
				s.AddElement(el)
				l.work = append(l.work, func() { l.buildGlobalElement(el, c) })
			}

		case n.is("attribute"):
			attr := &Attribute{
				Name:      name,
				Namespace: s.TargetNamespace,
				Use:       UseOptional,
				Global:    true,
				Doc:       n.documentation(),
				Schema:    s,
			}

			if l.declare(c, "attribute", qn, l.global.attributes[qn] != nil) {
				l.global.attributes[qn] = attr
				s.Attributes = append(s.Attributes, attr)
				l.work = append(l.work, func() { attr.Type = l.attributeType(c, "attribute "+name) })
			}

		case n.is("group"):
			if _, dup := l.global.groups[qn]; l.declare(c, "group", qn, dup) {
				l.global.groups[qn] = c
			}

		case n.is("attributeGroup"):
			if _, dup := l.global.attrGroups[qn]; l.declare(c, "attribute group", qn, dup) {
				l.global.attrGroups[qn] = c
			}
		}
	}
}

func (l *Loader) declare(c component, kind string, qn QName, duplicate bool) bool {
	if duplicate {
		l.diags.AddError(CodeDuplicateComponent,
			fmt.Sprintf("%s %s is declared more than once", kind, qn), c.doc.schema.Location, kind+" "+qn.Local)
	}

	return !duplicate
}

func (l *Loader) buildGlobalElement(el *Element, c component) {
	el.Nillable = c.node.boolAttr("nillable")
	el.Default = c.node.attrOr("default", "")
	el.Fixed = c.node.attrOr("fixed", "")
	el.Type = l.elementType(c, "element "+el.Name)
}
