package xsd

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// node is a schema document element with its attributes and children in
// document order.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
	Text     string     `xml:",chardata"`
}

func decodeDocument(data []byte) (*node, error) {
	var root node

	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding schema document: %w", err)
	}

	if root.XMLName.Space != Namespace || root.XMLName.Local != "schema" {
		return nil, fmt.Errorf("root element is %s, want {%s}schema", QName{
			Space: root.XMLName.Space, Local: root.XMLName.Local,
		}, Namespace)
	}

	return &root, nil
}

// is reports whether n is the XMLSchema element with the given local name.
func (n *node) is(local string) bool {
	return n.XMLName.Space == Namespace && n.XMLName.Local == local
}

func (n *node) local() string {
	return n.XMLName.Local
}

// attr returns the value of the unqualified attribute named local.
func (n *node) attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}

	return "", false
}

func (n *node) attrOr(local, def string) string {
	if v, ok := n.attr(local); ok {
		return v
	}

	return def
}

func (n *node) boolAttr(local string) bool {
	v, ok := n.attr(local)
	if !ok {
		return false
	}

	b, err := strconv.ParseBool(strings.TrimSpace(v))

	return err == nil && b
}

// child returns the first XMLSchema child with the given local name.
func (n *node) child(local string) *node {
	for i := range n.Children {
		if n.Children[i].is(local) {
			return &n.Children[i]
		}
	}

	return nil
}

// documentation concatenates the xs:documentation texts of n's annotation.
func (n *node) documentation() string {
	ann := n.child("annotation")
	if ann == nil {
		return ""
	}

	var parts []string

	for i := range ann.Children {
		if ann.Children[i].is("documentation") {
			if text := strings.TrimSpace(ann.Children[i].Text); text != "" {
				parts = append(parts, text)
			}
		}
	}

	return strings.Join(parts, "\n")
}

// scope holds the namespace prefixes declared on an element and its ancestors.
type scope struct {
	parent   *scope
	prefixes map[string]string
}

func rootScope() *scope {
	return &scope{prefixes: map[string]string{"xml": XMLNamespace}}
}

// push returns the scope of n, nested in s.
func (s *scope) push(n *node) *scope {
	var prefixes map[string]string

	for _, a := range n.Attrs {
		var prefix string

		switch {
		case a.Name.Space == "xmlns":
			prefix = a.Name.Local
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			prefix = ""
		default:
			continue
		}

		if prefixes == nil {
			prefixes = make(map[string]string)
		}

		prefixes[prefix] = a.Value
	}

	if prefixes == nil {
		return s
	}

	return &scope{parent: s, prefixes: prefixes}
}

func (s *scope) lookup(prefix string) (string, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if ns, ok := cur.prefixes[prefix]; ok {
			return ns, true
		}
	}

	return "", false
}

// resolve expands a prefixed QName value written in the scope.
func (s *scope) resolve(value string) (QName, error) {
	value = strings.TrimSpace(value)

	prefix, local, found := strings.Cut(value, ":")
	if !found {
		prefix, local = "", value
	}

	if local == "" {
		return QName{}, fmt.Errorf("empty QName %q", value)
	}

	ns, ok := s.lookup(prefix)
	if !ok && prefix != "" {
		return QName{}, fmt.Errorf("undeclared namespace prefix %q in %q", prefix, value)
	}

	return QName{Space: ns, Local: local}, nil
}

// occurs is a min/max occurrence pair.
type occurs struct {
	min int
	max int
}

var exactlyOnce = occurs{min: 1, max: 1}

func parseOccurs(n *node) (occurs, error) {
	o := exactlyOnce

	if v, ok := n.attr("minOccurs"); ok {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || i < 0 {
			return o, fmt.Errorf("invalid minOccurs %q", v)
		}

		o.min = i
	}

	if v, ok := n.attr("maxOccurs"); ok {
		v = strings.TrimSpace(v)
		if v == "unbounded" {
			o.max = Unbounded
		} else {
			i, err := strconv.Atoi(v)
			if err != nil || i < 0 {
				return o, fmt.Errorf("invalid maxOccurs %q", v)
			}

			o.max = i
		}
	}

	return o, nil
}

// nest combines the occurrence of a particle with that of its enclosing group.
func (o occurs) nest(inner occurs) occurs {
	out := occurs{min: o.min * inner.min}

	switch {
	case o.max == Unbounded || inner.max == Unbounded:
		out.max = Unbounded
	default:
		out.max = o.max * inner.max
	}

	return out
}
