package rules

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Constraint names.
const (
	NameChoice             = "Choice"
	NameRegex              = "Regex"
	NameLength             = "Length"
	NameLessThan           = "LessThan"
	NameLessThanOrEqual    = "LessThanOrEqual"
	NameGreaterThan        = "GreaterThan"
	NameGreaterThanOrEqual = "GreaterThanOrEqual"
	NameRange              = "Range"
	NameValid              = "Valid"
	NameCount              = "Count"
	NameNotNull            = "NotNull"
	NameAll                = "All"
)

// Rule is one validation constraint.
type Rule struct {
	Name  string
	Value any
}

// Option is a named constraint option. Options keep their insertion order.
type Option struct {
	Name  string
	Value any
}

// Opt returns an option.
func Opt(name string, value any) Option {
	return Option{Name: name, Value: value}
}

// Choice allows only the listed values.
func Choice(values []string) Rule {
	return Rule{Name: NameChoice, Value: []Option{Opt("choices", values)}}
}

// Regex requires a match of pattern, written with delimiters.
func Regex(pattern string) Rule {
	return Rule{Name: NameRegex, Value: pattern}
}

// Length bounds the length of a string.
func Length(opts ...Option) Rule {
	return Rule{Name: NameLength, Value: opts}
}

// Count bounds the number of items of a collection.
func Count(opts ...Option) Rule {
	return Rule{Name: NameCount, Value: opts}
}

// Range bounds a number.
func Range(opts ...Option) Rule {
	return Rule{Name: NameRange, Value: opts}
}

// Compare returns a comparison constraint such as LessThan.
func Compare(name string, value any) Rule {
	return Rule{Name: name, Value: value}
}

// Valid cascades validation into a nested object.
func Valid() Rule {
	return Rule{Name: NameValid}
}

// NotNull rejects a missing value.
func NotNull() Rule {
	return Rule{Name: NameNotNull}
}

// All applies rules to every item of a collection.
func All(rules []Rule) Rule {
	return Rule{Name: NameAll, Value: rules}
}

// Options returns the options of r, or nil when its payload is not an option list.
func (r Rule) Options() []Option {
	opts, _ := r.Value.([]Option)
	return opts
}

// Option returns the value of the named option.
func (r Rule) Option(name string) (any, bool) {
	for _, o := range r.Options() {
		if o.Name == name {
			return o.Value, true
		}
	}

	return nil, false
}

// Nested returns the constraints wrapped by an All rule.
func (r Rule) Nested() []Rule {
	nested, _ := r.Value.([]Rule)
	return nested
}

// String renders r on one line, e.g. "Length{min: 2}".
func (r Rule) String() string {
	switch v := r.Value.(type) {
	case nil:
		return r.Name
	case []Option:
		parts := make([]string, 0, len(v))
		for _, o := range v {
			parts = append(parts, fmt.Sprintf("%s: %v", o.Name, o.Value))
		}

		return r.Name + "{" + strings.Join(parts, ", ") + "}"
	case []Rule:
		parts := make([]string, 0, len(v))
		for _, n := range v {
			parts = append(parts, n.String())
		}

		return r.Name + "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%s(%v)", r.Name, v)
	}
}

// MarshalYAML renders r as the single-key mapping {Name: payload}.
func (r Rule) MarshalYAML() (any, error) {
	value, err := payloadNode(r.Value)
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", r.Name, err)
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Name},
			value,
		},
	}, nil
}

func payloadNode(v any) (*yaml.Node, error) {
	switch v := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}, nil

	case []Option:
		n := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		for _, o := range v {
			value, err := payloadNode(o.Value)
			if err != nil {
				return nil, fmt.Errorf("option %s: %w", o.Name, err)
			}

			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: o.Name}, value)
		}

		return n, nil

	case []Rule:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, r := range v {
			var item yaml.Node
			if err := item.Encode(r); err != nil {
				return nil, err
			}

			n.Content = append(n.Content, &item)
		}

		return n, nil

	case Literal:
		return v.node(), nil

	default:
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, err
		}

		return &n, nil
	}
}

var (
	integerLiteral = regexp.MustCompile(`^[-+]?[0-9]+$`)
	decimalLiteral = regexp.MustCompile(`^[-+]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][-+]?[0-9]+)?$`)
)

// Literal is a facet value kept exactly as written in the schema. Its YAML
// tag follows its lexical form, so integers of any size and decimals of any
// precision are numbers while dates and durations stay strings.
type Literal string

// literal returns the facet value v as a Literal.
func literal(v string) Literal {
	return Literal(strings.TrimSpace(v))
}

// Tag returns the YAML tag of l: !!int, !!float or !!str.
func (l Literal) Tag() string {
	switch {
	case integerLiteral.MatchString(string(l)):
		return "!!int"
	case decimalLiteral.MatchString(string(l)):
		return "!!float"
	default:
		return "!!str"
	}
}

// MarshalYAML emits l unchanged under its tag.
func (l Literal) MarshalYAML() (any, error) {
	return l.node(), nil
}

func (l Literal) node() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: l.Tag(), Value: string(l)}
}
