package naming

import (
	"fmt"
	"strings"
)

// Strategy names classes and properties generated from schema components.
type Strategy interface {
	// TypeName is the class name of a named type.
	TypeName(name string) string
	// AnonymousTypeName is the class name of an anonymous type declared
	// inside parent (the parent class short name plus the declaring item name).
	AnonymousTypeName(parent, item string) string
	// ItemName is the class name of a global element.
	ItemName(name string) string
	// PropertyName is the property name of an element or attribute.
	PropertyName(name string) string
}

const (
	StrategyShort = "short"
	StrategyLong  = "long"
)

// New returns the strategy registered under name.
func New(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "", StrategyShort:
		return ShortStrategy{}, nil
	case StrategyLong:
		return LongStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown naming strategy %q (want %q or %q)", name, StrategyShort, StrategyLong)
	}
}

// ShortStrategy keeps type names as they are declared.
type ShortStrategy struct{}

func (ShortStrategy) TypeName(name string) string {
	return avoidReserved(Classify(name))
}

func (ShortStrategy) AnonymousTypeName(parent, item string) string {
	return Classify(parent) + Classify(item) + "AType"
}

func (ShortStrategy) ItemName(name string) string {
	return avoidReserved(Classify(name))
}

func (ShortStrategy) PropertyName(name string) string {
	return Camelize(name)
}

// LongStrategy suffixes type classes so they never clash with element classes.
type LongStrategy struct{}

func (LongStrategy) TypeName(name string) string {
	return Classify(name) + "Type"
}

func (LongStrategy) AnonymousTypeName(parent, item string) string {
	return Classify(parent) + Classify(item) + "AnonymousType"
}

func (LongStrategy) ItemName(name string) string {
	return avoidReserved(Classify(name))
}

func (LongStrategy) PropertyName(name string) string {
	return Camelize(name)
}

// reservedWords cannot be used as class names in the generated namespace.
var reservedWords = map[string]struct{}{
	"abstract": {}, "and": {}, "array": {}, "as": {}, "bool": {}, "break": {},
	"callable": {}, "case": {}, "catch": {}, "class": {}, "clone": {},
	"const": {}, "continue": {}, "declare": {}, "default": {}, "do": {},
	"echo": {}, "else": {}, "elseif": {}, "empty": {}, "enum": {},
	"extends": {}, "false": {}, "final": {}, "finally": {}, "float": {},
	"fn": {}, "for": {}, "foreach": {}, "function": {}, "global": {},
	"goto": {}, "if": {}, "implements": {}, "include": {}, "instanceof": {},
	"insteadof": {}, "int": {}, "interface": {}, "isset": {}, "iterable": {},
	"list": {}, "match": {}, "mixed": {}, "namespace": {}, "new": {},
	"null": {}, "object": {}, "or": {}, "parent": {}, "print": {},
	"private": {}, "protected": {}, "public": {}, "readonly": {},
	"require": {}, "return": {}, "self": {}, "static": {}, "string": {},
	"switch": {}, "throw": {}, "trait": {}, "true": {}, "try": {},
	"unset": {}, "use": {}, "var": {}, "void": {}, "while": {}, "xor": {},
	"yield": {},
}

func avoidReserved(name string) string {
	if _, ok := reservedWords[strings.ToLower(name)]; ok {
		return name + "Type"
	}

	return name
}
