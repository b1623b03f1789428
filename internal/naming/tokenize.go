package naming

import (
	"strings"
	"unicode"
)

// Tokenize splits an identifier into tokens on separators and CamelCase
// boundaries. Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customer_name" -> ["customer", "name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "ns.item-list" -> ["ns", "item", "list"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// Normalize lower-cases an identifier and drops its separators, so that
// "Purchase_Order" and "purchaseOrder" compare equal.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(Tokenize(s), ""))
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if isSeparator(prev) {
		return false
	}

	// "orderID" -> split before 'I'
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) && !unicode.IsDigit(prev) {
		return true
	}

	// "XMLParser" -> split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(r) && unicode.IsUpper(prev) && hasNextLower
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}

// Classify turns an identifier into an UpperCamelCase class name.
func Classify(s string) string {
	var b strings.Builder
	for _, tok := range Tokenize(s) {
		b.WriteString(upperFirst(tok))
	}

	return b.String()
}

// Camelize turns an identifier into a lowerCamelCase property name.
func Camelize(s string) string {
	return lowerFirst(Classify(s))
}
