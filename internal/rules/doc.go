// Package rules maps XML Schema restrictions and occurrence bounds to
// Symfony validation constraints.
//
// A Rule is a single-key mapping from constraint name to payload. The
// payload is one of:
//   - nil: rendered as "~" (Valid, NotNull)
//   - a scalar: Regex pattern, bound value of LessThan and friends
//   - []Option: ordered options (Length, Count, Range, Choice)
//   - []Rule: the nested constraints of All
//
// Mapping never fails. Facets are processed in the order returned by
// xsd.FacetKinds, independent of their declaration order; unknown facets
// are ignored.
package rules
