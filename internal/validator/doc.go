// Package validator specialises the class converter to produce validation
// constraints instead of typed properties.
//
// Converter overrides the traversal hooks of convert.Converter:
//   - elements and attributes get the rules of rules.MapElement and
//     rules.MapAttribute
//   - restricted simple types collect their rules on the __value property
//   - extending a complex type copies its non-empty properties, since the
//     metadata format has no inheritance
//   - every type is visited forced, so array wrappers are kept
//
// FilterEmptyClasses then drops property types, properties without rules
// and classes left without properties.
package validator
