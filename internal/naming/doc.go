// Package naming derives class and property names from schema component
// names and proposes near matches for unresolved references.
//
// Identifiers are tokenized on separators (_, -, ., spaces) and CamelCase
// boundaries, then re-assembled:
//   - "purchase-order" -> class "PurchaseOrder", property "purchaseOrder"
//   - "XMLPayload"     -> class "XMLPayload",    property "xMLPayload"
//
// Two strategies mirror the conventions of PHP XSD converters:
//   - short: type classes keep their name, anonymous types end in "AType"
//   - long:  type classes end in "Type", anonymous types end in "AnonymousType"
//
// Suggestions rank candidates by normalized Levenshtein similarity.
package naming
