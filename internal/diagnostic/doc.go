// Package diagnostic provides structured errors, warnings and infos
// collected while loading schemas and converting them into validation rules.
//
// Key capabilities:
//   - Unresolved type, element, group and attribute references
//   - "Did you mean" suggestions for misspelled references
//   - Circular type derivation reports
//   - Unsupported facet notices
package diagnostic
