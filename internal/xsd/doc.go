// Package xsd provides the read-only XML Schema object model consumed by
// the converter, and a loader that builds it from .xsd documents.
//
// The model keeps exactly what rule generation needs:
//   - SimpleType: restriction facets in declaration order, list item type,
//     union members
//   - ComplexType: flattened elements and attributes, derivation base,
//     simple content flag
//   - Element: type plus min/max occurrence (Unbounded == -1)
//   - Attribute: type plus use ("required", "optional", "prohibited")
//
// Built-in types of the XMLSchema namespace are flat simple types without
// restrictions; they are shared, immutable values.
//
// The loader follows xs:import and xs:include through schemaLocation,
// flattens groups, attribute groups and sequence/choice/all particles, and
// reports unresolved references and circular derivations as diagnostics.
package xsd
