// Package convert turns loaded schemas into classes with typed properties.
//
// Converter walks every schema once: global types first, then global
// elements, then imported schemas. Each visited type or element becomes a
// Class named after the class namespace configured for its XML namespace.
// Built-in and configured aliases map a type straight to a target type
// name instead.
//
// The traversal calls its extension points through the Visitor interface.
// A specialised converter embeds *Converter, overrides the hooks it needs,
// delegates to the Base* methods where the default applies, and installs
// itself with SetVisitor.
package convert
