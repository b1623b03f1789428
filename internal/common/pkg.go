package common

import "strings"

// UnknownStr is the fallback string form of enum values without a name.
const UnknownStr = "unknown"

// ClassSeparator separates namespace segments of a fully qualified class name.
const ClassSeparator = `\`

// ClassNamespace returns the namespace part of a fully qualified class name.
// Returns empty string if fqcn has no namespace.
func ClassNamespace(fqcn string) string {
	idx := strings.LastIndex(fqcn, ClassSeparator)
	if idx < 0 {
		return ""
	}

	return fqcn[:idx]
}

// ClassBase returns the short name (last segment) of a fully qualified class name.
func ClassBase(fqcn string) string {
	idx := strings.LastIndex(fqcn, ClassSeparator)
	if idx < 0 {
		return fqcn
	}

	return fqcn[idx+len(ClassSeparator):]
}

// JoinClass joins namespace and short class name into a fully qualified class name.
func JoinClass(namespace, name string) string {
	namespace = strings.Trim(namespace, ClassSeparator)
	if namespace == "" {
		return name
	}

	return namespace + ClassSeparator + name
}
