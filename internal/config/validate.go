package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"xsd-validator-generator/internal/common"
	"xsd-validator-generator/internal/diagnostic"
	"xsd-validator-generator/internal/naming"
)

// Validate checks c for settings the converter and writer cannot use.
func Validate(c *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if c == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	if c.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported config version %q (want %q)", c.Version, CurrentVersion), "", "version")
	}

	if _, err := naming.New(c.NamingStrategy); err != nil {
		res.AddError("unknown_naming_strategy", err.Error(), "", "naming_strategy",
			naming.Suggest(c.NamingStrategy, []string{naming.StrategyShort, naming.StrategyLong}, 1)...)
	}

	if len(c.Namespaces) == 0 {
		res.AddError("no_namespaces", "no XML namespace is mapped to a class namespace", "", "namespaces")
	}

	classNamespaces := make([]string, 0, len(c.Namespaces))

	for _, xmlns := range slices.Sorted(maps.Keys(c.Namespaces)) {
		ns := c.Namespaces[xmlns]
		if ns == "" {
			res.AddError("empty_class_namespace",
				fmt.Sprintf("XML namespace %q is mapped to an empty class namespace", xmlns), "", "namespaces")

			continue
		}

		classNamespaces = append(classNamespaces, ns)
	}

	if len(c.Destinations) == 0 && c.Output.SingleFile == "" {
		res.AddError("no_destination", "neither destinations nor output.single_file is set", "", "destinations")
	}

	for _, ns := range slices.Sorted(maps.Keys(c.Destinations)) {
		if c.Destinations[ns] == "" {
			res.AddError("empty_destination", fmt.Sprintf("destination of %q is empty", ns), "", "destinations")
			continue
		}

		if !covers(ns, classNamespaces) {
			res.AddWarning("unused_destination",
				fmt.Sprintf("destination %q matches no configured class namespace", ns), "", "destinations")
		}
	}

	for _, xmlns := range slices.Sorted(maps.Keys(c.Aliases)) {
		if _, ok := c.Namespaces[xmlns]; !ok {
			res.AddWarning("alias_namespace_not_mapped",
				fmt.Sprintf("aliases declared for unmapped XML namespace %q", xmlns), "", "aliases")
		}
	}

	return res
}

// covers reports whether dest is one of namespaces or a parent of one.
func covers(dest string, namespaces []string) bool {
	dest = strings.Trim(dest, common.ClassSeparator)

	for _, ns := range namespaces {
		if ns == dest || strings.HasPrefix(ns, dest+common.ClassSeparator) || strings.HasPrefix(dest, ns+common.ClassSeparator) {
			return true
		}
	}

	return false
}
