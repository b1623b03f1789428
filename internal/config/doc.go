// Package config loads, overrides and validates the generator configuration.
//
// The configuration file is YAML:
//
//	version: "1"
//	naming_strategy: short
//	namespaces:
//	  "http://example.com/order": 'Example\Model'
//	destinations:
//	  'Example\Model': build/validation
//	aliases:
//	  "http://example.com/order":
//	    Money: float
//	output:
//	  single_file: ""
//
// Command line flags extend the file with "xmlns;phpns", "phpns;dir" and
// "xmlns;name;alias" entries; later entries replace earlier ones.
package config
