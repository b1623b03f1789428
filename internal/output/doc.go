// Package output renders validation classes as Symfony YAML metadata and
// writes them to disk.
//
// A document maps each fully qualified class name to its properties:
//
//	Shop\Model\Order:
//	    properties:
//	        id:
//	            - NotNull: ~
//
// Per-class files are placed in the directory configured for the longest
// matching class namespace and named after the rest of the class name,
// with namespace separators turned into dots.
package output
