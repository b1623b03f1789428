package xsd

import "maps"

// XMLNamespace is the namespace bound to the reserved "xml" prefix.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

var builtinNames = []string{
	"anyType", "anySimpleType",
	"string", "normalizedString", "token", "language", "Name", "NCName",
	"ID", "IDREF", "IDREFS", "ENTITY", "ENTITIES", "NMTOKEN", "NMTOKENS",
	"QName", "NOTATION", "anyURI",
	"boolean",
	"decimal", "float", "double",
	"integer", "nonPositiveInteger", "negativeInteger", "long", "int",
	"short", "byte", "nonNegativeInteger", "unsignedLong", "unsignedInt",
	"unsignedShort", "unsignedByte", "positiveInteger",
	"duration", "dateTime", "time", "date",
	"gYearMonth", "gYear", "gMonthDay", "gDay", "gMonth",
	"hexBinary", "base64Binary",
}

var (
	builtinSchema = newBuiltinSchema()
	xmlSchema     = newXMLSchema()
)

func newBuiltinSchema() *Schema {
	s := &Schema{TargetNamespace: Namespace, Location: Namespace}
	for _, name := range builtinNames {
		st := NewSimpleType(name, s, nil)
		st.Builtin = true
		s.AddType(st)
	}

	return s
}

// newXMLSchema declares the attributes of the xml namespace (xml:lang etc.).
func newXMLSchema() *Schema {
	s := &Schema{TargetNamespace: XMLNamespace, Location: XMLNamespace}

	str := builtinSchema.Type("string")
	for _, name := range []string{"lang", "space", "base", "id"} {
		s.Attributes = append(s.Attributes, &Attribute{
			Name:      name,
			Namespace: XMLNamespace,
			Type:      str,
			Use:       UseOptional,
			Global:    true,
			Schema:    s,
		})
	}

	return s
}

// Builtin returns the built-in type named local, or nil.
func Builtin(local string) Type {
	return builtinSchema.Type(local)
}

// BuiltinSchema returns the shared schema holding the built-in types.
func BuiltinSchema() *Schema {
	return builtinSchema
}

// builtinAliases maps built-in type names to the target type they stand for.
var builtinAliases = map[string]string{
	"anyType":            "mixed",
	"anySimpleType":      "mixed",
	"string":             "string",
	"normalizedString":   "string",
	"token":              "string",
	"language":           "string",
	"Name":               "string",
	"NCName":             "string",
	"ID":                 "string",
	"IDREF":              "string",
	"IDREFS":             "string",
	"ENTITY":             "string",
	"ENTITIES":           "string",
	"NMTOKEN":            "string",
	"NMTOKENS":           "string",
	"QName":              "string",
	"NOTATION":           "string",
	"anyURI":             "string",
	"hexBinary":          "string",
	"base64Binary":       "string",
	"boolean":            "bool",
	"decimal":            "float",
	"float":              "float",
	"double":             "float",
	"integer":            "int",
	"nonPositiveInteger": "int",
	"negativeInteger":    "int",
	"long":               "int",
	"int":                "int",
	"short":              "int",
	"byte":               "int",
	"nonNegativeInteger": "int",
	"unsignedLong":       "int",
	"unsignedInt":        "int",
	"unsignedShort":      "int",
	"unsignedByte":       "int",
	"positiveInteger":    "int",
	"duration":           "DateInterval",
	"dateTime":           "DateTime",
	"time":               "DateTime",
	"date":               "DateTime",
	"gYearMonth":         "int",
	"gYear":              "int",
	"gMonthDay":          "string",
	"gDay":               "int",
	"gMonth":             "int",
}

// BuiltinAliases returns a copy of the default alias of every built-in type.
func BuiltinAliases() map[string]string {
	return maps.Clone(builtinAliases)
}
