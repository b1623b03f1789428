package xsd

//go:generate go tool stringer -type=FacetKind -trimprefix=Facet -output=facetkind_string.go

// FacetKind identifies a restriction facet.
//
// The recognised kinds are declared in the order in which rules are
// generated from them; FacetKinds returns that order.
type FacetKind int

const (
	FacetUnknown FacetKind = iota

	FacetEnumeration
	FacetFractionDigits
	FacetTotalDigits
	FacetLength
	FacetMaxLength
	FacetMinLength
	FacetPattern
	FacetMaxExclusive
	FacetMaxInclusive
	FacetMinExclusive
	FacetMinInclusive

	// FacetWhiteSpace is parsed but does not constrain values after normalization.
	FacetWhiteSpace
)

var facetNames = map[string]FacetKind{
	"enumeration":    FacetEnumeration,
	"fractionDigits": FacetFractionDigits,
	"totalDigits":    FacetTotalDigits,
	"length":         FacetLength,
	"maxLength":      FacetMaxLength,
	"minLength":      FacetMinLength,
	"pattern":        FacetPattern,
	"maxExclusive":   FacetMaxExclusive,
	"maxInclusive":   FacetMaxInclusive,
	"minExclusive":   FacetMinExclusive,
	"minInclusive":   FacetMinInclusive,
	"whiteSpace":     FacetWhiteSpace,
}

// ParseFacetKind maps the local name of a facet element to its kind.
// Unrecognised names yield FacetUnknown and false.
func ParseFacetKind(local string) (FacetKind, bool) {
	k, ok := facetNames[local]
	if !ok {
		return FacetUnknown, false
	}

	return k, true
}

// FacetKinds returns the rule-generating facet kinds in processing order.
func FacetKinds() []FacetKind {
	return []FacetKind{
		FacetEnumeration,
		FacetFractionDigits,
		FacetTotalDigits,
		FacetLength,
		FacetMaxLength,
		FacetMinLength,
		FacetPattern,
		FacetMaxExclusive,
		FacetMaxInclusive,
		FacetMinExclusive,
		FacetMinInclusive,
	}
}

// IsDigits reports whether the facet constrains digit counts of a decimal.
func (k FacetKind) IsDigits() bool {
	return k == FacetFractionDigits || k == FacetTotalDigits
}

// Facet is a single constraint clause of a restriction.
type Facet struct {
	Kind FacetKind
	// Name is the facet element's local name as written in the schema.
	Name  string
	Value string
}
