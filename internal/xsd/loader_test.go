package xsd

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderSchema = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:tns="http://example.com/order"
           targetNamespace="http://example.com/order"
           elementFormDefault="qualified">

  <xs:simpleType name="Code">
    <xs:annotation><xs:documentation>Three letter code.</xs:documentation></xs:annotation>
    <xs:restriction base="xs:string">
      <xs:pattern value="[A-Z]{3}"/>
      <xs:maxLength value="3"/>
      <xs:enumeration value="ABC"/>
      <xs:enumeration value="XYZ"/>
    </xs:restriction>
  </xs:simpleType>

  <xs:simpleType name="Codes">
    <xs:list itemType="tns:Code"/>
  </xs:simpleType>

  <xs:simpleType name="CodeOrInt">
    <xs:union memberTypes="tns:Code xs:int">
      <xs:simpleType>
        <xs:restriction base="xs:boolean"/>
      </xs:simpleType>
    </xs:union>
  </xs:simpleType>

  <xs:group name="Audit">
    <xs:sequence>
      <xs:element name="createdBy" type="xs:string"/>
      <xs:element name="createdAt" type="xs:dateTime" minOccurs="0"/>
    </xs:sequence>
  </xs:group>

  <xs:attributeGroup name="Identified">
    <xs:attribute name="id" type="xs:ID" use="required"/>
  </xs:attributeGroup>

  <xs:complexType name="Order">
    <xs:sequence>
      <xs:element name="code" type="tns:Code"/>
      <xs:choice>
        <xs:element name="email" type="xs:string"/>
        <xs:element name="phone" type="xs:string"/>
      </xs:choice>
      <xs:sequence maxOccurs="unbounded">
        <xs:element name="line" type="tns:Line"/>
      </xs:sequence>
      <xs:group ref="tns:Audit"/>
      <xs:element ref="tns:note" minOccurs="0"/>
      <xs:element name="meta">
        <xs:complexType>
          <xs:attribute name="source" type="xs:string"/>
        </xs:complexType>
      </xs:element>
      <xs:element name="any"/>
    </xs:sequence>
    <xs:attributeGroup ref="tns:Identified"/>
    <xs:attribute name="currency" default="EUR">
      <xs:simpleType>
        <xs:restriction base="xs:string">
          <xs:length value="3"/>
        </xs:restriction>
      </xs:simpleType>
    </xs:attribute>
    <xs:attribute name="legacy" type="xs:string" use="prohibited"/>
    <xs:attribute ref="xml:lang"/>
  </xs:complexType>

  <xs:complexType name="Line">
    <xs:sequence>
      <xs:element name="qty" type="xs:int" maxOccurs="5"/>
    </xs:sequence>
  </xs:complexType>

  <xs:complexType name="Price">
    <xs:simpleContent>
      <xs:extension base="xs:decimal">
        <xs:attribute name="currency" type="xs:string"/>
      </xs:extension>
    </xs:simpleContent>
  </xs:complexType>

  <xs:complexType name="SmallPrice">
    <xs:simpleContent>
      <xs:restriction base="tns:Price">
        <xs:maxInclusive value="10"/>
      </xs:restriction>
    </xs:simpleContent>
  </xs:complexType>

  <xs:complexType name="SpecialOrder">
    <xs:complexContent>
      <xs:extension base="tns:Order">
        <xs:sequence>
          <xs:element name="reason" type="xs:string"/>
        </xs:sequence>
      </xs:extension>
    </xs:complexContent>
  </xs:complexType>

  <xs:element name="note" type="xs:string"/>
  <xs:element name="order" type="tns:Order"/>
  <xs:element name="receipt">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="total" type="tns:Price"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

func elementNames(els []*Element) []string {
	names := make([]string, 0, len(els))
	for _, el := range els {
		names = append(names, el.Name)
	}

	return names
}

func TestParseSimpleTypes(t *testing.T) {
	s, err := Parse([]byte(orderSchema))
	require.NoError(t, err)

	assert.Equal(t, "http://example.com/order", s.TargetNamespace)

	code, ok := s.Type("Code").(*SimpleType)
	require.True(t, ok)
	assert.Equal(t, "Three letter code.", code.Doc())

	r := code.Restriction()
	require.NotNil(t, r)
	assert.Same(t, Builtin("string"), r.Base)
	require.Len(t, r.Facets, 4)
	assert.Equal(t, []FacetKind{FacetPattern, FacetMaxLength, FacetEnumeration, FacetEnumeration},
		[]FacetKind{r.Facets[0].Kind, r.Facets[1].Kind, r.Facets[2].Kind, r.Facets[3].Kind})
	assert.Equal(t, "[A-Z]{3}", r.Facets[0].Value)
	assert.Len(t, r.Checks(FacetEnumeration), 2)

	codes := s.Type("Codes").(*SimpleType)
	assert.Same(t, code, codes.List)

	union := s.Type("CodeOrInt").(*SimpleType)
	require.Len(t, union.Union, 3)
	assert.Same(t, code, union.Union[0])
	assert.Same(t, Builtin("int"), union.Union[1])
	assert.True(t, union.Union[2].IsAnonymous())
	assert.Equal(t, "CodeOrInt.member1", union.Union[2].Context())
	assert.Empty(t, code.Context(), "named types have no context")
}

func TestParseComplexTypeFlattening(t *testing.T) {
	s, err := Parse([]byte(orderSchema))
	require.NoError(t, err)

	order, ok := s.Type("Order").(*ComplexType)
	require.True(t, ok)

	assert.Equal(t,
		[]string{"code", "email", "phone", "line", "createdBy", "createdAt", "note", "meta", "any"},
		elementNames(order.Elements))

	byName := make(map[string]*Element)
	for _, el := range order.Elements {
		byName[el.Name] = el
	}

	assert.Equal(t, 1, byName["code"].Min)
	assert.Equal(t, 0, byName["email"].Min, "choice branches are optional")
	assert.Equal(t, 1, byName["email"].Max)
	assert.Equal(t, Unbounded, byName["line"].Max)
	assert.True(t, byName["line"].IsArray())
	assert.Same(t, s.Type("Line"), byName["line"].Type)
	assert.Equal(t, 0, byName["createdAt"].Min)
	assert.Equal(t, "http://example.com/order", byName["code"].Namespace)

	note := byName["note"]
	assert.Same(t, Builtin("string"), note.Type)
	assert.Equal(t, 0, note.Min)

	meta := byName["meta"].Type.(*ComplexType)
	assert.True(t, meta.IsAnonymous())
	assert.Equal(t, "Order.meta", meta.Context())
	require.Len(t, meta.Attributes, 1)

	assert.Same(t, Builtin("anyType"), byName["any"].Type)

	require.Len(t, order.Attributes, 3, "prohibited attribute uses are dropped")
	assert.Equal(t, "id", order.Attributes[0].Name)
	assert.True(t, order.Attributes[0].IsRequired())
	assert.Equal(t, "currency", order.Attributes[1].Name)
	assert.Equal(t, "EUR", order.Attributes[1].Default)
	assert.Equal(t, FacetLength, order.Attributes[1].Type.Restriction().Facets[0].Kind)
	assert.Equal(t, "lang", order.Attributes[2].Name)
	assert.Equal(t, XMLNamespace, order.Attributes[2].Namespace)

	line := s.Type("Line").(*ComplexType)
	assert.Equal(t, 5, line.Elements[0].Max)
}

func TestParseDerivations(t *testing.T) {
	s, err := Parse([]byte(orderSchema))
	require.NoError(t, err)

	price := s.Type("Price").(*ComplexType)
	assert.True(t, price.SimpleContent)
	assert.Equal(t, DerivationExtension, price.Derivation)
	assert.Same(t, Builtin("decimal"), price.Base)
	assert.Nil(t, price.Restriction())
	require.Len(t, price.Attributes, 1)

	small := s.Type("SmallPrice").(*ComplexType)
	assert.Equal(t, DerivationRestriction, small.Derivation)
	require.NotNil(t, small.Restriction())
	assert.Equal(t, "10", small.Restriction().Checks(FacetMaxInclusive)[0].Value)

	special := s.Type("SpecialOrder").(*ComplexType)
	assert.Same(t, s.Type("Order"), special.Base)
	assert.Equal(t, []string{"reason"}, elementNames(special.Elements))
}

func TestParseGlobalElements(t *testing.T) {
	s, err := Parse([]byte(orderSchema))
	require.NoError(t, err)

	assert.Equal(t, []string{"note", "order", "receipt"}, elementNames(s.Elements))

	order := s.Element("order")
	require.NotNil(t, order)
	assert.True(t, order.Global)
	assert.Same(t, s.Type("Order"), order.Type)

	receipt := s.Element("receipt").Type.(*ComplexType)
	assert.True(t, receipt.IsAnonymous())
	assert.Equal(t, "receipt", receipt.Context())
	assert.Equal(t, []string{"total"}, elementNames(receipt.Elements))
}

func TestUnresolvedTypeSuggestsNearMatch(t *testing.T) {
	fsys := fstest.MapFS{
		"main.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:tns="urn:t" targetNamespace="urn:t">
  <xs:complexType name="Order"/>
  <xs:element name="order" type="tns:Ordr"/>
  <xs:element name="qty" type="xs:integr"/>
</xs:schema>`)},
	}

	l := NewFSLoader(fsys)
	_, err := l.Load("main.xsd")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSchema))

	diags := l.Diagnostics()
	require.Len(t, diags.Errors, 2)

	assert.Equal(t, CodeUnresolvedType, diags.Errors[0].Code)
	assert.Equal(t, "element order", diags.Errors[0].Component)
	assert.Equal(t, []string{"Order"}, diags.Errors[0].Suggestions)

	assert.Contains(t, diags.Errors[1].Suggestions, "integer")
}

func TestCircularDerivation(t *testing.T) {
	_, err := Parse([]byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:tns="urn:t" targetNamespace="urn:t">
  <xs:simpleType name="A"><xs:restriction base="tns:B"/></xs:simpleType>
  <xs:simpleType name="B"><xs:restriction base="tns:A"/></xs:simpleType>
  <xs:simpleType name="C"><xs:restriction base="xs:string"/></xs:simpleType>
</xs:schema>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), CodeCircularDerivation)
	assert.Contains(t, err.Error(), "{urn:t}A, {urn:t}B")
	assert.NotContains(t, err.Error(), "{urn:t}C")
}

func TestCircularGroup(t *testing.T) {
	_, err := Parse([]byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:tns="urn:t" targetNamespace="urn:t">
  <xs:group name="G"><xs:sequence><xs:group ref="tns:G"/></xs:sequence></xs:group>
  <xs:complexType name="T"><xs:group ref="tns:G"/></xs:complexType>
</xs:schema>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), CodeCircularGroup)
}

func TestUnsupportedFacetIsReportedNotFatal(t *testing.T) {
	fsys := fstest.MapFS{
		"main.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:t">
  <xs:simpleType name="T">
    <xs:restriction base="xs:int">
      <xs:assertion test="$value mod 2 = 0"/>
      <xs:whiteSpace value="collapse"/>
    </xs:restriction>
  </xs:simpleType>
</xs:schema>`)},
	}

	l := NewFSLoader(fsys)
	schemas, err := l.Load("main.xsd")
	require.NoError(t, err)

	diags := l.Diagnostics()
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, CodeUnsupportedFacet, diags.Infos[0].Code)

	r := schemas[0].Type("T").Restriction()
	require.Len(t, r.Facets, 2)
	assert.Equal(t, FacetUnknown, r.Facets[0].Kind)
	assert.Equal(t, "assertion", r.Facets[0].Name)
	assert.Equal(t, FacetWhiteSpace, r.Facets[1].Kind)
}

func TestFSLoaderFollowsImportsAndIncludes(t *testing.T) {
	fsys := fstest.MapFS{
		"schemas/main.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:c="urn:common" xmlns="urn:main" targetNamespace="urn:main">
  <xs:import namespace="urn:common" schemaLocation="common/types.xsd"/>
  <xs:include schemaLocation="part.xsd"/>
  <xs:import namespace="http://www.w3.org/2001/XMLSchema"/>
  <xs:complexType name="Doc">
    <xs:sequence>
      <xs:element name="id" type="c:Id"/>
      <xs:element name="part" type="Part"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`)},
		"schemas/common/types.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:common">
  <xs:simpleType name="Id"><xs:restriction base="xs:string"><xs:minLength value="1"/></xs:restriction></xs:simpleType>
</xs:schema>`)},
		"schemas/part.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:complexType name="Part">
    <xs:sequence><xs:element name="ref" type="Id2"/></xs:sequence>
  </xs:complexType>
  <xs:simpleType name="Id2"><xs:restriction base="xs:token"/></xs:simpleType>
</xs:schema>`)},
	}

	l := NewFSLoader(fsys)
	schemas, err := l.Load("schemas/main.xsd")
	require.NoError(t, err)
	require.Len(t, schemas, 3)

	main, common, part := schemas[0], schemas[1], schemas[2]
	assert.Equal(t, "schemas/common/types.xsd", common.Location)
	assert.Equal(t, "urn:main", part.TargetNamespace, "included schema adopts the including namespace")
	assert.Equal(t, []*Schema{common, part}, main.Imports)

	doc := main.Type("Doc").(*ComplexType)
	assert.Same(t, common.Type("Id"), doc.Elements[0].Type)
	assert.Same(t, part.Type("Part"), doc.Elements[1].Type)

	partType := part.Type("Part").(*ComplexType)
	assert.Same(t, part.Type("Id2"), partType.Elements[0].Type)
}

func TestLoadMissingFile(t *testing.T) {
	l := NewFSLoader(fstest.MapFS{})
	_, err := l.Load("missing.xsd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading schema missing.xsd")
}

func TestParseRejectsNonSchemaRoot(t *testing.T) {
	_, err := Parse([]byte(`<root/>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want {http://www.w3.org/2001/XMLSchema}schema")
}

func TestDuplicateGlobalType(t *testing.T) {
	_, err := Parse([]byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:t">
  <xs:complexType name="T"/>
  <xs:complexType name="T"/>
</xs:schema>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), CodeDuplicateComponent)
}
