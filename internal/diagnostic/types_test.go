package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsSeverityBuckets(t *testing.T) {
	var d Diagnostics

	d.AddInfo("XSD100", "facet ignored", "order.xsd", "type Code")
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("XSD200", "remote import skipped", "order.xsd", "")
	d.AddError("XSD001", "unresolved type tns:Ordr", "order.xsd", "element order", "tns:Order")

	assert.True(t, d.HasErrors())
	assert.Len(t, d.Errors, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)
	assert.Len(t, d.All(), 3)
	assert.Equal(t, SeverityError, d.All()[0].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[order.xsd] element order: [XSD001] unresolved type tns:Ordr (did you mean tns:Order?)",
		err.Error())
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("E1", "first", "", "")
	b.AddError("E2", "second", "", "")
	b.AddInfo("I1", "note", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Infos, 1)
	assert.Equal(t, "[E1] first; [E2] second", a.Error().Error())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestCodesAndCount(t *testing.T) {
	var d Diagnostics

	d.AddError("XSD001", "a", "", "")
	d.AddError("XSD001", "b", "", "")
	d.AddWarning("CFG", "c", "", "")

	assert.Equal(t, []string{"XSD001", "XSD001"}, Codes(d.Errors))
	assert.Empty(t, Codes(nil))
	assert.Equal(t, 2, d.Count("XSD001"))
	assert.Equal(t, 1, d.Count("CFG"))
	assert.Zero(t, d.Count("missing"))
}

func TestLogDoesNotPanicOnEmpty(t *testing.T) {
	var d Diagnostics
	assert.NotPanics(t, d.Log)
}
