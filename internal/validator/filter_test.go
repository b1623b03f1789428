package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xsd-validator-generator/internal/convert"
	"xsd-validator-generator/internal/rules"
)

func class(name string, props map[string]*convert.Property, order ...string) *convert.Class {
	c := convert.NewClass(name)
	for _, n := range order {
		c.Properties.Set(n, props[n])
	}

	return c
}

func TestFilterEmptyClasses(t *testing.T) {
	typed := class(`Shop\Typed`, map[string]*convert.Property{
		"a": {Type: "string"},
		"b": {Type: `Shop\Other`},
	}, "a", "b")

	mixed := class(`Shop\Mixed`, map[string]*convert.Property{
		"a": {Type: "string"},
		"b": {Type: "int", Rules: []rules.Rule{rules.NotNull()}},
		"c": nil,
	}, "a", "b", "c")

	empty := convert.NewClass(`Shop\Empty`)

	out := FilterEmptyClasses([]*convert.Class{typed, mixed, empty})

	require.Len(t, out, 1)
	assert.Equal(t, `Shop\Mixed`, out[0].Name)
	assert.Equal(t, []string{"b"}, out[0].Properties.Names())

	b, _ := out[0].Properties.Get("b")
	assert.Empty(t, b.Type, "types are stripped")
	assert.Equal(t, []rules.Rule{rules.NotNull()}, b.Rules)
}

func TestFilterEmptyClassesDoesNotModifyInput(t *testing.T) {
	in := class(`Shop\Order`, map[string]*convert.Property{
		"id":   {Type: "string", Rules: []rules.Rule{rules.NotNull()}},
		"note": {Type: "string"},
	}, "id", "note")

	out := FilterEmptyClasses([]*convert.Class{in})
	require.Len(t, out, 1)

	p, _ := out[0].Properties.Get("id")
	p.Rules[0] = rules.Valid()

	orig, _ := in.Properties.Get("id")
	assert.Equal(t, "string", orig.Type)
	assert.Equal(t, rules.NotNull(), orig.Rules[0])
	assert.Equal(t, 2, in.Properties.Len())
}

func TestFilterEmptyClassesNil(t *testing.T) {
	assert.Empty(t, FilterEmptyClasses(nil))
}
