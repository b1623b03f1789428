package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xsd-validator-generator/internal/naming"
)

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, naming.StrategyLong, cfg.NamingStrategy)
	assert.Equal(t, map[string]string{"urn:shop": `Shop\Model`}, cfg.Namespaces, "trailing separator is trimmed")
	assert.Equal(t, "build/validation", cfg.Destinations[`Shop\Model`])
	assert.Equal(t, "float", cfg.Aliases["urn:shop"]["Money"])
	assert.Empty(t, cfg.Output.SingleFile)

	assert.True(t, Validate(cfg).IsValid())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("output:\n  single_file: out.yml\n"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, naming.StrategyShort, cfg.NamingStrategy)
	assert.NotNil(t, cfg.Namespaces)
	assert.NotNil(t, cfg.Destinations)
	assert.NotNil(t, cfg.Aliases)
	assert.Equal(t, "out.yml", cfg.Output.SingleFile)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("namespaces: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.AddNamespaces([]string{`urn:shop;Shop\Model`}))
	require.NoError(t, cfg.AddDestinations([]string{`Shop\Model;out`}))

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestOverrides(t *testing.T) {
	cfg := New()

	require.NoError(t, cfg.AddNamespaces([]string{
		`urn:shop;Shop\Old`,
		` urn:shop ; \Shop\Model\ `,
	}))
	assert.Equal(t, `Shop\Model`, cfg.Namespaces["urn:shop"], "later entries win")

	require.NoError(t, cfg.AddDestinations([]string{`Shop\Model;build/shop`}))
	assert.Equal(t, "build/shop", cfg.Destinations[`Shop\Model`])

	require.NoError(t, cfg.AddAliases([]string{"urn:shop;Money;float", "urn:shop;Tags;"}))
	assert.Equal(t, map[string]string{"Money": "float", "Tags": ""}, cfg.Aliases["urn:shop"])
}

func TestOverridesRejectMalformedEntries(t *testing.T) {
	cfg := New()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"namespace without separator", func() error { return cfg.AddNamespaces([]string{"urn:shop"}) }},
		{"namespace with empty xmlns", func() error { return cfg.AddNamespaces([]string{`;Shop`}) }},
		{"destination with extra field", func() error { return cfg.AddDestinations([]string{"a;b;c"}) }},
		{"alias with two fields", func() error { return cfg.AddAliases([]string{"urn:shop;Money"}) }},
		{"alias with empty name", func() error { return cfg.AddAliases([]string{"urn:shop;;float"}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), ErrInvalidOverride)
		})
	}
}

func TestConverter(t *testing.T) {
	cfg := New()
	cfg.NamingStrategy = naming.StrategyLong
	cfg.Namespaces["urn:shop"] = `Shop`

	cc, err := cfg.Converter()
	require.NoError(t, err)
	assert.IsType(t, naming.LongStrategy{}, cc.Naming)
	assert.Equal(t, cfg.Namespaces, cc.Namespaces)

	cfg.NamingStrategy = "medium"
	_, err = cfg.Converter()
	require.Error(t, err)
}
