package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderYAML = `Shop\Model\Order:
    properties:
        id:
            - NotNull: ~
        code:
            - Length: {max: 3}
            - NotNull: ~
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--quiet"))

	err := cmd.Execute()

	return out.String(), err
}

func TestConvertWritesFilePerClass(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "convert",
		"--config", filepath.Join("testdata", "config.yaml"),
		"--ns-dest", `Shop\Model;`+dir,
		filepath.Join("testdata", "order.xsd"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "Order.yml"))
	require.NoError(t, err)
	assert.Equal(t, orderYAML, string(data))

	assert.NoFileExists(t, filepath.Join(dir, "Code.yml"), "simple types only contribute rules to their uses")
}

func TestConvertSingleFileFromFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validation.yml")

	_, err := run(t, "convert",
		"--ns-map", `urn:shop;Shop\Model`,
		"--single-file", path,
		filepath.Join("testdata", "order.xsd"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orderYAML, string(data))
	assert.NotContains(t, string(data), `Shop\Model\Code:`)
}

func TestConvertDryRun(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "convert", "--dry-run",
		"--ns-map", `urn:shop;Shop\Model`,
		"--ns-dest", `Shop\Model;`+dir,
		filepath.Join("testdata", "order.xsd"))
	require.NoError(t, err)

	assert.Contains(t, out, "# "+filepath.Join(dir, "Order.yml"))
	assert.Contains(t, out, orderYAML)
	assert.NoFileExists(t, filepath.Join(dir, "Order.yml"))
}

func TestConvertFailures(t *testing.T) {
	schema := filepath.Join("testdata", "order.xsd")

	tests := []struct {
		name string
		args []string
	}{
		{"no schema", []string{"convert", "--ns-map", "urn:shop;Shop"}},
		{"no namespace mapping", []string{"convert", "--single-file", "x.yml", schema}},
		{"unmapped namespace", []string{"convert", "--ns-map", "urn:other;Other", "--single-file", "x.yml", schema}},
		{"malformed override", []string{"convert", "--ns-map", "urn:shop", schema}},
		{"unknown naming strategy", []string{"convert", "--ns-map", "urn:shop;Shop", "--single-file", "x.yml", "--naming-strategy", "tiny", schema}},
		{"missing schema file", []string{"convert", "--ns-map", "urn:shop;Shop", "--single-file", "x.yml", "missing.xsd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", filepath.Join("testdata", "order.xsd"))
	require.NoError(t, err)

	assert.Contains(t, out, "(urn:shop)")
	assert.Contains(t, out, "  simpleType Code\n    maxLength=3\n")
	assert.Contains(t, out, "  complexType Order\n")
	assert.Contains(t, out, "    element note [0..1]\n")
	assert.Contains(t, out, "    attribute id\n")
}

func TestInspectDump(t *testing.T) {
	out, err := run(t, "inspect", "--dump", filepath.Join("testdata", "order.xsd"))
	require.NoError(t, err)
	assert.Contains(t, out, `TargetNamespace: (string) (len=8) "urn:shop"`)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "xsd2validator version dev\n", out)
}
