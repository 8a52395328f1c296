package band

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const chr21Spec = `chromosome: "21"
bands:
  - pTer
  - p13
  - p12
  - p11
  - Cen
  - q11
  - q21
  - q22:
      - q22.1:
          - q22.11
          - q22.12
          - q22.13
      - q22.2
      - q22.3
  - qTer
`

func TestLoadSpecFile(t *testing.T) {
	path := writeSpec(t, t.TempDir(), "chr21.yaml", chr21Spec)

	spec, err := LoadSpecFile(path)
	require.NoError(t, err)
	assert.Equal(t, "21", spec.Number)
	require.Len(t, spec.Bands, 9)

	assert.Equal(t, Leaf("pTer"), spec.Bands[0])
	assert.Equal(t, Leaf("Cen"), spec.Bands[4])

	q22 := spec.Bands[7]
	assert.True(t, q22.IsContainer())
	assert.Equal(t, "q22", q22.Token)
	require.Len(t, q22.Children, 3)

	inner := q22.Children[0]
	assert.True(t, inner.IsContainer())
	assert.Equal(t, "q22.1", inner.Token)
	assert.Equal(t, []Node{Leaf("q22.11"), Leaf("q22.12"), Leaf("q22.13")}, inner.Children)
}

func TestLoadSpecFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"missing chromosome", "bands:\n  - pTer\n"},
		{"empty bands", "chromosome: \"1\"\nbands: []\n"},
		{"bands not a sequence", "chromosome: \"1\"\nbands: pTer\n"},
		{"empty token", "chromosome: \"1\"\nbands:\n  - \"\"\n"},
		{"container with no children", "chromosome: \"1\"\nbands:\n  - p36: []\n"},
		{"multi-key container", "chromosome: \"1\"\nbands:\n  - p36:\n      - p36.1\n    p35:\n      - p35.1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSpec(t, dir, tt.name+".yaml", tt.content)
			_, err := LoadSpecFile(path)
			assert.Error(t, err)
		})
	}

	_, err := LoadSpecFile(filepath.Join(dir, "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoadSpecDir(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "chr21.yaml", chr21Spec)
	writeSpec(t, dir, filepath.Join("allosomes", "chrY.yml"), `chromosome: "Y"
bands:
  - pTer
  - p11
  - Cen
  - q11
  - q12
  - qTer
`)
	writeSpec(t, dir, "notes.txt", "ignored") // non-YAML files are skipped

	specs, err := LoadSpecDir(dir)
	require.NoError(t, err)
	require.Len(t, specs, 2)

	// Sorted path order: allosomes/chrY.yml before chr21.yaml.
	assert.Equal(t, "Y", specs[0].Number)
	assert.Equal(t, "21", specs[1].Number)
}

func TestLoadSpecDir_Empty(t *testing.T) {
	_, err := LoadSpecDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no band spec files")
}

func TestBuildFromSpecs(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "chr21.yaml", chr21Spec)

	specs, err := LoadSpecDir(dir)
	require.NoError(t, err)

	b := newTestBuilder(t)
	require.NoError(t, b.BuildFromSpecs(specs))
	o := b.Ontology()

	assert.True(t, o.IsSubclassOf("HumanChromosome21Bandq22.11", "HumanChromosome21Bandq"))
	assert.True(t, o.IsSubclassOf("HumanChromosome21Cen", "Centromere"))

	info, ok := b.Info("HumanChromosome21Bandq22.11")
	require.True(t, ok)
	assert.Equal(t, "HumanChromosome21Bandq22.1", info.SubBandOf)
}
