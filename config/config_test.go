package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cytogenlab/karyonto/vocabulary/karyotype"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, karyotype.Namespace, cfg.Ontology.IRI)
	assert.Equal(t, "turtle", cfg.Output.Format)
	assert.Empty(t, cfg.Output.Path)
	assert.Empty(t, cfg.Bands.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Run("missing IRI", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Ontology.IRI = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unsupported format", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Output.Format = "rdfxml"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rdfxml")
	})

	t.Run("bands dir missing", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Bands.Dir = filepath.Join(t.TempDir(), "nope")
		assert.Error(t, cfg.Validate())
	})

	t.Run("bands dir is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bands.yaml")
		require.NoError(t, os.WriteFile(path, []byte("chromosome: \"1\"\n"), 0644))

		cfg := DefaultConfig()
		cfg.Bands.Dir = path
		assert.Error(t, cfg.Validate())
	})

	t.Run("bands dir exists", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Bands.Dir = t.TempDir()
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "karyonto.yaml")
	content := `ontology:
  version: "2026.1"
output:
  format: functional
  path: out.ofn
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	// Fields absent from the file keep their defaults.
	assert.Equal(t, karyotype.Namespace, cfg.Ontology.IRI)
	assert.Equal(t, "2026.1", cfg.Ontology.Version)
	assert.Equal(t, "functional", cfg.Output.Format)
	assert.Equal(t, "out.ofn", cfg.Output.Path)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [not a mapping"), 0644))
	_, err = LoadFromFile(path)
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "karyonto.yaml")

	cfg := DefaultConfig()
	cfg.Ontology.Version = "2026.2"
	cfg.Output.Format = "functional"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Output.Path = "base.ttl"

	base.Merge(&Config{
		Ontology: OntologyConfig{Version: "2026.3"},
		Output:   OutputConfig{Format: "functional"},
	})

	assert.Equal(t, "2026.3", base.Ontology.Version)
	assert.Equal(t, "functional", base.Output.Format)
	assert.Equal(t, "base.ttl", base.Output.Path, "zero values must not overwrite")
	assert.Equal(t, karyotype.Namespace, base.Ontology.IRI)

	base.Merge(nil) // no-op
	assert.Equal(t, "2026.3", base.Ontology.Version)
}
