package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// standing in for t.Chdir which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoader_DefaultsWhenNoConfigFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoader_ProjectConfigInParentDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ProjectConfigFile),
		[]byte("output:\n  format: functional\n"), 0644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	chdir(t, nested)

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "functional", cfg.Output.Format)
}

func TestLoader_UserThenProjectPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	userDir := filepath.Join(home, UserConfigDir)
	require.NoError(t, os.MkdirAll(userDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, UserConfigFile),
		[]byte("ontology:\n  version: \"user\"\noutput:\n  path: user.ttl\n"), 0644))

	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, ProjectConfigFile),
		[]byte("ontology:\n  version: \"project\"\n"), 0644))
	chdir(t, project)

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)

	// Project overrides user; user fields without a project value survive.
	assert.Equal(t, "project", cfg.Ontology.Version)
	assert.Equal(t, "user.ttl", cfg.Output.Path)
}

func TestLoader_InvalidMergedConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, ProjectConfigFile),
		[]byte("output:\n  format: rdfxml\n"), 0644))
	chdir(t, project)

	_, err := NewLoader(nil).Load()
	assert.Error(t, err)
}
