package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	presets := Builtin()
	require.NotEmpty(t, presets)

	seen := map[string]bool{}
	for _, p := range presets {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Idea)
		assert.False(t, seen[p.Name], "duplicate preset %q", p.Name)
		seen[p.Name] = true
	}
}

func TestLoad_NoFileFallsBackToBuiltin(t *testing.T) {
	presets, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Builtin(), presets)

	presets, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Builtin(), presets)
}

func TestLoad_UserPresetsMergeAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := `
- name: recipes
  idea: My own recipe idea
- name: garden
  idea: A garden planning tool with frost date alerts
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	presets, err := Load(path)
	require.NoError(t, err)

	recipes, ok := Find(presets, "recipes")
	require.True(t, ok)
	assert.Equal(t, "My own recipe idea", recipes.Idea)

	_, ok = Find(presets, "garden")
	assert.True(t, ok)

	// Untouched builtins survive
	_, ok = Find(presets, "habits")
	assert.True(t, ok)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\nnot yaml: ["), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFind_Missing(t *testing.T) {
	_, ok := Find(Builtin(), "nope")
	assert.False(t, ok)
}
