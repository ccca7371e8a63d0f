package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-lens/pkg/layout"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, layout.ModeForce, cfg.LayoutMode())
	assert.Equal(t, 33*time.Millisecond, cfg.Layout.TickInterval())
	assert.Equal(t, layout.Bounds{Width: 2000, Height: 1500}, cfg.Bounds())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
layout:
  mode: radial
  seed: 42
  width: 1000
  height: 800
clusters:
  count: 8
log_level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, layout.ModeRadial, cfg.LayoutMode())
	assert.Equal(t, int64(42), cfg.Layout.Seed)
	assert.Equal(t, 8, cfg.Clusters.Count)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched fields keep defaults.
	assert.Equal(t, 33, cfg.Layout.TickMillis)
	assert.Equal(t, layout.DefaultForceParams(), cfg.Layout.Force)
}

func TestParseRejectsBadMode(t *testing.T) {
	_, err := Parse([]byte("layout:\n  mode: spiral\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oneof")
}

func TestParseRejectsBadDamping(t *testing.T) {
	_, err := Parse([]byte(`
layout:
  force:
    damping: 1.5
`))
	require.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("layout: [not a map"))
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  mode: hierarchical\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, layout.ModeHierarchical, cfg.LayoutMode())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
