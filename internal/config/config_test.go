package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/replmeta/pkg/replmeta"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `include:
  - .*/settings/wcm/templates/[^/]*/structure[cq:Page]
  - .*/settings/wcm/policies/.*[wcm/core/components/policy/policy;comparisonDate=MODIFIED_CREATED_OR_CURRENT]
exclude: []
agents: [publish, preview]
strict: true
severity: warn
fail_on: WARN
options:
  agentNames: ignored
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Len(t, cfg.Include, 2)
	assert.NotNil(t, cfg.Exclude)
	assert.Empty(t, cfg.Exclude)
	assert.Equal(t, []string{"publish", "preview"}, cfg.Agents)
	require.NotNil(t, cfg.Strict)
	assert.True(t, *cfg.Strict)
	assert.Equal(t, "warn", cfg.Severity)
	assert.Equal(t, "WARN", cfg.FailOn)

	opts := cfg.AsOptions()
	assert.Equal(t, "publish,preview", opts[OptionAgentNames], "typed fields win over raw options")
	assert.Equal(t, "", opts[OptionExcluded])
	assert.Equal(t, "true", opts[OptionStrict])
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("severity: INFO\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Nil(t, cfg.Include)
	assert.Nil(t, cfg.Strict)
	assert.Equal(t, Options{OptionSeverity: "INFO"}, cfg.AsOptions())
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.ErrorIs(t, err, replmeta.ErrInvalidConfig)
	assert.Nil(t, cfg)
}
