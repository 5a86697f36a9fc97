package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/replmeta/internal/config"
	"github.com/vvka-141/replmeta/internal/logging"
	"github.com/vvka-141/replmeta/internal/rules"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

func TestListTemplates(t *testing.T) {
	templates, err := ListTemplates()
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "strict"}, templates)
}

func TestCreateConfig_DefaultMatchesBuiltins(t *testing.T) {
	dir := t.TempDir()
	recorder := logging.NewRecorder()

	written, err := NewScaffolder(recorder).CreateConfig(DefaultTemplate, dir, nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "replmeta.yaml"),
		filepath.Join(dir, "validator.env"),
	}, written)
	assert.True(t, recorder.Contains("Creating file: replmeta.yaml"))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	effective := config.DefaultEffective()
	require.NoError(t, effective.Apply(config.ConfigFileName, cfg.AsOptions()))

	defaults := rules.DefaultRuleSet()
	assert.Equal(t, rules.Format(defaults.Include), rules.Format(effective.Settings.Rules.Include))
	assert.Equal(t, rules.Format(defaults.Exclude), rules.Format(effective.Settings.Rules.Exclude))
	assert.Equal(t, []string{replmeta.DefaultAgentName}, effective.Settings.AgentNames)
	assert.False(t, effective.Settings.Strict)
	assert.Equal(t, replmeta.SeverityError, effective.FailOn)

	opts, err := config.LoadOptionsFile(filepath.Join(dir, "validator.env"))
	require.NoError(t, err)
	require.NoError(t, effective.Apply("validator.env", opts))
	assert.Equal(t, "publish", opts[config.OptionAgentNames])
}

func TestCreateConfig_StrictWithAgents(t *testing.T) {
	dir := t.TempDir()

	_, err := NewScaffolder(nil).CreateConfig("strict", dir, []string{"publish", "preview"}, false)
	require.NoError(t, err)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"publish", "preview"}, cfg.Agents)

	effective := config.DefaultEffective()
	require.NoError(t, effective.Apply(config.ConfigFileName, cfg.AsOptions()))
	assert.True(t, effective.Settings.Strict)
	assert.Equal(t, replmeta.SeverityWarn, effective.FailOn)

	last := effective.Settings.Rules.Include[len(effective.Settings.Rules.Include)-1]
	assert.Equal(t, rules.DateChainCQModifiedCreatedOrCurrent, last.Chain)
}

func TestCreateConfig_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "replmeta.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("severity: INFO\n"), 0644))

	_, err := NewScaffolder(nil).CreateConfig(DefaultTemplate, dir, nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, statErr := os.Stat(filepath.Join(dir, "validator.env"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "nothing is written on conflict")

	_, err = NewScaffolder(nil).CreateConfig(DefaultTemplate, dir, nil, true)
	require.NoError(t, err)
	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Contains(t, string(content), "include:")
}

func TestCreateConfig_UnknownTemplate(t *testing.T) {
	_, err := NewScaffolder(nil).CreateConfig("minimal", t.TempDir(), nil, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, replmeta.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "available: default, strict")
}
