package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "replmeta.yaml"

// ProjectConfig is the content of replmeta.yaml.
type ProjectConfig struct {
	Include  []string `yaml:"include,omitempty"`
	Exclude  []string `yaml:"exclude,omitempty"`
	Agents   []string `yaml:"agents,omitempty"`
	Strict   *bool    `yaml:"strict,omitempty"`
	Severity string   `yaml:"severity,omitempty"`
	FailOn   string   `yaml:"fail_on,omitempty"`
	// Options holds raw options, applied before the typed fields.
	Options map[string]string `yaml:"options,omitempty"`
}

// Load reads replmeta.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", replmeta.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// AsOptions flattens the project config into Options. List fields are
// joined with commas, the separator of the option syntax.
func (c *ProjectConfig) AsOptions() Options {
	opts := Options{}
	for k, v := range c.Options {
		opts[k] = v
	}
	if c.Include != nil {
		opts[OptionIncluded] = strings.Join(c.Include, ",")
	}
	if c.Exclude != nil {
		opts[OptionExcluded] = strings.Join(c.Exclude, ",")
	}
	if len(c.Agents) > 0 {
		opts[OptionAgentNames] = strings.Join(c.Agents, ",")
	}
	if c.Strict != nil {
		opts[OptionStrict] = fmt.Sprint(*c.Strict)
	}
	if c.Severity != "" {
		opts[OptionSeverity] = c.Severity
	}
	if c.FailOn != "" {
		opts[OptionFailOn] = c.FailOn
	}
	return opts
}
