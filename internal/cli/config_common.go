package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/replmeta/internal/config"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// configFlags holds the flags that override configuration options.
type configFlags struct {
	optionsFile string
	include     string
	exclude     string
	agents      []string
	strict      bool
	severity    string
	failOn      string
}

// addConfigFlags registers the configuration flags on cmd.
func addConfigFlags(cmd *cobra.Command, f *configFlags) {
	cmd.Flags().StringVar(&f.optionsFile, "options-file", "", "KEY=VALUE file with validator options")
	cmd.Flags().StringVar(&f.include, "include", "", "Include rules, replacing the configured ones (pattern[type;comparisonDate=CHAIN],...)")
	cmd.Flags().StringVar(&f.exclude, "exclude", "", "Exclude rules, replacing the configured ones")
	cmd.Flags().StringSliceVar(&f.agents, "agents", nil, "Distribution agent names (default publish)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Report nodes without a comparison date instead of comparing against the epoch")
	cmd.Flags().StringVar(&f.severity, "severity", "", "Severity of reported findings (DEBUG, INFO, WARN, ERROR)")
	cmd.Flags().StringVar(&f.failOn, "fail-on", "", "Lowest severity that fails the run (default ERROR)")
}

// flagOptions converts explicitly set flags into options.
func flagOptions(cmd *cobra.Command, f *configFlags) config.Options {
	opts := config.Options{}
	if cmd.Flags().Changed("include") {
		opts[config.OptionIncluded] = f.include
	}
	if cmd.Flags().Changed("exclude") {
		opts[config.OptionExcluded] = f.exclude
	}
	if cmd.Flags().Changed("agents") {
		opts[config.OptionAgentNames] = strings.Join(f.agents, ",")
	}
	if cmd.Flags().Changed("strict") {
		opts[config.OptionStrict] = strconv.FormatBool(f.strict)
	}
	if cmd.Flags().Changed("severity") {
		opts[config.OptionSeverity] = f.severity
	}
	if cmd.Flags().Changed("fail-on") {
		opts[config.OptionFailOn] = f.failOn
	}
	return opts
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if replmeta.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// resolveEffective layers the configuration sources.
// Priority (highest to lowest): flags > REPLMETA_* environment > options file > replmeta.yaml > defaults
func resolveEffective(cmd *cobra.Command, dir string, f *configFlags, logger replmeta.Logger) (config.Effective, error) {
	effective := config.DefaultEffective()

	projectCfg, err := loadProjectConfig(dir)
	if err != nil {
		return effective, err
	}
	if projectCfg != nil {
		if err := effective.Apply(config.ConfigFileName, projectCfg.AsOptions()); err != nil {
			return effective, err
		}
	}

	if f.optionsFile != "" {
		logger.Verbose("Loading options from file: %s", f.optionsFile)
		opts, err := config.LoadOptionsFile(f.optionsFile)
		if err != nil {
			return effective, err
		}
		if err := effective.Apply(f.optionsFile, opts); err != nil {
			return effective, err
		}
	}

	if opts := config.EnvOptions(os.LookupEnv); len(opts) > 0 {
		if err := effective.Apply("environment", opts); err != nil {
			return effective, err
		}
	}

	if opts := flagOptions(cmd, f); len(opts) > 0 {
		if err := effective.Apply("flags", opts); err != nil {
			return effective, err
		}
	}

	logger.Verbose("Configuration sources: %s", strings.Join(effective.Sources, " -> "))
	return effective, nil
}
