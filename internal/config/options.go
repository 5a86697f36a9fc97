package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vvka-141/replmeta/internal/rules"
	"github.com/vvka-141/replmeta/internal/validator"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// Option names, compatible with the content package validator settings.
const (
	OptionIncluded   = "includedNodePathPatternsAndTypes"
	OptionExcluded   = "excludedNodePathPatternsAndTypes"
	OptionStrict     = "strictLastModificationDateCheck"
	OptionAgentNames = "agentNames"
	OptionSeverity   = "severity"
	OptionFailOn     = "failOn"
)

// Environment variables mapped onto options.
const (
	EnvAgentNames = "REPLMETA_AGENT_NAMES"
	EnvStrict     = "REPLMETA_STRICT"
	EnvSeverity   = "REPLMETA_SEVERITY"
	EnvFailOn     = "REPLMETA_FAIL_ON"
)

var envOptions = map[string]string{
	EnvAgentNames: OptionAgentNames,
	EnvStrict:     OptionStrict,
	EnvSeverity:   OptionSeverity,
	EnvFailOn:     OptionFailOn,
}

// Options is one configuration layer as a flat name/value map.
type Options map[string]string

// ParseOptions parses KEY=VALUE lines. Comments, quoting and export prefixes
// follow .env conventions.
func ParseOptions(content string) (Options, error) {
	m, err := godotenv.Unmarshal(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", replmeta.ErrInvalidConfig, err)
	}
	return Options(m), nil
}

// LoadOptionsFile reads an options file.
func LoadOptionsFile(path string) (Options, error) {
	m, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: options file %s: %v", replmeta.ErrInvalidConfig, path, err)
	}
	return Options(m), nil
}

// EnvOptions collects the REPLMETA_* variables found by lookup.
func EnvOptions(lookup func(string) (string, bool)) Options {
	opts := Options{}
	for env, option := range envOptions {
		if v, ok := lookup(env); ok {
			opts[option] = v
		}
	}
	return opts
}

// Names returns the option names in sorted order.
func (o Options) Names() []string {
	names := make([]string, 0, len(o))
	for k := range o {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Effective is the resolved configuration.
type Effective struct {
	Settings validator.Settings
	// FailOn is the lowest severity that fails a validation run.
	FailOn replmeta.Severity
	// Sources lists the applied layers in order.
	Sources []string
}

// DefaultEffective returns the built-in configuration.
func DefaultEffective() Effective {
	return Effective{
		Settings: validator.DefaultSettings(),
		FailOn:   replmeta.SeverityError,
		Sources:  []string{"defaults"},
	}
}

// Apply overlays opts onto the configuration. Unknown option names and
// invalid values are errors wrapping replmeta.ErrInvalidConfig, or
// replmeta.ErrInvalidRule for malformed rules. The configuration is left
// unchanged on error.
func (e *Effective) Apply(source string, opts Options) error {
	next := *e
	next.Settings.Rules.Include = append([]rules.MatchRule(nil), e.Settings.Rules.Include...)
	next.Settings.Rules.Exclude = append([]rules.MatchRule(nil), e.Settings.Rules.Exclude...)

	for _, name := range opts.Names() {
		value := opts[name]
		if err := next.set(name, value); err != nil {
			return fmt.Errorf("%s: option %s: %w", source, name, err)
		}
	}

	next.Sources = append(append([]string(nil), e.Sources...), source)
	*e = next
	return nil
}

func (e *Effective) set(name, value string) error {
	switch name {
	case OptionIncluded:
		r, err := rules.Parse(value)
		if err != nil {
			return err
		}
		e.Settings.Rules.Include = r
	case OptionExcluded:
		r, err := rules.Parse(value)
		if err != nil {
			return err
		}
		e.Settings.Rules.Exclude = r
	case OptionStrict:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %q is not a boolean", replmeta.ErrInvalidConfig, value)
		}
		e.Settings.Strict = b
	case OptionAgentNames:
		e.Settings.AgentNames = splitList(value)
	case OptionSeverity:
		s, err := replmeta.ParseSeverity(value)
		if err != nil {
			return err
		}
		e.Settings.Severity = s
	case OptionFailOn:
		s, err := replmeta.ParseSeverity(value)
		if err != nil {
			return err
		}
		e.FailOn = s
	default:
		return fmt.Errorf("%w: unknown option", replmeta.ErrInvalidConfig)
	}
	return nil
}

func splitList(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
