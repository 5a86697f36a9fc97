package validator

import (
	"fmt"
	"strings"

	"github.com/vvka-141/replmeta/internal/rules"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// Settings configures an Engine.
type Settings struct {
	Rules      rules.RuleSet
	AgentNames []string
	// Strict reports subtrees without a comparison date instead of comparing
	// against the epoch.
	Strict   bool
	Severity replmeta.Severity
}

// DefaultSettings returns the built-in rules, the "publish" agent, lenient
// comparison and ERROR severity.
func DefaultSettings() Settings {
	return Settings{
		Rules:      rules.DefaultRuleSet(),
		AgentNames: []string{replmeta.DefaultAgentName},
		Severity:   replmeta.DefaultSeverity,
	}
}

// normalizeAgentNames trims and de-duplicates agent names, keeping their order.
// An empty list means the default agent.
func normalizeAgentNames(names []string) ([]string, error) {
	if len(names) == 0 {
		return []string{replmeta.DefaultAgentName}, nil
	}
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: agent names must not be empty", replmeta.ErrInvalidConfig)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result, nil
}
