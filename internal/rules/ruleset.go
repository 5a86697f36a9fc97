package rules

import (
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// Match is the outcome of classifying a node against a RuleSet.
type Match struct {
	Rule     MatchRule
	Excluded bool
}

// RuleSet holds the ordered include and exclude rules.
type RuleSet struct {
	Include []MatchRule
	Exclude []MatchRule
}

// Classify returns the first include rule matching the node, or else the first
// matching exclude rule. The second return value is false for irrelevant nodes.
func (s RuleSet) Classify(path string, node replmeta.NodeView) (Match, bool) {
	for _, r := range s.Include {
		if r.Matches(path, node) {
			return Match{Rule: r}, true
		}
	}
	for _, r := range s.Exclude {
		if r.Matches(path, node) {
			return Match{Rule: r, Excluded: true}, true
		}
	}
	return Match{}, false
}
