package rules

import (
	"fmt"
	"strings"

	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// AttributeComparisonDate is the only attribute allowed after the type.
const AttributeComparisonDate = "comparisonDate"

// RuleError reports a malformed rule entry. It matches replmeta.ErrInvalidRule
// with errors.Is.
type RuleError struct {
	Entry  string
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("invalid rule entry %q: %s", e.Entry, e.Reason)
}

func (e *RuleError) Unwrap() error { return replmeta.ErrInvalidRule }

// Parse reads a comma-separated list of rule entries. Surrounding whitespace
// and empty entries are ignored.
func Parse(option string) ([]MatchRule, error) {
	var result []MatchRule
	for _, entry := range strings.Split(option, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		r, err := parseEntry(entry)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, nil
}

// MustParse is like Parse but panics on error. Intended for built-in defaults.
func MustParse(option string) []MatchRule {
	r, err := Parse(option)
	if err != nil {
		panic(err)
	}
	return r
}

func parseEntry(entry string) (MatchRule, error) {
	startType := strings.LastIndexByte(entry, '[')
	if startType == -1 {
		return MatchRule{}, &RuleError{Entry: entry, Reason: `each entry must end with a type enclosed by "[" and "]"`}
	}
	if entry[len(entry)-1] != ']' {
		return MatchRule{}, &RuleError{Entry: entry, Reason: `each entry must end with "]"`}
	}

	parts := strings.Split(entry[startType+1:len(entry)-1], ";")
	nodeType := strings.TrimSpace(parts[0])
	if nodeType == "" {
		return MatchRule{}, &RuleError{Entry: entry, Reason: "type must not be empty"}
	}

	chain := DateChainModified
	for _, attr := range parts[1:] {
		key, value, found := strings.Cut(attr, "=")
		if !found {
			return MatchRule{}, &RuleError{Entry: entry, Reason: fmt.Sprintf("attribute %q must have the form name=value", attr)}
		}
		switch strings.TrimSpace(key) {
		case AttributeComparisonDate:
			c, err := ParseDateChain(strings.TrimSpace(value))
			if err != nil {
				return MatchRule{}, &RuleError{Entry: entry, Reason: err.Error()}
			}
			chain = c
		default:
			return MatchRule{}, &RuleError{Entry: entry, Reason: fmt.Sprintf("unknown attribute %q (expected %s)", strings.TrimSpace(key), AttributeComparisonDate)}
		}
	}

	r, err := NewMatchRule(entry[:startType], nodeType, chain)
	if err != nil {
		return MatchRule{}, &RuleError{Entry: entry, Reason: err.Error()}
	}
	return r, nil
}

// Format renders rules back into configuration syntax.
func Format(rules []MatchRule) string {
	entries := make([]string, len(rules))
	for i, r := range rules {
		entries[i] = r.String()
	}
	return strings.Join(entries, ",")
}
