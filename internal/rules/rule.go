package rules

import (
	"fmt"
	"regexp"

	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// Node types with special meaning for matching.
const (
	TypePage             = "cq:Page"
	TypeTemplate         = "cq:Template"
	TypeUnstructured     = "nt:unstructured"
	TypePageContent      = "cq:PageContent"
	PropertyResourceType = "sling:resourceType"
)

// IsPageLike reports whether nodes of the primary type keep their metadata in
// a jcr:content child rather than on themselves.
func IsPageLike(primaryType string) bool {
	return primaryType == TypePage || primaryType == TypeTemplate
}

// MatchRule selects nodes by path pattern and type. Rules are immutable.
type MatchRule struct {
	pattern *regexp.Regexp
	source  string
	Type    string
	Chain   DateChain
}

// NewMatchRule compiles a rule. The pattern must match the whole node path.
func NewMatchRule(pattern, nodeType string, chain DateChain) (MatchRule, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return MatchRule{}, fmt.Errorf("invalid path pattern %q: %w", pattern, err)
	}
	return MatchRule{pattern: re, source: pattern, Type: nodeType, Chain: chain}, nil
}

// MustMatchRule is like NewMatchRule but panics on an invalid pattern.
func MustMatchRule(pattern, nodeType string, chain DateChain) MatchRule {
	r, err := NewMatchRule(pattern, nodeType, chain)
	if err != nil {
		panic(err)
	}
	return r
}

// Pattern returns the configured pattern text.
func (r MatchRule) Pattern() string { return r.source }

// Matches reports whether the rule applies to the node at path: the pattern
// matches the path and either the primary type equals the rule type, or the
// node is a generic container whose sling:resourceType equals the rule type.
func (r MatchRule) Matches(path string, node replmeta.NodeView) bool {
	if r.pattern == nil || !r.pattern.MatchString(path) {
		return false
	}
	primary, _ := node.PrimaryType()
	if primary == r.Type {
		return true
	}
	if primary != TypeUnstructured && primary != TypePageContent {
		return false
	}
	v, ok := node.Property(PropertyResourceType)
	if !ok {
		return false
	}
	resourceType, ok := v.First()
	return ok && resourceType == r.Type
}

// Equal compares rules structurally.
func (r MatchRule) Equal(other MatchRule) bool {
	return r.source == other.source && r.Type == other.Type && r.Chain == other.Chain
}

// String renders the rule in configuration syntax.
func (r MatchRule) String() string {
	if r.Chain == DateChainModified {
		return fmt.Sprintf("%s[%s]", r.source, r.Type)
	}
	return fmt.Sprintf("%s[%s;%s=%s]", r.source, r.Type, AttributeComparisonDate, r.Chain)
}
