package rules

const (
	// ResourceTypeContentPolicy is the resource type of mapped content policies.
	ResourceTypeContentPolicy = "wcm/core/components/policy/policy"

	// DefaultIncludedNodePathPatternsAndTypes covers editable template
	// structures and policy mappings, mapped content policies and
	// context-aware configurations.
	DefaultIncludedNodePathPatternsAndTypes = `.*/settings/wcm/templates/[^/]*/structure[cq:Page],` +
		`.*/settings/wcm/templates/[^/]*/policies[cq:Page],` +
		`.*/settings/wcm/policies/.*[` + ResourceTypeContentPolicy + `],` +
		`/(apps|conf)/.*/(sling:configs|settings/cloudconfigs)/.*[cq:Page]`

	// DefaultExcludedNodePathPatternsAndTypes covers initial content of
	// editable templates, which is never published.
	DefaultExcludedNodePathPatternsAndTypes = `.*/settings/wcm/templates/[^/]*/initial[cq:Page]`
)

// DefaultRuleSet returns the built-in include and exclude rules.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Include: MustParse(DefaultIncludedNodePathPatternsAndTypes),
		Exclude: MustParse(DefaultExcludedNodePathPatternsAndTypes),
	}
}
