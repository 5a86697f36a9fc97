package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/replmeta/internal/docview"
)

func mustNode(t *testing.T, attrs map[string]string) *docview.Node {
	t.Helper()
	node := docview.NewNode("node")
	for name, raw := range attrs {
		p, err := docview.ParseProperty(name, raw)
		require.NoError(t, err)
		node.Set(p.Name, p.Value)
	}
	return node
}

func TestMatchRule_Matches(t *testing.T) {
	pageRule := MustMatchRule(".*/tpl/[^/]*/structure", TypePage, DateChainModified)
	policyRule := MustMatchRule(".*/settings/wcm/policies/.*", ResourceTypeContentPolicy, DateChainModified)

	page := mustNode(t, map[string]string{"jcr:primaryType": "cq:Page"})
	folder := mustNode(t, map[string]string{"jcr:primaryType": "nt:folder"})
	policy := mustNode(t, map[string]string{
		"jcr:primaryType":    "nt:unstructured",
		"sling:resourceType": ResourceTypeContentPolicy,
	})
	pageContentPolicy := mustNode(t, map[string]string{
		"jcr:primaryType":    "cq:PageContent",
		"sling:resourceType": ResourceTypeContentPolicy,
	})
	folderWithResourceType := mustNode(t, map[string]string{
		"jcr:primaryType":    "sling:Folder",
		"sling:resourceType": ResourceTypeContentPolicy,
	})
	untyped := mustNode(t, nil)

	tests := []struct {
		name string
		rule MatchRule
		path string
		node *docview.Node
		want bool
	}{
		{"page matches", pageRule, "/tpl/a/structure", page, true},
		{"pattern must match fully", pageRule, "/tpl/a/structure/jcr:content", page, false},
		{"type mismatch", pageRule, "/tpl/a/structure", folder, false},
		{"no primary type", pageRule, "/tpl/a/structure", untyped, false},
		{"resource type on unstructured", policyRule, "/conf/x/settings/wcm/policies/p1", policy, true},
		{"resource type on page content", policyRule, "/conf/x/settings/wcm/policies/p1", pageContentPolicy, true},
		{"resource type ignored on other types", policyRule, "/conf/x/settings/wcm/policies/p1", folderWithResourceType, false},
		{"unstructured without resource type", policyRule, "/conf/x/settings/wcm/policies/p1", mustNode(t, map[string]string{"jcr:primaryType": "nt:unstructured"}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Matches(tt.path, tt.node))
		})
	}
}

func TestMatchRule_Equal(t *testing.T) {
	a := MustMatchRule("/a/.*", TypePage, DateChainModified)
	assert.True(t, a.Equal(MustMatchRule("/a/.*", TypePage, DateChainModified)))
	assert.False(t, a.Equal(MustMatchRule("/a/.*", TypePage, DateChainModifiedCreatedOrCurrent)))
	assert.False(t, a.Equal(MustMatchRule("/b/.*", TypePage, DateChainModified)))
	assert.False(t, a.Equal(MustMatchRule("/a/.*", TypeTemplate, DateChainModified)))
}

func TestNewMatchRule_InvalidPattern(t *testing.T) {
	_, err := NewMatchRule("(?<=x)y", TypePage, DateChainModified)
	assert.Error(t, err)
	assert.Panics(t, func() { MustMatchRule("(", TypePage, DateChainModified) })
}

func TestIsPageLike(t *testing.T) {
	assert.True(t, IsPageLike(TypePage))
	assert.True(t, IsPageLike(TypeTemplate))
	assert.False(t, IsPageLike(TypePageContent))
	assert.False(t, IsPageLike(""))
}

func TestRuleSet_Classify(t *testing.T) {
	page := mustNode(t, map[string]string{"jcr:primaryType": "cq:Page"})
	set := RuleSet{
		Include: []MatchRule{
			MustMatchRule("/conf/.*", TypePage, DateChainModified),
			MustMatchRule("/conf/a", TypePage, DateChainCQModifiedCreatedOrCurrent),
		},
		Exclude: []MatchRule{
			MustMatchRule("/conf/a", TypePage, DateChainModified),
			MustMatchRule("/other/.*", TypePage, DateChainModified),
		},
	}

	m, ok := set.Classify("/conf/a", page)
	require.True(t, ok)
	assert.False(t, m.Excluded, "include rules are consulted before exclude rules")
	assert.Equal(t, DateChainModified, m.Rule.Chain, "first matching include rule wins")

	m, ok = set.Classify("/other/b", page)
	require.True(t, ok)
	assert.True(t, m.Excluded)

	_, ok = set.Classify("/content/c", page)
	assert.False(t, ok)
}

func TestDefaultRuleSet(t *testing.T) {
	set := DefaultRuleSet()
	require.Len(t, set.Include, 4)
	require.Len(t, set.Exclude, 1)

	page := mustNode(t, map[string]string{"jcr:primaryType": "cq:Page"})
	policy := mustNode(t, map[string]string{
		"jcr:primaryType":    "nt:unstructured",
		"sling:resourceType": ResourceTypeContentPolicy,
	})

	m, ok := set.Classify("/conf/site/settings/wcm/templates/home/structure", page)
	require.True(t, ok)
	assert.False(t, m.Excluded)

	m, ok = set.Classify("/conf/site/settings/wcm/templates/home/initial", page)
	require.True(t, ok)
	assert.True(t, m.Excluded)

	_, ok = set.Classify("/conf/site/settings/wcm/policies/core/text/default", policy)
	assert.True(t, ok)

	_, ok = set.Classify("/conf/site/sling:configs/com.example.Config", page)
	assert.True(t, ok)

	_, ok = set.Classify("/content/site/en", page)
	assert.False(t, ok)
}
