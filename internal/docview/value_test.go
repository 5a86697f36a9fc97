package docview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantType  string
		wantVals  []string
		wantMulti bool
	}{
		{"plain string", "Activate", TypeString, []string{"Activate"}, false},
		{"typed date", "{Date}2023-01-01T00:00:00.000Z", TypeDate, []string{"2023-01-01T00:00:00.000Z"}, false},
		{"multi value", "[mix:created,mix:lastModified]", TypeString, []string{"mix:created", "mix:lastModified"}, true},
		{"typed multi value", "{Long}[1,2,3]", TypeLong, []string{"1", "2", "3"}, true},
		{"empty multi value", "[]", TypeString, []string{}, true},
		{"escaped comma", `[a\,b,c]`, TypeString, []string{"a,b", "c"}, true},
		{"escaped brace", `\{literal}`, TypeString, []string{"{literal}"}, false},
		{"unknown type prefix kept", "{Foo}bar", TypeString, []string{"{Foo}bar"}, false},
		{"empty", "", TypeString, []string{""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, v.Type)
			assert.Equal(t, tt.wantVals, v.Values)
			assert.Equal(t, tt.wantMulti, v.Multi)
		})
	}
}

func TestParseValue_DanglingEscape(t *testing.T) {
	_, err := ParseValue(`abc\`)
	assert.Error(t, err)

	_, err = ParseValue(`[a,b\]`)
	assert.Error(t, err)
}

func TestNode_Accessors(t *testing.T) {
	pt, err := ParseProperty(PropertyPrimaryType, "cq:PageContent")
	require.NoError(t, err)
	mixins, err := ParseProperty(PropertyMixinTypes, "[mix:versionable,mix:lastModified]")
	require.NoError(t, err)

	node := NewNode("jcr:content", pt, mixins)
	assert.Equal(t, "jcr:content", node.Name())

	primary, ok := node.PrimaryType()
	assert.True(t, ok)
	assert.Equal(t, "cq:PageContent", primary)
	assert.Equal(t, []string{"mix:versionable", "mix:lastModified"}, node.MixinTypes())
	assert.Equal(t, []string{PropertyPrimaryType, PropertyMixinTypes}, node.PropertyNames())

	_, ok = node.Property("cq:lastModified")
	assert.False(t, ok)

	empty := NewNode("x")
	_, ok = empty.PrimaryType()
	assert.False(t, ok)
	assert.Nil(t, empty.MixinTypes())
}
