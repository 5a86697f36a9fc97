package replication

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/replmeta/internal/docview"
)

func mustNode(t *testing.T, attrs map[string]string) *docview.Node {
	t.Helper()
	node := docview.NewNode("jcr:content")
	for name, raw := range attrs {
		p, err := docview.ParseProperty(name, raw)
		require.NoError(t, err)
		node.Set(p.Name, p.Value)
	}
	return node
}

func TestAgentPropertyNames(t *testing.T) {
	names := []string{PropertyLastReplicated, PropertyLastPublished}

	assert.Equal(t, names, AgentPropertyNames(names, "publish"))
	assert.Equal(t,
		[]string{"cq:lastReplicated_author-preview", "cq:lastPublished_author-preview"},
		AgentPropertyNames(names, "author-preview"))
}

func TestStatus_DefaultAgent(t *testing.T) {
	node := mustNode(t, map[string]string{
		"cq:lastReplicated":        "{Date}2023-01-01T00:00:00.000Z",
		"cq:lastReplicationAction": "Activate",
	})
	status := NewStatus(node, "publish")
	assert.Equal(t, "publish", status.AgentName())

	date, err := status.LastDate()
	require.NoError(t, err)
	assert.True(t, date.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))

	action, err := status.LastAction()
	require.NoError(t, err)
	assert.Equal(t, ActionActivate, action.Action)
}

func TestStatus_FallsBackToLastPublished(t *testing.T) {
	node := mustNode(t, map[string]string{
		"cq:lastPublished": "{Date}2023-02-01T00:00:00.000Z",
	})
	rec, ok := NewStatus(node, "publish").LookupLastDate()
	require.True(t, ok)
	assert.Equal(t, PropertyLastPublished, rec.Property)
	assert.Equal(t, "2023-02-01T00:00:00Z", rec.String())
}

func TestStatus_UnsuffixedNotFoundForOtherAgent(t *testing.T) {
	node := mustNode(t, map[string]string{
		"cq:lastReplicated":        "{Date}2023-01-01T00:00:00.000Z",
		"cq:lastReplicationAction": "Activate",
	})
	status := NewStatus(node, "author-preview")

	_, ok := status.LookupLastDate()
	assert.False(t, ok)
	_, ok = status.LookupLastAction()
	assert.False(t, ok)

	_, err := status.LastDate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotSet))
	assert.Equal(t,
		"Replication properties cq:lastReplicated_author-preview or cq:lastPublished_author-preview not found",
		err.Error())

	_, err = status.LastAction()
	assert.True(t, errors.Is(err, ErrNotSet))
	assert.Equal(t, "Replication property cq:lastReplicationAction_author-preview not found", err.Error())
}

func TestStatus_SuffixedAgent(t *testing.T) {
	node := mustNode(t, map[string]string{
		"cq:lastReplicated_author-preview":        "{Date}2023-03-01T00:00:00.000Z",
		"cq:lastReplicationAction_author-preview": "Deactivate",
	})
	status := NewStatus(node, "author-preview")

	action, err := status.LastAction()
	require.NoError(t, err)
	assert.Equal(t, ActionDeactivate, action.Action)

	_, err = NewStatus(node, "publish").LastAction()
	assert.True(t, errors.Is(err, ErrNotSet))
}

func TestStatus_InvalidDate(t *testing.T) {
	node := mustNode(t, map[string]string{"cq:lastReplicated": "not-a-date"})
	status := NewStatus(node, "publish")

	rec, ok := status.LookupLastDate()
	require.True(t, ok)
	assert.Error(t, rec.Err)
	assert.Equal(t, "not-a-date", rec.String())

	_, err := status.LastDate()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotSet))
	assert.Contains(t, err.Error(), "cq:lastReplicated")
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"Activate", ActionActivate},
		{"Deactivate", ActionDeactivate},
		{"Delete", ActionDelete},
		{"Test", ActionTest},
		{"Reverse", ActionReverse},
		{"Internal Poll", ActionInternalPoll},
		{"activate", ActionActivate},
		{"ACTIVATE", ActionActivate},
		{"INTERNAL_POLL", ActionInternalPoll},
		{"internal poll", ActionInternalPoll},
		{"Activated", ActionUnrecognized},
		{"Publish", ActionUnrecognized},
		{"", ActionUnrecognized},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAction(tt.in))
		})
	}
}

func TestRecordedAction_String(t *testing.T) {
	assert.Equal(t, "Internal Poll", RecordedAction{Action: ActionInternalPoll, Raw: "Internal Poll"}.String())
	assert.Equal(t, "Publish", RecordedAction{Action: ActionUnrecognized, Raw: "Publish"}.String())
	assert.Equal(t, "Unrecognized", ActionUnrecognized.String())
}
