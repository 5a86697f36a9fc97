package replication

import "strings"

// Action is the last recorded lifecycle action of a replication agent.
type Action int

const (
	ActionUnrecognized Action = iota
	ActionActivate
	ActionDeactivate
	ActionDelete
	ActionTest
	ActionReverse // deprecated by the replication API but still found in exports
	ActionInternalPoll
)

var actionNames = []struct {
	action Action
	name   string
}{
	{ActionActivate, "Activate"},
	{ActionDeactivate, "Deactivate"},
	{ActionDelete, "Delete"},
	{ActionTest, "Test"},
	{ActionReverse, "Reverse"},
	{ActionInternalPoll, "Internal Poll"},
}

// ParseAction maps a recorded property value to an Action. Names are matched
// case-insensitively, and "_" is accepted in place of a space
// ("INTERNAL_POLL").
func ParseAction(s string) Action {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", " ")
	for _, a := range actionNames {
		if strings.EqualFold(a.name, s) {
			return a.action
		}
	}
	return ActionUnrecognized
}

func (a Action) String() string {
	for _, n := range actionNames {
		if n.action == a {
			return n.name
		}
	}
	return "Unrecognized"
}

// RecordedAction is an action property as found on a node, keeping the raw
// value so that unrecognized actions can still be reported verbatim.
type RecordedAction struct {
	Action Action
	Raw    string
}

func (r RecordedAction) String() string {
	if r.Action == ActionUnrecognized {
		return r.Raw
	}
	return r.Action.String()
}
