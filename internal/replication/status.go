package replication

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vvka-141/replmeta/internal/docview"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// ErrNotSet indicates that none of the candidate properties is present.
var ErrNotSet = errors.New("replication property not set")

// Property names written by the replication agents (before agent suffixing).
const (
	PropertyLastReplicated        = "cq:lastReplicated"
	PropertyLastPublished         = "cq:lastPublished"
	PropertyLastReplicationAction = "cq:lastReplicationAction"
)

var (
	dateProperties   = []string{PropertyLastReplicated, PropertyLastPublished}
	actionProperties = []string{PropertyLastReplicationAction}
)

// AgentPropertyNames applies the agent suffix convention to a list of
// canonical property names, keeping their order.
//
// Examples:
//   - (["cq:lastReplicated"], "publish") → ["cq:lastReplicated"]
//   - (["cq:lastReplicated"], "preview") → ["cq:lastReplicated_preview"]
func AgentPropertyNames(names []string, agentName string) []string {
	suffix := ""
	if agentName != replmeta.DefaultAgentName {
		suffix = "_" + agentName
	}
	result := make([]string, len(names))
	for i, name := range names {
		result[i] = name + suffix
	}
	return result
}

// PropertyError describes a failed lookup of an agent's metadata.
type PropertyError struct {
	Candidates []string
	Err        error
}

func (e *PropertyError) Error() string {
	noun := "Replication property"
	if len(e.Candidates) > 1 {
		noun = "Replication properties"
	}
	names := strings.Join(e.Candidates, " or ")
	if errors.Is(e.Err, ErrNotSet) {
		return fmt.Sprintf("%s %s not found", noun, names)
	}
	return fmt.Sprintf("%s %s: %v", noun, names, e.Err)
}

func (e *PropertyError) Unwrap() error { return e.Err }

// DateRecord is a distribution date property as found on a node.
// Err is set when the value is not a valid date.
type DateRecord struct {
	Property string
	Raw      string
	Time     time.Time
	Err      error
}

func (d DateRecord) String() string {
	if d.Err != nil {
		return d.Raw
	}
	return docview.FormatDate(d.Time)
}

// Status is a lazily evaluated snapshot of one agent's metadata on one node.
// Creating a Status never fails; lookups happen on first use.
type Status struct {
	node      replmeta.NodeView
	agentName string
}

// NewStatus creates the metadata view of agentName on node.
func NewStatus(node replmeta.NodeView, agentName string) Status {
	return Status{node: node, agentName: agentName}
}

// AgentName returns the agent the status refers to.
func (s Status) AgentName() string { return s.agentName }

// lookup returns the first present candidate property and its first value.
func (s Status) lookup(names []string) (string, string, bool) {
	for _, name := range AgentPropertyNames(names, s.agentName) {
		v, ok := s.node.Property(name)
		if !ok {
			continue
		}
		value, _ := v.First()
		return name, value, true
	}
	return "", "", false
}

// LookupLastDate returns the distribution date record if any candidate
// property is present. A present but unparsable value is returned with Err set.
func (s Status) LookupLastDate() (DateRecord, bool) {
	name, raw, ok := s.lookup(dateProperties)
	if !ok {
		return DateRecord{}, false
	}
	rec := DateRecord{Property: name, Raw: raw}
	rec.Time, rec.Err = docview.ParseDate(raw)
	return rec, true
}

// LastDate returns the distribution date, failing with a *PropertyError if it
// is absent or not a valid date.
func (s Status) LastDate() (time.Time, error) {
	rec, ok := s.LookupLastDate()
	if !ok {
		return time.Time{}, &PropertyError{Candidates: AgentPropertyNames(dateProperties, s.agentName), Err: ErrNotSet}
	}
	if rec.Err != nil {
		return time.Time{}, &PropertyError{Candidates: []string{rec.Property}, Err: rec.Err}
	}
	return rec.Time, nil
}

// LookupLastAction returns the recorded action if the property is present.
func (s Status) LookupLastAction() (RecordedAction, bool) {
	_, raw, ok := s.lookup(actionProperties)
	if !ok {
		return RecordedAction{}, false
	}
	return RecordedAction{Action: ParseAction(raw), Raw: raw}, true
}

// LastAction returns the recorded action, failing with a *PropertyError if the
// property is absent.
func (s Status) LastAction() (RecordedAction, error) {
	rec, ok := s.LookupLastAction()
	if !ok {
		return RecordedAction{}, &PropertyError{Candidates: AgentPropertyNames(actionProperties, s.agentName), Err: ErrNotSet}
	}
	return rec, nil
}
