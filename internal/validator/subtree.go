package validator

import (
	"errors"
	"fmt"
	"time"

	"github.com/vvka-141/replmeta/internal/docview"
	"github.com/vvka-141/replmeta/internal/replication"
	"github.com/vvka-141/replmeta/internal/rules"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// implicitComparisonDate stands in for a missing comparison date in lenient mode.
var implicitComparisonDate = time.Unix(0, 0).UTC()

// subtree is the tracked state of one matched subtree.
type subtree struct {
	// anchorPath always refers to the node supposed to carry the metadata
	anchorPath      string
	excluded        bool
	awaitingContent bool
	chain           rules.DateChain

	comparison *rules.DatedValue
	statuses   map[string]replication.Status

	// nesting is 0 while the anchor node is current, -1 one level above it
	nesting int
}

func newSubtree(anchorPath string, match rules.Match, awaitingContent bool) *subtree {
	s := &subtree{
		anchorPath:      anchorPath,
		excluded:        match.Excluded,
		awaitingContent: awaitingContent,
		chain:           match.Rule.Chain,
		statuses:        make(map[string]replication.Status),
	}
	if awaitingContent {
		s.nesting = -1
	}
	return s
}

func (s *subtree) enter() { s.nesting++ }

func (s *subtree) exit() { s.nesting-- }

// closed reports whether the traversal left the subtree. A subtree still
// awaiting its content child stays open across the page's other children and
// closes on exit of the page itself.
func (s *subtree) closed() bool {
	if s.awaitingContent {
		return s.nesting < -1
	}
	return s.nesting < 0
}

// captureComparisonDate resolves the comparison date from the anchor node.
// The date stays unset if the chain yields none.
func (s *subtree) captureComparisonDate(node replmeta.NodeView, now time.Time) error {
	v, ok, err := s.chain.Extract(node, now)
	if err != nil {
		return err
	}
	if ok {
		s.comparison = &v
	}
	return nil
}

// captureStatuses records a lazy metadata view per agent. This never fails.
func (s *subtree) captureStatuses(node replmeta.NodeView, agentNames []string) {
	for _, agent := range agentNames {
		s.statuses[agent] = replication.NewStatus(node, agent)
	}
}

// validate applies the validation policy for every agent and returns the
// messages in agent order.
func (s *subtree) validate(agentNames []string, strict bool) []string {
	var messages []string
	for _, agent := range agentNames {
		status, captured := s.statuses[agent]
		switch {
		case s.excluded && !captured:
			// nothing recorded, nothing disallowed
		case s.excluded:
			messages = append(messages, s.validateNotPublished(status)...)
		case !captured:
			messages = append(messages, fmt.Sprintf("Content metadata container %s was never found below %s for agent %s",
				replmeta.ContentChildName, parentPath(s.anchorPath), agent))
		default:
			messages = append(messages, s.validatePublished(status, strict)...)
		}
	}
	return messages
}

func (s *subtree) validateNotPublished(status replication.Status) []string {
	var messages []string
	if action, ok := status.LookupLastAction(); ok {
		messages = append(messages, fmt.Sprintf("Last replication action not allowed for this path but is '%s' for agent %s", action, status.AgentName()))
	}
	if date, ok := status.LookupLastDate(); ok {
		messages = append(messages, fmt.Sprintf("Last replication date not allowed for this path but is %s for agent %s", date, status.AgentName()))
	}
	return messages
}

func (s *subtree) validatePublished(status replication.Status, strict bool) []string {
	var messages []string
	agent := status.AgentName()

	action, err := status.LastAction()
	if err != nil {
		messages = append(messages, fmt.Sprintf("No replication action set for agent %s: %v", agent, err))
	} else if action.Action != replication.ActionActivate {
		messages = append(messages, fmt.Sprintf("The last replication action must be 'Activate' but was '%s' for agent %s", action, agent))
	}

	replicated, err := status.LastDate()
	if err != nil {
		if errors.Is(err, replication.ErrNotSet) {
			return append(messages, fmt.Sprintf("No replication date set for agent %s: %v", agent, err))
		}
		return append(messages, fmt.Sprintf("Invalid replication date for agent %s: %v", agent, err))
	}

	if s.comparison == nil {
		if strict {
			return append(messages, fmt.Sprintf("No comparison date available for agent %s (chain %s) and strict check prevents falling back to %s",
				agent, s.chain, docview.FormatDate(implicitComparisonDate)))
		}
		if replicated.Before(implicitComparisonDate) {
			messages = append(messages, fmt.Sprintf("The replication date %s for agent %s is older than the implicit comparison date %s",
				docview.FormatDate(replicated), agent, docview.FormatDate(implicitComparisonDate)))
		}
		return messages
	}

	if replicated.Before(s.comparison.Time) {
		messages = append(messages, fmt.Sprintf("The replication date %s for agent %s is older than the comparison date %s (%s)",
			docview.FormatDate(replicated), agent, docview.FormatDate(s.comparison.Time), s.comparison.Label))
	}
	return messages
}

func parentPath(path string) string {
	for i := len(path) - 1; i > 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "/"
}
