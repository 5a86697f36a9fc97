package rules

import (
	"fmt"
	"time"

	"github.com/vvka-141/replmeta/internal/docview"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// DateChain selects the fallback chain of properties from which the
// comparison date of a node is taken.
type DateChain int

const (
	DateChainUnrecognized DateChain = iota
	// DateChainModified: cq:lastModified, jcr:lastModified.
	DateChainModified
	// DateChainModifiedCreatedOrCurrent: cq:lastModified, jcr:lastModified,
	// jcr:created, the current date.
	DateChainModifiedCreatedOrCurrent
	// DateChainCQModifiedCreatedOrCurrent: cq:lastModified, cq:created, the
	// current date.
	DateChainCQModifiedCreatedOrCurrent
)

// LabelCurrentDate is the provenance label of the current-date fallback.
const LabelCurrentDate = "current date"

type chainDefinition struct {
	name                string
	candidates          []PropertyName
	currentDateFallback bool
}

var chainDefinitions = map[DateChain]chainDefinition{
	DateChainModified: {
		name:       "MODIFIED",
		candidates: []PropertyName{PropertyCQLastModified, PropertyJCRLastModified},
	},
	DateChainModifiedCreatedOrCurrent: {
		name:                "MODIFIED_CREATED_OR_CURRENT",
		candidates:          []PropertyName{PropertyCQLastModified, PropertyJCRLastModified, PropertyJCRCreated},
		currentDateFallback: true,
	},
	DateChainCQModifiedCreatedOrCurrent: {
		name:                "CQ_MODIFIED_CREATED_OR_CURRENT",
		candidates:          []PropertyName{PropertyCQLastModified, PropertyCQCreated},
		currentDateFallback: true,
	},
}

// ParseDateChain resolves a chain by its configuration name.
func ParseDateChain(name string) (DateChain, error) {
	for chain, def := range chainDefinitions {
		if def.name == name {
			return chain, nil
		}
	}
	return DateChainUnrecognized, fmt.Errorf("unknown comparison date %q (expected MODIFIED, MODIFIED_CREATED_OR_CURRENT or CQ_MODIFIED_CREATED_OR_CURRENT)", name)
}

func (c DateChain) String() string {
	if def, ok := chainDefinitions[c]; ok {
		return def.name
	}
	return "UNRECOGNIZED"
}

// Candidates returns the properties consulted by the chain, in order.
func (c DateChain) Candidates() []PropertyName {
	return chainDefinitions[c].candidates
}

// DatedValue is an extracted date together with a label explaining where it
// came from (a property name, "auto created <property>" or "current date").
type DatedValue struct {
	Time  time.Time
	Label string
}

// Extract returns the most authoritative date for node. For every candidate an
// explicit property value wins over a value implied by an auto-creating node
// type; the first candidate that yields either is used. If none does and the
// chain falls back to the current date, now is returned.
//
// Returns (value, true, nil) on success, (zero, false, nil) if the chain has
// no date for the node, and an error if a candidate property holds no value or
// an invalid date.
func (c DateChain) Extract(node replmeta.NodeView, now time.Time) (DatedValue, bool, error) {
	def, ok := chainDefinitions[c]
	if !ok {
		return DatedValue{}, false, fmt.Errorf("unrecognized comparison date chain %d", int(c))
	}

	types := node.MixinTypes()
	if primary, ok := node.PrimaryType(); ok {
		types = append([]string{primary}, types...)
	}

	for _, candidate := range def.candidates {
		if v, ok := node.Property(candidate.Name); ok {
			raw, ok := v.First()
			if !ok {
				return DatedValue{}, false, fmt.Errorf("no value found in %s", candidate.Name)
			}
			t, err := docview.ParseDate(raw)
			if err != nil {
				return DatedValue{}, false, fmt.Errorf("property %s: %w", candidate.Name, err)
			}
			return DatedValue{Time: t, Label: candidate.Name}, true, nil
		}
		if candidate.isAutoCreatedOn(types) {
			return DatedValue{Time: now, Label: "auto created " + candidate.Name}, true, nil
		}
	}

	if def.currentDateFallback {
		return DatedValue{Time: now, Label: LabelCurrentDate}, true, nil
	}
	return DatedValue{}, false, nil
}
