package replmeta

import (
	"fmt"
	"strings"
)

// Severity is the level attached to a diagnostic. The order matches the
// FileVault validation message severities so that thresholds compare naturally.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

var severityNames = map[Severity]string{
	SeverityDebug: "DEBUG",
	SeverityInfo:  "INFO",
	SeverityWarn:  "WARN",
	SeverityError: "ERROR",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// ParseSeverity converts a configured level name into a Severity.
// Names are case-insensitive; "WARNING" is accepted as an alias of WARN.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return SeverityDebug, nil
	case "INFO":
		return SeverityInfo, nil
	case "WARN", "WARNING":
		return SeverityWarn, nil
	case "ERROR":
		return SeverityError, nil
	}
	return 0, fmt.Errorf("%w: unknown severity %q (expected DEBUG, INFO, WARN or ERROR)", ErrInvalidConfig, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Diagnostic is a single validation result for a node path.
// Line and Column are zero when the position is unknown, which is always the
// case for messages produced from node metadata.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Path     string   `json:"path"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
}

// Position renders the source location of the diagnostic.
func (d Diagnostic) Position() string {
	if d.Line <= 0 {
		return UnknownPosition
	}
	if d.Column <= 0 {
		return fmt.Sprintf("line %d", d.Line)
	}
	return fmt.Sprintf("line %d, col %d", d.Line, d.Column)
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (%s, %s)", d.Severity, d.Message, d.Path, d.Position())
}

// PropertyValue is the structured value of a node property: its declared type
// tag (e.g. "Date", "String") and one or more string values.
type PropertyValue struct {
	Type   string
	Values []string
	Multi  bool
}

// First returns the first value, which is the only value for single-valued properties.
func (v PropertyValue) First() (string, bool) {
	if len(v.Values) == 0 {
		return "", false
	}
	return v.Values[0], true
}

// NodeView is the read-only view of a repository node visited during a traversal.
type NodeView interface {
	// Name returns the node name (qualified, e.g. "jcr:content").
	Name() string

	// PrimaryType returns the value of jcr:primaryType if set.
	PrimaryType() (string, bool)

	// MixinTypes returns the values of jcr:mixinTypes.
	MixinTypes() []string

	// Property looks up a property by its qualified name.
	Property(name string) (PropertyValue, bool)
}

// NodeValidator is the visitor contract driven by a host traversal.
// Enter is called in document (pre-order) order, Exit once a node's subtree is
// finished, and Done after the last node.
type NodeValidator interface {
	Enter(path string, node NodeView) []Diagnostic
	Exit(path string, node NodeView) []Diagnostic
	Done() []Diagnostic
}
