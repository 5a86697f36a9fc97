package validator

import (
	"strings"
	"time"

	"github.com/vvka-141/replmeta/internal/docview"
	"github.com/vvka-141/replmeta/internal/logging"
	"github.com/vvka-141/replmeta/internal/rules"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// Engine tracks matched subtrees during a depth-first traversal and reports
// diagnostics for subtrees violating the distribution policy.
type Engine struct {
	settings Settings
	logger   replmeta.Logger
	now      func() time.Time

	// stack holds the open subtrees, innermost last
	stack []*subtree
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for verbose tracing.
func WithLogger(logger replmeta.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock sets the clock used for the "current date" fallback.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an Engine. Agent names are normalized; an empty agent list
// means the default agent.
func New(settings Settings, opts ...Option) (*Engine, error) {
	agents, err := normalizeAgentNames(settings.AgentNames)
	if err != nil {
		return nil, err
	}
	settings.AgentNames = agents

	e := &Engine{
		settings: settings,
		logger:   logging.NewNullLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Settings returns the effective settings.
func (e *Engine) Settings() Settings { return e.settings }

// Open returns the number of subtrees currently tracked.
func (e *Engine) Open() int { return len(e.stack) }

func (e *Engine) top() *subtree {
	if len(e.stack) == 0 {
		return nil
	}
	return e.stack[len(e.stack)-1]
}

// Enter is called before the children of path are visited.
func (e *Engine) Enter(path string, node replmeta.NodeView) []replmeta.Diagnostic {
	for _, s := range e.stack {
		s.enter()
	}

	if top := e.top(); top != nil {
		if path == top.anchorPath {
			return e.capture(top, node)
		}
		if parent, ok := strings.CutSuffix(path, "/"+replmeta.ContentChildName); ok && parent == top.anchorPath {
			return nil
		}
	}

	match, ok := e.settings.Rules.Classify(path, node)
	if !ok {
		return nil
	}

	primaryType, _ := node.PrimaryType()
	if rules.IsPageLike(primaryType) {
		anchor := docview.ChildPath(path, replmeta.ContentChildName)
		e.logger.Verbose("%s matches %s, waiting for %s", path, describe(match), anchor)
		e.stack = append(e.stack, newSubtree(anchor, match, true))
		return nil
	}

	e.logger.Verbose("%s matches %s", path, describe(match))
	s := newSubtree(path, match, false)
	e.stack = append(e.stack, s)
	return e.capture(s, node)
}

// Exit is called after the children of path were visited. The path is only
// used for tracing; closing subtrees relies on nesting levels alone. At most
// the innermost subtree is closed per call.
func (e *Engine) Exit(path string, _ replmeta.NodeView) []replmeta.Diagnostic {
	for _, s := range e.stack {
		s.exit()
	}

	s := e.top()
	if s == nil || !s.closed() {
		return nil
	}
	e.stack = e.stack[:len(e.stack)-1]
	e.logger.Verbose("Closing %s on exit of %s", s.anchorPath, path)
	return e.finalize(s)
}

// Done is called once the traversal is complete. A balanced traversal leaves
// no subtree open; anything left is discarded.
func (e *Engine) Done() []replmeta.Diagnostic {
	if n := len(e.stack); n > 0 {
		e.logger.Verbose("Discarding %d unclosed subtree(s)", n)
		e.stack = nil
	}
	return nil
}

func (e *Engine) capture(s *subtree, node replmeta.NodeView) []replmeta.Diagnostic {
	s.awaitingContent = false
	var diags []replmeta.Diagnostic
	if err := s.captureComparisonDate(node, e.now()); err != nil {
		diags = append(diags, e.diagnostic(s.anchorPath, "Invalid comparison date: "+err.Error()))
	}
	s.captureStatuses(node, e.settings.AgentNames)
	return diags
}

func (e *Engine) finalize(s *subtree) []replmeta.Diagnostic {
	messages := s.validate(e.settings.AgentNames, e.settings.Strict)
	diags := make([]replmeta.Diagnostic, 0, len(messages))
	for _, msg := range messages {
		diags = append(diags, e.diagnostic(s.anchorPath, msg))
	}
	return diags
}

func (e *Engine) diagnostic(path, message string) replmeta.Diagnostic {
	return replmeta.Diagnostic{
		Severity: e.settings.Severity,
		Message:  message,
		Path:     path,
	}
}

func describe(m rules.Match) string {
	if m.Excluded {
		return "exclude rule " + m.Rule.String()
	}
	return "include rule " + m.Rule.String()
}

var _ replmeta.NodeValidator = (*Engine)(nil)
