package audit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vvka-141/replmeta/internal/docview"
	"github.com/vvka-141/replmeta/internal/files/scanner"
	"github.com/vvka-141/replmeta/internal/logging"
	"github.com/vvka-141/replmeta/internal/validator"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// Finding is a diagnostic together with the file it was reported for.
type Finding struct {
	File       string              `json:"file"`
	Checksum   string              `json:"checksum,omitempty"`
	Diagnostic replmeta.Diagnostic `json:"diagnostic"`
}

// Report is the outcome of auditing one package.
type Report struct {
	PackageDir  string
	ContentRoot string
	Settings    validator.Settings
	// Files lists the validated DocView files
	Files []scanner.File
	// Skipped lists XML files which are not DocView documents
	Skipped  []string
	Findings []Finding
}

// Counts returns the number of findings per severity.
func (r *Report) Counts() map[replmeta.Severity]int {
	counts := make(map[replmeta.Severity]int)
	for _, f := range r.Findings {
		counts[f.Diagnostic.Severity]++
	}
	return counts
}

// Blocking reports whether any finding is at or above min.
func (r *Report) Blocking(min replmeta.Severity) bool {
	for _, f := range r.Findings {
		if f.Diagnostic.Severity >= min {
			return true
		}
	}
	return false
}

// ByFile groups findings by file, keeping emission order within a file.
// Files are returned in sorted order.
func (r *Report) ByFile() ([]string, map[string][]Finding) {
	groups := make(map[string][]Finding)
	var files []string
	for _, f := range r.Findings {
		if _, ok := groups[f.File]; !ok {
			files = append(files, f.File)
		}
		groups[f.File] = append(groups[f.File], f)
	}
	sort.Strings(files)
	return files, groups
}

// Auditor runs the validation over content packages.
type Auditor struct {
	scanner  *scanner.Scanner
	settings validator.Settings
	logger   replmeta.Logger
	now      func() time.Time
}

// Option customizes an Auditor.
type Option func(*Auditor)

// WithLogger sets the logger for progress and tracing.
func WithLogger(logger replmeta.Logger) Option {
	return func(a *Auditor) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithClock sets the clock passed to the engine.
func WithClock(now func() time.Time) Option {
	return func(a *Auditor) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates an Auditor.
func New(s *scanner.Scanner, settings validator.Settings, opts ...Option) *Auditor {
	a := &Auditor{
		scanner:  s,
		settings: settings,
		logger:   logging.NewNullLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run audits the package at dir. Errors are returned for an unreadable
// package or an invalid configuration; policy violations and malformed
// files are reported as findings.
func (a *Auditor) Run(ctx context.Context, dir string) (*Report, error) {
	engine, err := validator.New(a.settings, validator.WithLogger(a.logger), validator.WithClock(a.now))
	if err != nil {
		return nil, err
	}

	scan, err := a.scanner.ScanPackage(dir)
	if err != nil {
		return nil, err
	}
	a.logger.Verbose("Scanning %s: %d candidate file(s)", scan.ContentRoot, len(scan.Files))

	report := &Report{
		PackageDir:  dir,
		ContentRoot: scan.ContentRoot,
		Settings:    engine.Settings(),
	}

	for _, file := range scan.Files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("audit interrupted: %w", err)
		}
		a.auditFile(engine, file, report)
	}

	for _, d := range engine.Done() {
		report.Findings = append(report.Findings, Finding{Diagnostic: d})
	}

	a.logger.Verbose("Validated %d file(s), skipped %d, %d finding(s)",
		len(report.Files), len(report.Skipped), len(report.Findings))
	return report, nil
}

func (a *Auditor) auditFile(engine *validator.Engine, file scanner.File, report *Report) {
	root, err := docview.Parse(bytes.NewReader(file.Content), file.NodeName)
	if err != nil {
		if errors.Is(err, replmeta.ErrNotDocView) {
			a.logger.Verbose("Skipping %s: %v", file.Path, err)
			report.Skipped = append(report.Skipped, file.Path)
			return
		}
		a.logger.Error("Cannot parse %s: %v", file.Path, err)
		d := replmeta.Diagnostic{
			Severity: replmeta.SeverityError,
			Message:  err.Error(),
			Path:     file.RepositoryPath,
		}
		var syntaxErr *docview.SyntaxError
		if errors.As(err, &syntaxErr) {
			d.Message = fmt.Sprintf("%v: %s", replmeta.ErrInvalidDocView, syntaxErr.Msg)
			d.Line = syntaxErr.Line
			d.Column = syntaxErr.Column
		}
		report.Findings = append(report.Findings, Finding{File: file.Path, Checksum: file.Checksum, Diagnostic: d})
		return
	}

	a.logger.Verbose("Validating %s as %s", file.Path, file.RepositoryPath)
	report.Files = append(report.Files, file)
	for _, d := range docview.Walk(root, file.RepositoryPath, engine) {
		report.Findings = append(report.Findings, Finding{File: file.Path, Checksum: file.Checksum, Diagnostic: d})
	}
}
