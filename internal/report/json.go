package report

import (
	"encoding/json"
	"io"

	"github.com/vvka-141/replmeta/internal/audit"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

type jsonFinding struct {
	ID       string            `json:"id"`
	File     string            `json:"file,omitempty"`
	Checksum string            `json:"checksum,omitempty"`
	Severity replmeta.Severity `json:"severity"`
	Message  string            `json:"message"`
	Path     string            `json:"path"`
	Position string            `json:"position"`
}

type jsonReport struct {
	Package     string         `json:"package"`
	ContentRoot string         `json:"contentRoot"`
	Agents      []string       `json:"agents"`
	Strict      bool           `json:"strict"`
	Validated   int            `json:"validated"`
	Skipped     []string       `json:"skipped,omitempty"`
	Counts      map[string]int `json:"counts"`
	Findings    []jsonFinding  `json:"findings"`
}

// WriteJSON writes the report as an indented JSON document.
func WriteJSON(w io.Writer, r *audit.Report) error {
	doc := jsonReport{
		Package:     r.PackageDir,
		ContentRoot: r.ContentRoot,
		Agents:      r.Settings.AgentNames,
		Strict:      r.Settings.Strict,
		Validated:   len(r.Files),
		Skipped:     r.Skipped,
		Counts:      make(map[string]int),
		Findings:    []jsonFinding{},
	}
	for sev, n := range r.Counts() {
		doc.Counts[sev.String()] = n
	}

	files, groups := r.ByFile()
	for _, file := range files {
		for _, f := range groups[file] {
			doc.Findings = append(doc.Findings, jsonFinding{
				ID:       FindingID(f).String(),
				File:     f.File,
				Checksum: f.Checksum,
				Severity: f.Diagnostic.Severity,
				Message:  f.Diagnostic.Message,
				Path:     f.Diagnostic.Path,
				Position: f.Diagnostic.Position(),
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
