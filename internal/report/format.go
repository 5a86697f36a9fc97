package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/replmeta/internal/audit"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

// Format selects the output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTree Format = "tree"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatTree}

// ParseFormat resolves a format name (case-insensitive).
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(string(f), strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown format %q (expected text, json or tree)", replmeta.ErrInvalidConfig, name)
}

// Options controls rendering.
type Options struct {
	Format  Format
	Color   bool
	Summary bool
}

// Write renders the report in the selected format.
func Write(w io.Writer, r *audit.Report, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatTree:
		if err := WriteTree(w, r, NewStyles(opts.Color)); err != nil {
			return err
		}
	case FormatText, "":
		if err := WriteText(w, r, NewStyles(opts.Color)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown format %q", replmeta.ErrInvalidConfig, opts.Format)
	}

	if opts.Summary && len(r.Findings) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		return WriteSummary(w, r)
	}
	return nil
}
