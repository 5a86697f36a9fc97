package report

import (
	"fmt"
	"io"

	"github.com/vvka-141/replmeta/internal/audit"
)

// WriteText writes findings grouped by file followed by a one line total.
func WriteText(w io.Writer, r *audit.Report, styles Styles) error {
	files, groups := r.ByFile()
	for _, file := range files {
		label := file
		if label == "" {
			label = "(package)"
		}
		if _, err := fmt.Fprintln(w, styles.File.Render(label)); err != nil {
			return err
		}
		for _, f := range groups[file] {
			style, symbol := styles.Severity(f.Diagnostic.Severity)
			if _, err := fmt.Fprintf(w, "  %s %s\n", style.Render(symbol), style.Render(f.Diagnostic.String())); err != nil {
				return err
			}
		}
	}

	if len(r.Findings) == 0 {
		_, err := fmt.Fprintln(w, styles.Success.Render(fmt.Sprintf("%s No findings in %d file(s)", SymbolCheck, len(r.Files))))
		return err
	}

	if len(files) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, styles.Muted.Render(fmt.Sprintf("%d finding(s) in %d file(s), %d validated, %d skipped",
		len(r.Findings), len(files), len(r.Files), len(r.Skipped))))
	return err
}
