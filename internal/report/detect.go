package report

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether output written to w should be coloured.
//
// Returns false if:
//   - REPLMETA_NO_COLOR=1 or NO_COLOR is set
//   - CI is set (common CI/CD convention)
//   - w is not a terminal
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("REPLMETA_NO_COLOR") == "1" {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
