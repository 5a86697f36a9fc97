package report

import (
	"fmt"
	"io"
	"path"

	"github.com/disiqueira/gotree/v3"

	"github.com/vvka-141/replmeta/internal/audit"
)

// findingTree arranges findings along their repository paths.
type findingTree struct {
	tree  gotree.Tree
	nodes map[string]gotree.Tree
}

func newFindingTree() findingTree {
	return findingTree{tree: gotree.New("/"), nodes: make(map[string]gotree.Tree)}
}

func (t findingTree) node(repoPath string) gotree.Tree {
	if repoPath == "/" || repoPath == "" || repoPath == "." {
		return t.tree
	}
	n := t.nodes[repoPath]
	if n == nil {
		n = t.node(path.Dir(repoPath)).Add(path.Base(repoPath))
		t.nodes[repoPath] = n
	}
	return n
}

// WriteTree writes the findings as a repository tree. Only paths with
// findings are shown.
func WriteTree(w io.Writer, r *audit.Report, styles Styles) error {
	if len(r.Findings) == 0 {
		_, err := fmt.Fprintln(w, styles.Success.Render(fmt.Sprintf("%s No findings in %d file(s)", SymbolCheck, len(r.Files))))
		return err
	}

	t := newFindingTree()
	files, groups := r.ByFile()
	for _, file := range files {
		for _, f := range groups[file] {
			style, symbol := styles.Severity(f.Diagnostic.Severity)
			label := fmt.Sprintf("%s %s: %s", symbol, f.Diagnostic.Severity, f.Diagnostic.Message)
			t.node(f.Diagnostic.Path).Add(style.Render(label))
		}
	}
	_, err := io.WriteString(w, t.tree.Print())
	return err
}
