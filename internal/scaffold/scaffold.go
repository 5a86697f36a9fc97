package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/replmeta/internal/logging"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

//go:embed all:templates
var templatesFS embed.FS

// DefaultTemplate is the template used when none is requested.
const DefaultTemplate = "default"

// GetTemplatesFS returns the embedded templates filesystem for testing purposes.
func GetTemplatesFS() embed.FS {
	return templatesFS
}

// Scaffolder writes configuration files from templates.
type Scaffolder struct {
	logger replmeta.Logger
}

// NewScaffolder creates a new Scaffolder instance. A nil logger discards output.
func NewScaffolder(logger replmeta.Logger) *Scaffolder {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scaffolder{logger: logger}
}

// CreateConfig writes the files of templateName into targetPath and returns
// their paths. Existing files are only replaced if force is set; otherwise
// nothing is written.
func (s *Scaffolder) CreateConfig(templateName, targetPath string, agentNames []string, force bool) ([]string, error) {
	templatePath := "templates/" + templateName
	if _, err := templatesFS.ReadDir(templatePath); err != nil {
		available, _ := ListTemplates()
		return nil, fmt.Errorf("%w: template '%s' not found (available: %s)", replmeta.ErrInvalidConfig, templateName, strings.Join(available, ", "))
	}
	if len(agentNames) == 0 {
		agentNames = []string{replmeta.DefaultAgentName}
	}

	files, err := templateFiles(templatePath)
	if err != nil {
		return nil, err
	}

	if !force {
		for _, name := range files {
			target := filepath.Join(targetPath, name)
			if _, err := os.Stat(target); err == nil {
				return nil, fmt.Errorf("%s already exists\n\nUse --force to overwrite it", target)
			}
		}
	}

	if err := os.MkdirAll(targetPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	s.logger.Verbose("Creating configuration at %s with template '%s'", targetPath, templateName)

	written := make([]string, 0, len(files))
	for _, name := range files {
		content, err := templatesFS.ReadFile(path.Join(templatePath, name))
		if err != nil {
			return written, fmt.Errorf("failed to read template file %s: %w", name, err)
		}

		target := filepath.Join(targetPath, name)
		s.logger.Verbose("Creating file: %s", name)
		if err := os.WriteFile(target, []byte(processTemplate(string(content), agentNames)), 0644); err != nil {
			return written, fmt.Errorf("failed to write file %s: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}

// templateFiles lists the files of a template relative to its root.
func templateFiles(templatePath string) ([]string, error) {
	var files []string
	err := fs.WalkDir(templatesFS, templatePath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, strings.TrimPrefix(p, templatePath+"/"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list template files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// processTemplate replaces template variables in content
func processTemplate(content string, agentNames []string) string {
	return strings.ReplaceAll(content, "{{AGENTS}}", strings.Join(agentNames, ","))
}

// ListTemplates returns available template names
func ListTemplates() ([]string, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() {
			templates = append(templates, entry.Name())
		}
	}
	return templates, nil
}
