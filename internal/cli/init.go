package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/replmeta/internal/logging"
	"github.com/vvka-141/replmeta/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init [package-dir]",
	Short: "Write a replmeta.yaml configuration",
	Long: `Initialize writes a replmeta.yaml and a sample validator.env options file into
the package directory (default: current directory).

Existing files are never touched unless --force is given.

Examples:
  replmeta init                          # Default rules in current directory
  replmeta init ./ui.content --agents publish,preview
  replmeta init ./ui.content -t strict   # Strict comparison, fail on warnings
  replmeta init --list                   # Show available templates`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initFlags struct {
	template string
	agents   []string
	force    bool
	list     bool
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initFlags.template, "template", "t", scaffold.DefaultTemplate, "Template to use (default, strict)")
	initCmd.Flags().StringSliceVar(&initFlags.agents, "agents", nil, "Distribution agent names (default publish)")
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite existing files")
	initCmd.Flags().BoolVar(&initFlags.list, "list", false, "List available templates")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if initFlags.list {
		templates, err := scaffold.ListTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}
		for _, name := range templates {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	targetPath := "."
	if len(args) == 1 {
		targetPath = args[0]
	}

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	written, err := scaffold.NewScaffolder(logger).CreateConfig(initFlags.template, targetPath, initFlags.agents, initFlags.force)
	if err != nil {
		return err
	}

	for _, file := range written {
		fmt.Fprintf(out, "Created %s\n", file)
	}
	fmt.Fprintf(out, "\nNext: replmeta validate %s\n", targetPath)
	return nil
}
