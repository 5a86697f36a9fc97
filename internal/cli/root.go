package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const banner = `replmeta - replication metadata validator for AEM content packages`

var rootCmd = &cobra.Command{
	Use:   "replmeta",
	Short: "Validate replication metadata in AEM content packages",
	Long: banner + `

replmeta walks the DocView files of a content package and checks that
configured subtrees (editable template structures, policies, context-aware
configurations) were activated on every distribution agent after their last
modification, and that excluded subtrees were never activated.

Rules use the FileVault validator syntax: pattern[type;comparisonDate=CHAIN].

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or rule
  13 - Validation failed (findings at or above --fail-on)
  14 - Content package not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for replmeta")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
