package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/replmeta/internal/audit"
	"github.com/vvka-141/replmeta/internal/checksum"
	"github.com/vvka-141/replmeta/internal/files/scanner"
	"github.com/vvka-141/replmeta/internal/logging"
	"github.com/vvka-141/replmeta/internal/report"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

var validateCmd = &cobra.Command{
	Use:   "validate <package-dir>",
	Short: "Validate replication metadata of a content package",
	Long: `Validate walks every DocView file below the package's jcr_root (or the
directory itself if it has no jcr_root) and reports nodes whose replication
metadata does not satisfy the configured rules.

For each included subtree, every distribution agent must have activated the
node and the last replication date must not be older than the comparison
date taken from the subtree's metadata. Excluded subtrees must never have
been activated. An included page whose jcr:content is never found below it
is reported once per agent; an excluded one is not reported.

Configuration is resolved in this order (later wins):
  1. Built-in defaults
  2. replmeta.yaml in the package directory
  3. --options-file (KEY=VALUE, FileVault option names)
  4. REPLMETA_AGENT_NAMES, REPLMETA_STRICT, REPLMETA_SEVERITY, REPLMETA_FAIL_ON
  5. Flags

Examples:
  # Validate with the default rules
  replmeta validate ./ui.content

  # Check two publish agents and fail on warnings
  replmeta validate ./ui.content --agents publish,preview --severity WARN --fail-on WARN

  # Only check cloud configurations, refusing missing comparison dates
  replmeta validate ./ui.content --strict \
    --include '/conf/.*/settings/cloudconfigs/.*[cq:Page]' --exclude ''

  # Machine-readable output
  replmeta validate ./ui.content --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

type validateFlagValues struct {
	configFlags
	format  string
	summary bool
}

var validateFlags validateFlagValues

func init() {
	rootCmd.AddCommand(validateCmd)

	registerValidateFlags(validateCmd, &validateFlags)
}

func registerValidateFlags(cmd *cobra.Command, f *validateFlagValues) {
	addConfigFlags(cmd, &f.configFlags)
	cmd.Flags().StringVarP(&f.format, "format", "f", string(report.FormatText), "Output format (text, json, tree)")
	cmd.Flags().BoolVar(&f.summary, "summary", false, "Append a table of findings per file and severity")
}

func runValidate(cmd *cobra.Command, args []string) error {
	packageDir := args[0]
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)

	format, err := report.ParseFormat(validateFlags.format)
	if err != nil {
		return err
	}

	effective, err := resolveEffective(cmd, packageDir, &validateFlags.configFlags, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auditor := audit.New(scanner.NewScanner(checksum.New()), effective.Settings, audit.WithLogger(logger))
	result, err := auditor.Run(ctx, packageDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := report.Options{
		Format:  format,
		Color:   report.ColorEnabled(out),
		Summary: validateFlags.summary,
	}
	if err := report.Write(out, result, opts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if result.Blocking(effective.FailOn) {
		return fmt.Errorf("%w: %d finding(s) at or above %s", replmeta.ErrValidationFailed, countAtOrAbove(result, effective.FailOn), effective.FailOn)
	}
	return nil
}

func countAtOrAbove(r *audit.Report, min replmeta.Severity) int {
	n := 0
	for sev, count := range r.Counts() {
		if sev >= min {
			n += count
		}
	}
	return n
}
