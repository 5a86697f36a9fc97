package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vvka-141/replmeta/internal/config"
	"github.com/vvka-141/replmeta/internal/logging"
	"github.com/vvka-141/replmeta/internal/rules"
	"github.com/vvka-141/replmeta/internal/validator"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [package-dir]",
	Short: "Show the effective rules and settings",
	Long: `Rules resolves the configuration exactly like validate does and prints the
resulting include/exclude rules, agents and severities. The package directory
defaults to the current directory and is only used to find replmeta.yaml.

Examples:
  replmeta rules
  replmeta rules ./ui.content --options-file validator.env
  replmeta rules --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRules,
}

type rulesFlagValues struct {
	configFlags
	json bool
}

var rulesFlags rulesFlagValues

func init() {
	rootCmd.AddCommand(rulesCmd)

	registerRulesFlags(rulesCmd, &rulesFlags)
}

func registerRulesFlags(cmd *cobra.Command, f *rulesFlagValues) {
	addConfigFlags(cmd, &f.configFlags)
	cmd.Flags().BoolVar(&f.json, "json", false, "Print as JSON")
}

type ruleJSON struct {
	Pattern        string `json:"pattern"`
	Type           string `json:"type"`
	ComparisonDate string `json:"comparisonDate"`
}

type rulesJSON struct {
	Include  []ruleJSON `json:"include"`
	Exclude  []ruleJSON `json:"exclude"`
	Agents   []string   `json:"agents"`
	Strict   bool       `json:"strict"`
	Severity string     `json:"severity"`
	FailOn   string     `json:"failOn"`
	Sources  []string   `json:"sources"`
}

func runRules(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	effective, err := resolveEffective(cmd, dir, &rulesFlags.configFlags, logger)
	if err != nil {
		return err
	}
	engine, err := validator.New(effective.Settings)
	if err != nil {
		return err
	}
	effective.Settings = engine.Settings()

	if rulesFlags.json {
		return writeRulesJSON(cmd.OutOrStdout(), effective)
	}
	return writeRulesTable(cmd.OutOrStdout(), effective)
}

func toRuleJSON(list []rules.MatchRule) []ruleJSON {
	result := make([]ruleJSON, 0, len(list))
	for _, r := range list {
		result = append(result, ruleJSON{Pattern: r.Pattern(), Type: r.Type, ComparisonDate: r.Chain.String()})
	}
	return result
}

func writeRulesJSON(w io.Writer, e config.Effective) error {
	doc := rulesJSON{
		Include:  toRuleJSON(e.Settings.Rules.Include),
		Exclude:  toRuleJSON(e.Settings.Rules.Exclude),
		Agents:   e.Settings.AgentNames,
		Strict:   e.Settings.Strict,
		Severity: e.Settings.Severity.String(),
		FailOn:   e.FailOn.String(),
		Sources:  e.Sources,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeRulesTable(w io.Writer, e config.Effective) error {
	table := tablewriter.NewWriter(w)
	if err := table.Append([]string{"Kind", "Pattern", "Type", "Comparison date"}); err != nil {
		return fmt.Errorf("failed to append header row: %w", err)
	}
	for _, group := range []struct {
		kind  string
		rules []rules.MatchRule
	}{
		{"include", e.Settings.Rules.Include},
		{"exclude", e.Settings.Rules.Exclude},
	} {
		for _, r := range group.rules {
			if err := table.Append([]string{group.kind, r.Pattern(), r.Type, r.Chain.String()}); err != nil {
				return fmt.Errorf("failed to append row: %w", err)
			}
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Fprintf(w, "Agents:   %s\n", strings.Join(e.Settings.AgentNames, ", "))
	fmt.Fprintf(w, "Strict:   %t\n", e.Settings.Strict)
	fmt.Fprintf(w, "Severity: %s\n", e.Settings.Severity)
	fmt.Fprintf(w, "Fail on:  %s\n", e.FailOn)
	fmt.Fprintf(w, "Sources:  %s\n", strings.Join(e.Sources, " -> "))
	return nil
}
