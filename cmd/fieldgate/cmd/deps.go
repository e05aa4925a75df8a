package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/solatis/fieldgate/internal/forms"
	"github.com/solatis/fieldgate/internal/monitor"
	"github.com/spf13/cobra"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Print the dependency graph for a form definition",
	RunE:  runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)
	depsCmd.Flags().String("form", "", "form definition JSON file (required)")
	depsCmd.MarkFlagRequired("form")
}

func runDeps(cmd *cobra.Command, args []string) error {
	formPath, _ := cmd.Flags().GetString("form")

	formCfg, err := forms.LoadConfigFile(formPath)
	if err != nil {
		return err
	}

	engine := forms.NewEngine(monitor.NopSink{})
	if err := engine.Register(formCfg); err != nil {
		return fmt.Errorf("invalid form definition: %w", err)
	}

	snapshot, err := engine.GraphSnapshot(formCfg.ID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(snapshot)
}
