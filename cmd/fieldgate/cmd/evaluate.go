package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/solatis/fieldgate/internal/core/config"
	"github.com/solatis/fieldgate/internal/forms"
	"github.com/solatis/fieldgate/internal/monitor"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Resolve field and step states for a form against a data file",
	RunE:  runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().String("form", "", "form definition JSON file (required)")
	evaluateCmd.Flags().String("data", "", "form data JSON file (required)")
	evaluateCmd.Flags().String("changed", "", "comma-separated data paths; restrict output to affected fields")
	evaluateCmd.MarkFlagRequired("form")
	evaluateCmd.MarkFlagRequired("data")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	formPath, _ := cmd.Flags().GetString("form")
	dataPath, _ := cmd.Flags().GetString("data")
	changed, _ := cmd.Flags().GetString("changed")

	formCfg, err := forms.LoadConfigFile(formPath)
	if err != nil {
		return err
	}
	data, err := forms.LoadDataFile(dataPath)
	if err != nil {
		return err
	}

	sink, err := buildSink(cfg)
	if err != nil {
		return err
	}

	engine := forms.NewEngine(sink, forms.WithMaxChangedPaths(cfg.MaxBatchSize))
	if err := engine.Register(formCfg); err != nil {
		return fmt.Errorf("invalid form definition: %w", err)
	}

	var update *forms.Update
	if changed != "" {
		paths := strings.Split(changed, ",")
		for i := range paths {
			paths[i] = strings.TrimSpace(paths[i])
		}
		update, err = engine.Changed(formCfg.ID, paths, data)
	} else {
		update, err = engine.EvaluateAll(formCfg.ID, data)
	}
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(update)
}

// buildSink selects the monitoring sink from config.
func buildSink(cfg *config.Config) (monitor.Sink, error) {
	if !cfg.MonitorEvents {
		return monitor.NopSink{}, nil
	}
	return monitor.NewJSONLSink(cfg.DataDir)
}
