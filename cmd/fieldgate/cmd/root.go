package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configFile string
	dbURL      string
)

var rootCmd = &cobra.Command{
	Use:   "fieldgate",
	Short: "fieldgate conditional-visibility engine for multi-step forms",
	Long:  `fieldgate evaluates conditional field behavior (visible/disabled/required/readonly) against form data and tracks which fields need re-evaluation when data changes.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "database connection URL (sqlite://path or postgres://...)")
}

func Execute() error {
	return rootCmd.Execute()
}
