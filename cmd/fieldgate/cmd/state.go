package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/solatis/fieldgate/internal/core/config"
	"github.com/solatis/fieldgate/internal/core/db"
	"github.com/solatis/fieldgate/internal/forms"
	"github.com/solatis/fieldgate/internal/store"
	"github.com/solatis/fieldgate/internal/types"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Save, load and list persisted form states",
}

var stateSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist a form state snapshot, printing its instance id",
	RunE:  runStateSave,
}

var stateLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Print a persisted form state as JSON",
	RunE:  runStateLoad,
}

var stateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List persisted form states, optionally filtered by form",
	RunE:  runStateList,
}

var stateRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete a persisted form state",
	RunE:  runStateRemove,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateSaveCmd, stateLoadCmd, stateListCmd, stateRemoveCmd)

	stateSaveCmd.Flags().String("form", "", "form id (required)")
	stateSaveCmd.Flags().String("instance", "", "instance id; a new UUIDv7 is generated when omitted")
	stateSaveCmd.Flags().String("step", "", "current step id")
	stateSaveCmd.Flags().String("data", "", "form data JSON file (required)")
	stateSaveCmd.MarkFlagRequired("form")
	stateSaveCmd.MarkFlagRequired("data")

	stateLoadCmd.Flags().String("instance", "", "instance id (required)")
	stateLoadCmd.MarkFlagRequired("instance")

	stateListCmd.Flags().String("form", "", "restrict to one form id")

	stateRemoveCmd.Flags().String("instance", "", "instance id (required)")
	stateRemoveCmd.MarkFlagRequired("instance")
}

// openStore connects the SQL-backed store per config/flags. The returned
// context carries the configured request timeout.
func openStore(cfg *config.Config) (*store.SQLStore, context.Context, func(), error) {
	url := cfg.DatabaseURL
	if dbURL != "" {
		url = dbURL
	}
	if url == "" {
		return nil, nil, nil, fmt.Errorf("no database URL configured, set --db-url or database_url")
	}

	conn, err := db.Open(url)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	queries, err := db.LoadQueries(conn)
	if err != nil {
		conn.Close()
		return nil, nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	cleanup := func() {
		cancel()
		conn.Close()
	}
	return store.NewSQLStore(queries), ctx, cleanup, nil
}

func runStateSave(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	formID, _ := cmd.Flags().GetString("form")
	instance, _ := cmd.Flags().GetString("instance")
	step, _ := cmd.Flags().GetString("step")
	dataPath, _ := cmd.Flags().GetString("data")

	data, err := forms.LoadDataFile(dataPath)
	if err != nil {
		return err
	}

	var id types.InstanceID
	if instance == "" {
		id = types.NewInstanceID()
	} else {
		id, err = types.ParseInstanceID(instance)
		if err != nil {
			return fmt.Errorf("invalid instance id: %w", err)
		}
	}

	s, ctx, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	err = s.SaveState(ctx, types.FormState{
		InstanceID:  id,
		FormID:      types.FormID(formID),
		CurrentStep: step,
		Data:        data,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

func runStateLoad(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	instance, _ := cmd.Flags().GetString("instance")
	id, err := types.ParseInstanceID(instance)
	if err != nil {
		return fmt.Errorf("invalid instance id: %w", err)
	}

	s, ctx, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	state, err := s.LoadState(ctx, id)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(state)
}

func runStateList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	formID, _ := cmd.Flags().GetString("form")

	s, ctx, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	states, err := s.ListStates(ctx, types.FormID(formID))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(states)
}

func runStateRemove(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	instance, _ := cmd.Flags().GetString("instance")
	id, err := types.ParseInstanceID(instance)
	if err != nil {
		return fmt.Errorf("invalid instance id: %w", err)
	}

	s, ctx, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return s.RemoveState(ctx, id)
}
