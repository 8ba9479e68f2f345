// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pagethumb/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded pipeline runs",
	Long: `History lists past pipeline runs from the SQLite run ledger. Runs are only
recorded when a ledger path is configured, via --history-db on "process",
the history_db config key, or PAGETHUMB_HISTORY_DB.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("db", "", "run ledger path (default: history_db config key)")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("history_db")
	}
	if dbPath == "" {
		return fmt.Errorf("no run ledger configured: pass --db or set history_db")
	}
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-5s  %-12s  %-22s  %s\n",
		"ID", "Started", "Pages", "Thumbs", "Renamed/Skipped/Err", "Source")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-5d  %3d ok %3d bad  %8d/%7d/%3d  %s\n",
			r.ID, r.StartedAt.Format(time.RFC3339), r.Pages,
			r.ThumbsGenerated, r.ThumbsFailed,
			r.Renamed, r.Skipped, r.Errored, r.Source)
	}
	return nil
}
