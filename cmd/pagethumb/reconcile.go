// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pagethumb/internal/reconcile"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile [dir]",
	Short: "Normalize rasterizer output filenames in a directory",
	Long: `Reconcile renames thumbnails of the form page_{n}_{name}-{digits}.jpeg to
page_{n}_{name}.jpeg. Files whose target name is already taken are skipped,
never overwritten. Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	_, err := reconcile.Reconcile(dir, os.Stdout)
	return err
}
