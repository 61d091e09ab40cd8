package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blobtidy",
	Short: "Group container blobs by base name and report the stale ones",
	Long:  "Blobtidy lists the blobs of a storage container, groups them by the name before the first dot, keeps the two most recent files per group, and writes per-group reports plus consolidated CSV/JSON exports. It can also delete an explicit list of blobs.",
}

func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
