// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

// backupCmd represents the backup related commands
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Commands to manage project file backups",
	Long: `Commands to manage the backups written next to the project file,
for use around manual edits.`,
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
