// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

// phaseCmd represents the build phase related commands
var phaseCmd = &cobra.Command{
	Use:   "phase",
	Short: "Commands to inspect build phases",
	Long:  `Commands to inspect the build phase sections of a project file.`,
}

func init() {
	rootCmd.AddCommand(phaseCmd)
}
