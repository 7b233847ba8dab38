// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

// resourceCmd represents the resource related commands
var resourceCmd = &cobra.Command{
	Use:   "resource",
	Short: "Commands to manage resource entries in build phases",
	Long: `Commands to manage the file entries of build phase sections,
such as the entries of "Copy Bundle Resources".`,
}

func init() {
	rootCmd.AddCommand(resourceCmd)
}
