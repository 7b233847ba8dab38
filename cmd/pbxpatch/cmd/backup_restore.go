// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var backupRestore = &cobra.Command{
	Use:   "restore",
	Short: "Restore the project file from its backup",
	Long:  `Copy the backup taken with the given suffix back over the project file.`,
	Example: `% pbxpatch backup restore --project InstaMath.xcodeproj
restored InstaMath.xcodeproj/project.pbxproj from InstaMath.xcodeproj/project.pbxproj.bak`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		path, err := resolveProject(ctx, pbxpatchFlags.patch.ProjectPath)
		if err != nil {
			wrapFatalln("locate project file", err)
			return
		}
		suffix := pbxpatchFlags.patch.BackupSuffix
		if err = projectStore.Restore(ctx, path, suffix); err != nil {
			wrapFatalln("restore backup", err)
			return
		}
		infoLogger.Printf("restored %s from %s", path, path+suffix)
	},
}

func init() {
	addProjectFlag(backupRestore)
	addBackupSuffixFlag(backupRestore)
	backupCmd.AddCommand(backupRestore)
}
