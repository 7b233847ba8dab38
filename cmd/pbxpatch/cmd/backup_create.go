// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var backupCreate = &cobra.Command{
	Use:   "create",
	Short: "Create a backup of the project file",
	Long: `Create a backup copy of the project file next to it,
carrying over the file mode and modification time.`,
	Example: `% pbxpatch backup create --project InstaMath.xcodeproj
created backup at InstaMath.xcodeproj/project.pbxproj.bak`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		path, err := resolveProject(ctx, pbxpatchFlags.patch.ProjectPath)
		if err != nil {
			wrapFatalln("locate project file", err)
			return
		}
		backup, err := projectStore.Backup(ctx, path, pbxpatchFlags.patch.BackupSuffix)
		if err != nil {
			wrapFatalln("create backup", err)
			return
		}
		infoLogger.Printf("created backup at %s", backup)
	},
}

func init() {
	addProjectFlag(backupCreate)
	addBackupSuffixFlag(backupCreate)
	backupCmd.AddCommand(backupCreate)
}
