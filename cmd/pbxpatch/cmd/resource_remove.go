// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/pbxpatch/pkg/dlogger"
	"github.com/oneconcern/pbxpatch/pkg/pbxproj"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resourceRemove = &cobra.Command{
	Use:   "remove",
	Short: "Remove a resource entry from build phases",
	Long: `Remove the named resource entry from every matching build phase section
of the project file.

Within each section only the first line mentioning the resource is dropped,
and a dangling comma on the preceding list element is trimmed. A backup of
the project file is written next to it before any change, unless
--skip-backup is set. When nothing matches, the file is left untouched.`,
	Example: `% pbxpatch resource remove --project InstaMath.xcodeproj --name InstaMathInfo.plist
created backup at InstaMath.xcodeproj/project.pbxproj.bak
removed "InstaMathInfo.plist" from 1 "Copy Bundle Resources" section(s)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger, err := dlogger.GetLogger(pbxpatchFlags.root.logLevel)
		if err != nil {
			wrapFatalln("get logger", err)
			return
		}

		path, err := resolveProject(ctx, pbxpatchFlags.patch.ProjectPath)
		if err != nil {
			wrapFatalln("locate project file", err)
			return
		}
		doc, err := projectStore.Read(ctx, path)
		if err != nil {
			wrapFatalln("read project file", err)
			return
		}

		patch, err := pbxproj.RemoveResource(doc, pbxpatchFlags.patch.Phase, pbxpatchFlags.patch.Resource)
		if err != nil {
			wrapFatalln("scan project file", err)
			return
		}
		if !patch.Modified {
			infoLogger.Println("no changes were made")
			return
		}
		logger.Debug("patched document",
			zap.String("resource", pbxpatchFlags.patch.Resource),
			zap.String("phase", pbxpatchFlags.patch.Phase),
			zap.Int("sections", len(patch.Removed)),
		)

		if pbxpatchFlags.patch.DryRun {
			if err = printDiff(path, doc, patch.Doc); err != nil {
				wrapFatalln("render diff", err)
			}
			return
		}

		if !pbxpatchFlags.patch.SkipBackup {
			backup, e := projectStore.Backup(ctx, path, pbxpatchFlags.patch.BackupSuffix)
			if e != nil {
				wrapFatalln("create backup", e)
				return
			}
			infoLogger.Printf("created backup at %s", backup)
		}
		if err = projectStore.Write(ctx, path, patch.Doc); err != nil {
			wrapFatalln("write project file", err)
			return
		}
		infoLogger.Printf("removed %q from %d %q section(s)",
			pbxpatchFlags.patch.Resource, len(patch.Removed), pbxpatchFlags.patch.Phase)
	},
}

func init() {
	addProjectFlag(resourceRemove)
	addResourceNameFlag(resourceRemove)
	addPhaseFlag(resourceRemove)
	addDryRunFlag(resourceRemove)
	addSkipBackupFlag(resourceRemove)
	addBackupSuffixFlag(resourceRemove)
	resourceCmd.AddCommand(resourceRemove)
}
