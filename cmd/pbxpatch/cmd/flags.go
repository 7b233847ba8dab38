// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

type flagsT struct {
	patch struct {
		ProjectPath  string
		Phase        string
		Resource     string
		BackupSuffix string
		SkipBackup   bool
		DryRun       bool
	}
	root struct {
		logLevel string
		cpuProf  bool
	}
	doc struct {
		docTarget string
	}
}

var pbxpatchFlags = flagsT{}

func addProjectFlag(cmd *cobra.Command) string {
	project := "project"
	if cmd != nil {
		cmd.Flags().StringVar(&pbxpatchFlags.patch.ProjectPath, project, "",
			"The path to the project.pbxproj file, or to the enclosing .xcodeproj directory")
	}
	return project
}

func addResourceNameFlag(cmd *cobra.Command) string {
	name := "name"
	cmd.Flags().StringVar(&pbxpatchFlags.patch.Resource, name, "",
		"The resource entry to act on, e.g. InstaMathInfo.plist")
	return name
}

func addPhaseFlag(cmd *cobra.Command) string {
	phase := "phase"
	cmd.Flags().StringVar(&pbxpatchFlags.patch.Phase, phase, "",
		"The name of the build phase to act on, as it appears in the section comment")
	return phase
}

func addBackupSuffixFlag(cmd *cobra.Command) string {
	suffix := "backup-suffix"
	cmd.Flags().StringVar(&pbxpatchFlags.patch.BackupSuffix, suffix, "",
		"The suffix appended to the project file name for backups")
	return suffix
}

func addSkipBackupFlag(cmd *cobra.Command) string {
	skipBackup := "skip-backup"
	cmd.Flags().BoolVar(&pbxpatchFlags.patch.SkipBackup, skipBackup, false,
		"Do not write a backup of the project file before patching it")
	return skipBackup
}

func addDryRunFlag(cmd *cobra.Command) string {
	dryRun := "dry-run"
	cmd.Flags().BoolVar(&pbxpatchFlags.patch.DryRun, dryRun, false,
		"Show the patch as a unified diff, do not write anything")
	return dryRun
}

func addTargetFlag(cmd *cobra.Command) string {
	target := "target"
	cmd.Flags().StringVar(&pbxpatchFlags.doc.docTarget, target, ".",
		"The target directory where to generate the markdown documentation")
	return target
}
