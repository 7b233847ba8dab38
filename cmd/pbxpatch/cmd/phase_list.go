// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/pbxpatch/pkg/pbxproj"
	"github.com/spf13/cobra"
)

var phaseList = &cobra.Command{
	Use:   "list",
	Short: "List build phases",
	Long:  `List every build phase section found in the project file, in document order.`,
	Example: `% pbxpatch phase list --project InstaMath.xcodeproj
Copy Bundle Resources	2 entries
Sources	5 entries`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
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
		for _, s := range pbxproj.BuildPhases(doc) {
			infoLogger.Printf("%s\t%d entries", s.Phase, len(s.Entries()))
		}
	},
}

func init() {
	addProjectFlag(phaseList)
	phaseCmd.AddCommand(phaseList)
}
