// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/pbxpatch/pkg/pbxproj"
	"github.com/spf13/cobra"
)

var resourceList = &cobra.Command{
	Use:   "list",
	Short: "List resource entries in matching build phases",
	Long:  `List the file entries of every matching build phase section of the project file.`,
	Example: `% pbxpatch resource list --project InstaMath.xcodeproj
03FA02A12A4C1D4D00E3E3E1	Assets.xcassets
03FA02A42A4C1D4D00E3E3E1	InstaMathInfo.plist`,
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
		sections, err := pbxproj.Sections(doc, pbxpatchFlags.patch.Phase)
		if err != nil {
			wrapFatalln("scan project file", err)
			return
		}
		for _, s := range sections {
			for _, e := range s.Entries() {
				infoLogger.Printf("%s\t%s", e.ID, e.Name)
			}
		}
	},
}

func init() {
	addProjectFlag(resourceList)
	addPhaseFlag(resourceList)
	resourceCmd.AddCommand(resourceList)
}
