// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/oneconcern/pbxpatch/pkg/pbxproj"
	"github.com/oneconcern/pbxpatch/pkg/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// defaultResource is the entry the original cleanup targeted. It is kept as
// the default so a bare "pbxpatch resource remove --project ..." still does
// the same thing.
const defaultResource = "InstaMathInfo.plist"

// projectStore accesses project files. Tests may swap in a memory-backed store.
var projectStore = storage.New(nil)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pbxpatch",
	Short: "Pbxpatch edits Xcode project files in place",
	Long: `Pbxpatch edits the serialized text of Xcode project.pbxproj files.

It does not parse the pbxproj grammar: build phase sections are located by
scanning the raw text, single entries are dropped line-wise, and everything
else is written back byte for byte. A backup of the project file is taken
before any change.

`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if pbxpatchFlags.root.cpuProf {
			f, err := os.Create("cpu.prof")
			if err != nil {
				log.Fatal(err)
			}
			_ = pprof.StartCPUProfile(f)
		}
	},
	// upstream api note:  *PostRun functions aren't called in case of a panic() in Run
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if pbxpatchFlags.root.cpuProf {
			pprof.StopCPUProfile()
		}
	},
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&pbxpatchFlags.root.logLevel, "loglevel", "info",
		"The logging level (debug, info, none)")
	rootCmd.PersistentFlags().BoolVar(&pbxpatchFlags.root.cpuProf, "cpuprof", false,
		"Toggle runtime profiling")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("phase", pbxproj.DefaultPhase)
	viper.SetDefault("resource", defaultResource)
	viper.SetDefault("suffix", storage.DefaultBackupSuffix)
	if os.Getenv("PBXPATCH_CONFIG") != "" {
		// Use config file from the flag.
		viper.SetConfigFile(os.Getenv("PBXPATCH_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.pbxpatch")
		viper.SetConfigName("pbxpatch")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	config.setPatchParams(&pbxpatchFlags)
}
