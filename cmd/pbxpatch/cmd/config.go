package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	Project  string `json:"project" yaml:"project"`   // Default project file to patch
	Phase    string `json:"phase" yaml:"phase"`       // Default build phase
	Resource string `json:"resource" yaml:"resource"` // Default resource entry
	Suffix   string `json:"suffix" yaml:"suffix"`     // Default backup suffix
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *CLIConfig) setPatchParams(flags *flagsT) {
	if flags.patch.ProjectPath == "" {
		flags.patch.ProjectPath = c.Project
	}
	if flags.patch.Phase == "" {
		flags.patch.Phase = c.Phase
	}
	if flags.patch.Resource == "" {
		flags.patch.Resource = c.Resource
	}
	if flags.patch.BackupSuffix == "" {
		flags.patch.BackupSuffix = c.Suffix
	}
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage a config",
	Long: `Commands to manage the pbxpatch CLI config.

Configuration for pbxpatch is the common set of flags that are needed for most commands and do not change across runs,
analogous to "git config ...". `,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
