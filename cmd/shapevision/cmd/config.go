package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Settings holds the build settings read from a YAML file by the build
// command, or written out, prefilled with defaults, by the config command.
type Settings struct {
	// MaxPersistence clamps the reported persistence of any continuum; a
	// near-degenerate saddle patch can otherwise produce a persistence far
	// larger than the dynamic range of the input.
	MaxPersistence float32 `yaml:"max_persistence"`
	// EnableLog and EnableTimer mirror cc.BuildContext's own flags.
	EnableLog   bool `yaml:"enable_log"`
	EnableTimer bool `yaml:"enable_timer"`
}

// DefaultSettings returns the settings used when no config file is given.
func DefaultSettings() Settings {
	return Settings{
		MaxPersistence: 1,
		EnableLog:      false,
		EnableTimer:    false,
	}
}

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with default
values.

If FILE is not provided, 'shapevision.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "shapevision.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		check(marshalYAMLFile(path, DefaultSettings()))
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
