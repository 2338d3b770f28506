package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/acheul/go-louvre/builder"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with default values.

If FILE is not provided, 'louvre.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "louvre.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		buf, err := yaml.Marshal(builder.NewSettings())
		check(err)
		check(ioutil.WriteFile(path, buf, 0644))
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
