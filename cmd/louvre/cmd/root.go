package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "louvre",
	Short: "triangulate 2D polygon rings",
	Long: `louvre triangulates a 2D polygon ring, even a self-intersecting one, into
non-overlapping triangles:
	- load a ring from an OBJ-formatted geometry file,
	- tweak the build settings (YAML file),
	- triangulate and write the result to a .tri file, or print a summary
	  with the triangle indices.`,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
