package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/acheul/go-louvre/builder"
	"github.com/spf13/cobra"
)

var cfgVal, outVal string

// triangulateCmd represents the triangulate command.
var triangulateCmd = &cobra.Command{
	Use:   "triangulate INPUT",
	Short: "triangulate a polygon ring loaded from an OBJ file",
	Long: `Triangulate a polygon ring read from an OBJ-formatted geometry file.
Build is controlled by the provided build settings.

By default the result is written as a .tri binary file next to INPUT.
Pass --out - to print a human-readable summary to stdout instead, or
--out FILE to pick the binary's destination.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputVal := args[0]

		s := builder.NewSettings()
		if err := fileExists(cfgVal); err == nil {
			check(unmarshalYAMLFile(cfgVal, &s))
		}

		b := builder.New()
		b.SetSettings(s)
		check(b.LoadFile(inputVal))

		result, err := b.Build()
		check(err)

		for i := 0; i < b.Context().LogCount(); i++ {
			fmt.Println(b.Context().LogText(i))
		}

		if outVal == "-" {
			printSummary(s, result)
			return
		}

		out := outVal
		if out == "" {
			out = defaultTriPath(inputVal)
		}
		f, err := os.Create(out)
		check(err)
		defer f.Close()
		check(builder.WriteTri(f, result))
		fmt.Printf("wrote %d triangles to '%s'\n", result.TriangleCount, out)
	},
}

func init() {
	RootCmd.AddCommand(triangulateCmd)

	triangulateCmd.Flags().StringVar(&cfgVal, "config", "louvre.yml", "build settings")
	triangulateCmd.Flags().StringVar(&outVal, "out", "", "output .tri file ('-' prints a summary to stdout instead; default: INPUT with a .tri extension)")
}

// defaultTriPath derives the default .tri output path by swapping
// input's extension.
func defaultTriPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".tri"
}

func printSummary(s builder.Settings, result builder.Result) {
	fmt.Printf("%d triangles, %d discarded cycle(s)\n", result.TriangleCount, result.DiscardedCycles)
	sc := float32(s.DisplayScale)
	if s.DisplayScale != 1 {
		fmt.Printf("bounds (x%.3g display scale): ", s.DisplayScale)
	} else {
		fmt.Print("bounds: ")
	}
	fmt.Printf("min(%v,%v) max(%v,%v)\n", result.Bounds.Min[0]*sc, result.Bounds.Min[1]*sc, result.Bounds.Max[0]*sc, result.Bounds.Max[1]*sc)
	fmt.Printf("elapsed: total=%v ring=%v intersect=%v link=%v decompose=%v earclip=%v\n",
		result.Elapsed.Total, result.Elapsed.BuildRing, result.Elapsed.Intersect,
		result.Elapsed.Link, result.Elapsed.Decompose, result.Elapsed.EarClip)
	fmt.Println("indices:")
	fmt.Println(result.Indices)
}

// fileExists returns nil if path exists, or an error otherwise.
func fileExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no such file '%v'", path)
		}
		return err
	}
	return nil
}
