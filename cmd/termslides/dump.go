package termslides

import (
	"log/slog"

	"github.com/dasdy/termslides/export"
	"github.com/dasdy/termslides/parser"
	"github.com/spf13/cobra"
)

var dumpPath string

// dumpCmd represents the dump command.
var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print parsed slides as YAML",
	Long:  `Parse the presentation without laying it out and print every slide's placement directives.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := parser.ParseFile(args[0])
		if err != nil {
			return err
		}

		if dumpPath == "-" {
			return export.WriteSpecsYAML(cmd.OutOrStdout(), specs)
		}

		if err := export.WriteSpecsYAMLFile(dumpPath, specs); err != nil {
			return err
		}

		slog.Info("Slides dumped", "path", dumpPath, "slides", len(specs))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVarP(
		&dumpPath,
		"out",
		"o",
		"-",
		"Output path for the YAML document, - for standard output")
}
