package termslides

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dasdy/termslides/export"
	"github.com/dasdy/termslides/parser"
	"github.com/dasdy/termslides/terminal"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	title      string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Render a presentation into an HTML page",
	Long: `Lay out every slide with the canvas size given by --width and --height
(80x24 when not set) and write them into a single HTML page.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, h := exportSize()

		pres, err := parser.LoadFile(args[0], parser.FixedSize(w, h))
		if err != nil {
			return err
		}

		deckTitle := title
		if deckTitle == "" {
			deckTitle = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}

		deck := export.Deck{Title: deckTitle, Width: w, Height: h, Slides: pres.Slides()}
		bar := progressbar.Default(int64(pres.Len()), "exporting slides")

		if outputPath == "-" {
			err = export.WriteHTML(cmd.Context(), cmd.OutOrStdout(), deck, bar)
		} else {
			err = export.WriteHTMLFile(cmd.Context(), outputPath, deck, bar)
		}

		if err != nil {
			return err
		}

		slog.Info("Presentation exported", "path", outputPath, "slides", pres.Len())

		return nil
	},
}

func exportSize() (int, int) {
	w, h := width, height
	if w <= 0 {
		w = terminal.DefaultWidth
	}

	if h <= 0 {
		h = terminal.DefaultHeight
	}

	return w, h
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(
		&outputPath,
		"out",
		"o",
		"slides.html",
		"Output path for the page, - for standard output")

	exportCmd.Flags().StringVar(
		&title,
		"title",
		"",
		"Page title, the file name when not set")
}
