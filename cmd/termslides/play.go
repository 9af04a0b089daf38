package termslides

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/dasdy/termslides/parser"
	"github.com/dasdy/termslides/presentation"
	"github.com/dasdy/termslides/terminal"
	"github.com/spf13/cobra"
)

var (
	clickerPath string
	baudRate    int
	quitKeys    string
)

// playCmd represents the play command.
var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play a presentation in the terminal",
	Long: `Lay out every slide of the file for the current terminal size and show them in order.
Press any key to advance a slide that waits for confirmation. Ctrl-C or a quit key stops playback.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		console := terminal.StdConsole()

		pres, err := parser.LoadFile(args[0], func() (int, int) {
			return console.CanvasSize(width, height)
		})
		if err != nil {
			return err
		}

		var keys presentation.KeySource = console

		if clickerPath != "" {
			clicker, err := openClicker(clickerPath)
			if err != nil {
				return err
			}
			defer clicker.Close()

			keys = clicker
		}

		player := presentation.NewPlayer(console, keys)
		player.QuitKeys = []rune(quitKeys)
		player.Progress = func(index, total int) {
			slog.DebugContext(ctx, "Showing slide", "slide", index+1, "total", total)
		}

		return player.Show(ctx, pres)
	},
}

func openClicker(path string) (*terminal.SerialClicker, error) {
	clicker, err := terminal.OpenClicker(path, baudRate)
	if err == nil {
		return clicker, nil
	}

	// Try suggesting devices
	names, errInner := terminal.ListClickers()
	if errInner != nil {
		return nil, fmt.Errorf("%w; could not suggest devices: %w", err, errInner)
	}

	if len(names) > 0 {
		return nil, fmt.Errorf("%w. Maybe try instead: %+v", err, names)
	}

	return nil, fmt.Errorf("%w. It does not seem like any serial device is connected", err)
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVar(
		&clickerPath,
		"clicker",
		"",
		"Serial device of a presenter remote used instead of the keyboard")

	playCmd.Flags().IntVar(
		&baudRate,
		"baud",
		9600,
		"Baud rate of the clicker device")

	playCmd.Flags().StringVar(
		&quitKeys,
		"quit-key",
		"q",
		"Keys that stop the presentation while it waits for a key press")
}
