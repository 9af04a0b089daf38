package termslides

import (
	"fmt"

	"github.com/dasdy/termslides/terminal"
	"github.com/spf13/cobra"
)

// clickersCmd represents the clickers command.
var clickersCmd = &cobra.Command{
	Use:   "clickers",
	Short: "List serial devices that can be used with --clicker",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		names, err := terminal.ListClickers()
		if err != nil {
			return err
		}

		if len(names) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No serial devices found")

			return nil
		}

		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(clickersCmd)
}
