package termslides

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/termslides/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	width   int
	height  int
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "termslides",
	Short: "Show text slides in the terminal",
	Long: `Termslides plays a presentation written as a text file in the terminal.
Sections separated by --- become slides, and fenced blocks inside a section are
placed on a fixed-size canvas by one of their corners. Slides either wait for a
key press or advance after a delay.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, args); err != nil {
			return err
		}

		if verbose {
			slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, slog.LevelDebug)))
		}

		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.termslides.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "If provided, debug output will be shown")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "Canvas width, the terminal width when not set")
	rootCmd.PersistentFlags().IntVar(&height, "height", 0, "Canvas height, the terminal height when not set")
}

func initConfig() {
	if cfgFile != "" {
		slog.Debug("Using config file", "path", cfgFile)
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory and the working directory with name ".termslides" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".termslides")
	}
	// Set environment variable prefix
	viper.SetEnvPrefix("termslides")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			slog.Debug("No config file found, using flags and environment only")
		} else {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) error {
	var bindErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Viper does case-insensitive comparisons, so only the hyphens need removing for camelCase keys.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if bindErr != nil || f.Changed || !viper.IsSet(configName) {
			return
		}

		val := viper.Get(configName)

		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			bindErr = fmt.Errorf("error setting flag %s from config: %w", f.Name, err)

			return
		}

		slog.Debug("Flag set to config value", "flag", f.Name, "value", val)
	})

	return bindErr
}
