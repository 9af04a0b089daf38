package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/termslides/cmd/termslides"
	"github.com/dasdy/termslides/logging"
)

func main() {
	// Replaced in the root command once --verbose is known.
	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, slog.LevelInfo)))

	termslides.Execute()
}
