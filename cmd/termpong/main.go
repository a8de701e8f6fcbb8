package main

import (
	"fmt"
	"os"

	"github.com/diegok/termpong/internal/app"
	"github.com/diegok/termpong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  termpong [options]               Play Pong for two on one keyboard")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --points <n>        Points to win (default: 11, 0 plays endless)")
	fmt.Fprintln(os.Stderr, "  --left <name>       Left player display name")
	fmt.Fprintln(os.Stderr, "  --right <name>      Right player display name")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --config <file>     Load settings from a TOML file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys:")
	fmt.Fprintln(os.Stderr, "  W/S                 Move the left paddle")
	fmt.Fprintln(os.Stderr, "  Up/Down             Move the right paddle")
	fmt.Fprintln(os.Stderr, "  Space               Serve, start, rematch")
	fmt.Fprintln(os.Stderr, "  P                   Pause and resume")
	fmt.Fprintln(os.Stderr, "  R                   Back to the title screen")
	fmt.Fprintln(os.Stderr, "  Q, Esc, Ctrl+C      Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  termpong")
	fmt.Fprintln(os.Stderr, "  termpong --points 5 --left Ada --right Grace")
	fmt.Fprintln(os.Stderr, "  termpong --config ~/.config/termpong.toml")
}
