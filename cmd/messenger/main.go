package main

import (
	"fmt"
	"os"

	"github.com/matheus3301/messenger/internal/app"
	"github.com/matheus3301/messenger/internal/selection"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
)

func main() {
	configFlag := pflag.StringP("config", "c", "", "config file (default ~/.messenger/config.toml)")
	seedFlag := pflag.String("seed", "", "TOML file with the roster and history to start with")
	selectFlag := pflag.String("select", "", "initial selection: first or none (overrides config)")
	levelFlag := pflag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	pflag.Parse()

	if *selectFlag != "" {
		if _, err := selection.ParseInitial(*selectFlag); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	a := fx.New(
		app.Module(app.Params{
			ConfigPath: *configFlag,
			SeedPath:   *seedFlag,
			Initial:    *selectFlag,
			LogLevel:   *levelFlag,
		}),
	)
	if err := a.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	a.Run()
}
