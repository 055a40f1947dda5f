package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/de-tools/liquidity-atlas/pkg/runtime/terminal"
	"github.com/de-tools/liquidity-atlas/pkg/services/config"
	"github.com/de-tools/liquidity-atlas/pkg/services/forecast"
)

func main() {
	cfgPath := os.Getenv("LIQUIDITY_CONFIG")
	if cfgPath == "" {
		usr, err := user.Current()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfgPath = fmt.Sprintf("%s/.liquidityrc", usr.HomeDir)
	}

	configs, err := config.NewRegistry(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config %s: %v\n", cfgPath, err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry: forecast.NewRegistry(configs),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
