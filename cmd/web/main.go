package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/liquidity-atlas/pkg/server"
	"github.com/de-tools/liquidity-atlas/pkg/services/config"
	"github.com/de-tools/liquidity-atlas/pkg/services/currency"
	"github.com/de-tools/liquidity-atlas/pkg/services/forecast"
	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb"
	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb/documents"
	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb/rates"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Liquidity Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "server.yaml",
		"Path to the server config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	// .env wins over the config file for the listen address.
	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host != "" && port != "" {
		cfg.Addr = net.JoinHostPort(host, port)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.DBPath})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	docStore, err := documents.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create document store: %w", err)
	}
	rateStore, err := rates.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create rate store: %w", err)
	}

	engine := forecast.NewEngine(docStore, currency.NewNormalizer(rateStore))
	controller := forecast.NewController(engine)

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Forecast:        controller,
			DefaultCurrency: cfg.DefaultCurrency,
		},
	})

	return webAPI.Start()
}
