package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Server holds the web binary settings, read from a YAML file with
// environment defaults applied on top.
type Server struct {
	Addr            string        `mapstructure:"addr"`
	DBPath          string        `mapstructure:"db_path" validate:"required"`
	DefaultCurrency string        `mapstructure:"default_currency"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func LoadServer(path string) (*Server, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("addr", ":8080")
	v.SetDefault("default_currency", "EUR")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db_path is required in %s", path)
	}
	return &cfg, nil
}
