package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Configuration keys
const (
	// Server Configuration
	Port = "PORT"

	// Logging Configuration
	LogLevel  = "LOG_LEVEL"
	LogFormat = "LOG_FORMAT"

	// Seed Configuration
	SeedData = "SEED_DATA"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Seed    SeedConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// SeedConfig controls demo-data seeding at startup
type SeedConfig struct {
	Enabled bool
}

// LoadConfig loads configuration from environment variables and an optional
// .env file, applying defaults for anything unset
func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault(Port, "8080")
	viper.SetDefault(LogLevel, "info")
	viper.SetDefault(LogFormat, "json")
	viper.SetDefault(SeedData, true)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
		// no .env file is fine, environment and defaults apply
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString(Port),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString(LogLevel),
			Format: viper.GetString(LogFormat),
		},
		Seed: SeedConfig{
			Enabled: viper.GetBool(SeedData),
		},
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Server.Port)
}
