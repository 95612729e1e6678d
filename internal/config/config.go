// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port       string `mapstructure:"PORT"`
	DBDriver   string `mapstructure:"DB_DRIVER"` // "postgres" or "sqlite"
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`
	// DBPath is the sqlite database file; only used when DB_DRIVER is "sqlite".
	DBPath         string  `mapstructure:"DB_PATH"`
	RedisURL       string  `mapstructure:"REDIS_URL"`
	Env            string  `mapstructure:"APP_ENV"`
	TraceEnabled   bool    `mapstructure:"TRACE_ENABLED"`
	TraceExporter  string  `mapstructure:"TRACE_EXPORTER"` // "stdout" or "otlp"
	OTLPEndpoint   string  `mapstructure:"OTLP_ENDPOINT"`
	TraceSampler   float64 `mapstructure:"TRACE_SAMPLER_RATIO"`
	ServiceVersion string  `mapstructure:"SERVICE_VERSION"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables and defaults suffice.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" && env != "" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err == nil {
			log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
		}
	}

	// Set default values for development
	viper.SetDefault("PORT", "8274")
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "user")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "kindling")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_PATH", "kindling.db")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("TRACE_ENABLED", false)
	viper.SetDefault("TRACE_EXPORTER", "stdout")
	viper.SetDefault("OTLP_ENDPOINT", "localhost:4318")
	viper.SetDefault("TRACE_SAMPLER_RATIO", 1.0)
	viper.SetDefault("SERVICE_VERSION", "1.0.0")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and meet security standards.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}

	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be \"postgres\" or \"sqlite\", got %q", c.DBDriver)
	}

	if c.DBDriver == "sqlite" && c.DBPath == "" {
		return errors.New("DB_PATH is required when DB_DRIVER is sqlite")
	}

	isProduction := c.Env == "production" || c.Env == "prod"

	// Strict checks for production
	if isProduction {
		if c.DBDriver == "sqlite" {
			log.Println("WARNING: running production on sqlite; a single-writer store limits throughput.")
		}
		if c.DBDriver == "postgres" {
			if c.DBPassword == "password" || c.DBPassword == "" {
				return errors.New("a strong DB_PASSWORD is required in production")
			}
			if c.DBSSLMode == "disable" || c.DBSSLMode == "" {
				log.Println("WARNING: DB_SSLMODE is 'disable' in production. It is highly recommended to use SSL for database connections.")
			}
		}
	}

	return nil
}
