package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings of both the server and the gateway.
type Config struct {
	AppPort         string
	DatabaseDriver  string
	DatabaseDSN     string
	RabbitMQURL     string
	ConsumeEvents   bool
	GatewaySecret   string
	GatewayPort     string
	ServerURL       string
	GatewayTimeout  time.Duration
	GatewayTokenTTL time.Duration
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "file:shareit.db?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("BOOKING_EVENTS_CONSUME", false)
	v.SetDefault("GATEWAY_SECRET", "")
	v.SetDefault("GATEWAY_PORT", ":9090")
	v.SetDefault("SHAREIT_SERVER_URL", "http://localhost:8080")
	v.SetDefault("GATEWAY_TIMEOUT", "5s")
	v.SetDefault("GATEWAY_TOKEN_TTL", "1m")
}

// Load reads configuration from the environment and, when CONFIG_FILE is
// set, from that file. Environment variables win over the file.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
		log.Printf("Loaded configuration from %s", file)
	}

	cfg := &Config{
		AppPort:         v.GetString("APP_PORT"),
		DatabaseDriver:  v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		ConsumeEvents:   v.GetBool("BOOKING_EVENTS_CONSUME"),
		GatewaySecret:   v.GetString("GATEWAY_SECRET"),
		GatewayPort:     v.GetString("GATEWAY_PORT"),
		ServerURL:       v.GetString("SHAREIT_SERVER_URL"),
		GatewayTimeout:  v.GetDuration("GATEWAY_TIMEOUT"),
		GatewayTokenTTL: v.GetDuration("GATEWAY_TOKEN_TTL"),
	}

	switch cfg.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q: want sqlite or postgres", cfg.DatabaseDriver)
	}
	if cfg.GatewayTimeout <= 0 {
		return nil, fmt.Errorf("GATEWAY_TIMEOUT must be positive, got %q", v.GetString("GATEWAY_TIMEOUT"))
	}
	if cfg.GatewayTokenTTL <= 0 {
		return nil, fmt.Errorf("GATEWAY_TOKEN_TTL must be positive, got %q", v.GetString("GATEWAY_TOKEN_TTL"))
	}
	return cfg, nil
}
