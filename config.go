package main

import (
	"os"
	"strings"
)

// Config holds all runtime configuration.
type Config struct {
	Env              string   // "development" or "production"
	Port             string   // HTTP listen port
	RedisURL         string   // Cache connection string
	KafkaBrokers     []string // Empty disables event publishing
	OrderEventsTopic string
}

// LoadConfig reads environment variables into a Config with defaults.
// Postgres settings are read directly by the database package.
func LoadConfig() *Config {
	cfg := &Config{
		Env:              os.Getenv("ENV"),
		Port:             os.Getenv("PORT"),
		RedisURL:         os.Getenv("REDIS_URL"),
		OrderEventsTopic: os.Getenv("ORDER_EVENTS_TOPIC"),
	}

	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379/0"
	}
	if cfg.OrderEventsTopic == "" {
		cfg.OrderEventsTopic = "order.events"
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}
