package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

type Config struct {
	// Document store
	DataBackend   string
	SQLiteDBPath  string
	DataDirectory string

	// AMQP (alert worker)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Alert worker
	AlertInterval time.Duration

	// Dashboard
	OverviewTTL time.Duration
	Period      string
}

func Load() *Config {
	return &Config{
		DataBackend:   getEnv("DATA_BACKEND", "sqlite"),
		SQLiteDBPath:  getEnv("SQLITE_DB_PATH", "./data/moneybalance.db"),
		DataDirectory: getEnv("DATA_DIRECTORY", "./data"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "moneybalance"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "budget_alerts"),

		AlertInterval: getEnvDuration("ALERT_INTERVAL", 15*time.Minute),

		OverviewTTL: getEnvDuration("OVERVIEW_TTL", 30*time.Second),
		Period:      getEnv("PERIOD", "month"),
	}
}

// Validate validates the configuration and returns an aggregate error if
// anything is off.
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"sqlite", "file", "memory"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == "sqlite" && c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
	}
	if c.DataBackend == "file" && c.DataDirectory == "" {
		errors = append(errors, "data directory cannot be empty when using file backend")
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.AlertInterval < time.Second {
		errors = append(errors, fmt.Sprintf("invalid alert interval %v: must be at least 1 second", c.AlertInterval))
	} else if c.AlertInterval > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid alert interval %v: must be at most 24 hours", c.AlertInterval))
	}

	if c.OverviewTTL < 0 {
		errors = append(errors, fmt.Sprintf("invalid overview TTL %v: must not be negative", c.OverviewTTL))
	}

	switch c.Period {
	case "week", "month", "year":
	default:
		errors = append(errors, fmt.Sprintf("invalid period '%s': must be week, month or year", c.Period))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
