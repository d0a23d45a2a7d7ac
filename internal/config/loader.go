package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures environment driven configuration values for the scheduler service.
type Config struct {
	HTTPPort          int
	SQLiteDSN         string
	AdminPassword     string
	SecretaryPassword string
}

// Load reads an optional .env file and parses configuration from the process
// environment.
//
// The loader applies defaults for optional fields while validating required
// values and reporting every missing or invalid variable by name.
func Load() (Config, error) {
	// A missing .env file is fine; explicit environment wins either way.
	_ = godotenv.Load()

	cfg := Config{
		HTTPPort:  8080,
		SQLiteDSN: "file:scheduler.db?_pragma=foreign_keys(1)",
	}

	missing := make([]string, 0, 2)
	invalid := make([]string, 0, 1)

	if portValue := strings.TrimSpace(os.Getenv("SCHEDULER_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "SCHEDULER_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("SCHEDULER_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if password := strings.TrimSpace(os.Getenv("SCHEDULER_ADMIN_PASSWORD")); password == "" {
		missing = append(missing, "SCHEDULER_ADMIN_PASSWORD")
	} else {
		cfg.AdminPassword = password
	}

	if password := strings.TrimSpace(os.Getenv("SCHEDULER_SECRETARY_PASSWORD")); password == "" {
		missing = append(missing, "SCHEDULER_SECRETARY_PASSWORD")
	} else {
		cfg.SecretaryPassword = password
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
