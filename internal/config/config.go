package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/simaogato/sweep-backend/internal/usecase/optimizer"
)

// Storage backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendTOML     = "toml"
)

// Config holds the server settings
type Config struct {
	// gRPC
	GRPCAddr string
	APIToken string

	// Storage
	StorageBackend string
	DBConnStr      string
	SnapshotPath   string

	// Planning
	HorizonDays int
	SeedDemo    bool

	// Logging
	LogLevel  string
	LogFormat string

	// malformed lists variables that were set but could not be parsed
	malformed []string
}

// Load reads the configuration from the environment, after loading an
// optional .env file from the working directory
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env file not found, using process environment")
	}

	var malformed []string

	cfg := &Config{
		GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		APIToken: getEnv("API_TOKEN", "dev-token"),

		StorageBackend: getEnv("STORAGE_BACKEND", BackendMemory),
		DBConnStr:      dbConnStr(),
		SnapshotPath:   getEnv("SNAPSHOT_PATH", "./data/sweep.toml"),

		HorizonDays: getEnvInt("HORIZON_DAYS", 30, &malformed),
		SeedDemo:    getEnvBool("SEED_DEMO", false, &malformed),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
	cfg.malformed = malformed

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	problems := append([]string(nil), c.malformed...)

	if c.GRPCAddr == "" {
		problems = append(problems, "gRPC address cannot be empty")
	}
	if c.APIToken == "" {
		problems = append(problems, "API token cannot be empty")
	}

	switch c.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DBConnStr == "" {
			problems = append(problems, "database connection string is required for the postgres backend")
		}
	case BackendTOML:
		if c.SnapshotPath == "" {
			problems = append(problems, "snapshot path is required for the toml backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend '%s': must be one of %v",
			c.StorageBackend, []string{BackendMemory, BackendPostgres, BackendTOML}))
	}

	if c.HorizonDays < 1 {
		problems = append(problems, fmt.Sprintf("invalid horizon %d: must be at least 1 day", c.HorizonDays))
	} else if c.HorizonDays > optimizer.MaxHorizonDays {
		problems = append(problems, fmt.Sprintf("invalid horizon %d: must be at most %d days", c.HorizonDays, optimizer.MaxHorizonDays))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be 'json' or 'text'", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// dbConnStr prefers DB_CONN_STR and otherwise builds one from the individual
// DB_* variables (Docker friendly)
func dbConnStr() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "sweep"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses an integer variable. A value that does not parse is
// recorded in malformed and the default is used until Validate rejects it.
func getEnvInt(key string, defaultValue int, malformed *[]string) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithField("key", key).Warn("ignoring malformed integer environment variable")
		*malformed = append(*malformed, fmt.Sprintf("invalid %s '%s': must be an integer", key, value))
		return defaultValue
	}
	return i
}

func getEnvBool(key string, defaultValue bool, malformed *[]string) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		logrus.WithField("key", key).Warn("ignoring malformed boolean environment variable")
		*malformed = append(*malformed, fmt.Sprintf("invalid %s '%s': must be true or false", key, value))
		return defaultValue
	}
	return b
}
