package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	defaultPort = 9191
)

type Config struct {
	Stage       string
	Port        int
	DatabaseUrl string
	LogFormat   string
	LogLevel    string

	// Seed is zero when games should be seeded from the clock.
	Seed int64
}

// Load reads the environment. Outside of prod a .env file is loaded
// first when one exists.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config out of any key lookup, os.LookupEnv in
// production.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	cfg := Config{
		Stage:       get("STAGE"),
		Port:        defaultPort,
		DatabaseUrl: get("DATABASE_URL"),
		LogFormat:   get("LOG_FORMAT"),
		LogLevel:    get("LOG_LEVEL"),
	}

	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", cfg.Stage)
	}

	if portEnv := get("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT: %s", portEnv)
		}
		cfg.Port = port
	}

	if seedEnv := get("SEED"); seedEnv != "" {
		seed, err := strconv.ParseInt(seedEnv, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEED: %s", seedEnv)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

// RandSeed returns the configured seed, or a fresh one from the clock.
func (c Config) RandSeed() int64 {
	if c.Seed != 0 {
		slog.Debug("using fixed seed", "seed", c.Seed)
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}
