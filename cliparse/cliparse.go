package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseType string
	DatabaseFile string
	DatabaseURL  string
	SeedFile     string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("minion-meister", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseFile, "f", "", "SQLite database file")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "PostgreSQL connection URL")

	// Maintenance mode: restore a roster backup and exit
	fs.StringVar(&cfg.SeedFile, "seed", "", "Roster backup JSON to restore")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	switch cfg.DatabaseType {
	case "sqlite":
		if cfg.DatabaseFile == "" {
			cfg.DatabaseFile = os.Getenv("DATABASE_FILE")
		}
		if cfg.DatabaseFile == "" {
			return Config{}, errors.New("database file required (use -f or DATABASE_FILE env)")
		}
	case "postgres":
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	return cfg, nil
}
