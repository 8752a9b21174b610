package app

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/Flyrell/coursecal/internal/prefs"
	"github.com/Flyrell/coursecal/internal/ratings"
	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvHome        = "COURSECAL_HOME"
	EnvRatingsURL  = "COURSECAL_RATINGS_URL"
	EnvMappingsURL = "COURSECAL_MAPPINGS_URL"
	EnvQuarters    = "COURSECAL_QUARTERS"
	EnvEnvironment = "COURSECAL_ENV"
)

// Config is the process environment of the tool.
type Config struct {
	// Home is the directory holding .coursecal/.
	Home        string
	RatingsURL  string
	MappingsURL string
	// QuartersPath is an optional JSON term table prepended to the built-in one.
	QuartersPath string
	Environment  string
}

// RatingsSource returns where reference data is read from.
func (c *Config) RatingsSource() ratings.Source {
	return ratings.Source{Professors: c.RatingsURL, Mappings: c.MappingsURL}
}

// LoadConfig reads settings from the process environment, then from envFile
// when it exists. Process variables win over the file.
func LoadConfig(envFile string) (*Config, error) {
	fileVals := map[string]string{}
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVals = vals
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
	}

	get := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileVals[key]
	}

	cfg := &Config{
		Home:         get(EnvHome),
		RatingsURL:   get(EnvRatingsURL),
		MappingsURL:  get(EnvMappingsURL),
		QuartersPath: get(EnvQuarters),
		Environment:  get(EnvEnvironment),
	}

	if cfg.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.Home = home
	}
	if cfg.QuartersPath == "" {
		cfg.QuartersPath = filepath.Join(prefs.Dir(cfg.Home), "quarters.json")
	}
	if cfg.Environment == "" {
		cfg.Environment = "production"
	}

	return cfg, nil
}
