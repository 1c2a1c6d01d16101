// Package config loads store settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. TASKS_TIMEZONE.
const Prefix = "tasks"

// Config defines store settings.
type Config struct {
	Timezone string `envconfig:"TIMEZONE" default:"Local"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogJSON  bool   `envconfig:"LOG_JSON" default:"false"`
}

// DefaultFiles returns the dotenv files read by Load: .env, then
// .env.<APP_ENV> (APP_ENV defaults to dev).
func DefaultFiles() []string {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}
	return []string{".env", ".env." + appEnv}
}

// Load reads the given dotenv files and then processes environment variables.
// With no files, DefaultFiles is used. Missing files are skipped. The first
// file never overrides variables already set; later files do.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = DefaultFiles()
	}

	for i, file := range files {
		load := godotenv.Overload
		if i == 0 {
			load = godotenv.Load
		}
		if err := load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}
	return cfg, nil
}

// Location resolves Timezone: "Local", "UTC" or an IANA name.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
