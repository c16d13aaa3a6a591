// Package config loads sivgen settings from the environment. A .env file in
// the working directory is read first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/zarlcorp/sivgen/internal/dataset"
)

// DefaultCount is the number of records of each kind a run generates.
const DefaultCount = 200

// Config holds every tunable setting.
type Config struct {
	Dir          string `env:"SIVGEN_DIR" envDefault:"."`
	UKFile       string `env:"SIVGEN_UK_FILE" envDefault:"UK_SIV.txt"`
	FrenchFile   string `env:"SIVGEN_FR_FILE" envDefault:"French_SIV.txt"`
	PhoneFile    string `env:"SIVGEN_PHONE_FILE" envDefault:"french_phone_numbers.txt"`
	NamesFile    string `env:"SIVGEN_NAMES_FILE" envDefault:"names.txt"`
	EmailsFile   string `env:"SIVGEN_EMAILS_FILE" envDefault:"emails.txt"`
	CombinedFile string `env:"SIVGEN_COMBINED_FILE" envDefault:"shuffled_output.txt"`
	Count        int    `env:"SIVGEN_COUNT" envDefault:"200"`
	Seed         int64  `env:"SIVGEN_SEED" envDefault:"0"`
	LogLevel     string `env:"SIVGEN_LOG_LEVEL" envDefault:"info"`
}

// Load reads .env if it exists, then parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	files := []struct{ name, val string }{
		{"dir", c.Dir},
		{"uk file", c.UKFile},
		{"french file", c.FrenchFile},
		{"phone file", c.PhoneFile},
		{"names file", c.NamesFile},
		{"emails file", c.EmailsFile},
		{"combined file", c.CombinedFile},
	}
	for _, f := range files {
		if f.val == "" {
			return fmt.Errorf("config: %s is empty", f.name)
		}
	}
	if c.Count < 0 {
		return fmt.Errorf("config: count %d is negative", c.Count)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Paths maps the file settings onto dataset paths.
func (c Config) Paths() dataset.Paths {
	return dataset.Paths{
		UK:       c.UKFile,
		French:   c.FrenchFile,
		Phone:    c.PhoneFile,
		Names:    c.NamesFile,
		Emails:   c.EmailsFile,
		Combined: c.CombinedFile,
	}
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
