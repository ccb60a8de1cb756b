package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Book struct {
		Name     string `yaml:"name"`
		Category string `yaml:"category"`
	} `yaml:"book"`
	Console struct {
		Prompt       string `yaml:"prompt"`
		Separator    string `yaml:"separator"`
		AnnounceAdds *bool  `yaml:"announce_adds"`
	} `yaml:"console"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// DefaultPath is used when neither a flag nor CONFIG_PATH names a config file.
const DefaultPath = "configs/config.yaml"

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("GRADEBOOK_NAME"); v != "" {
		cfg.Book.Name = v
	}
	if v := os.Getenv("GRADEBOOK_CATEGORY"); v != "" {
		cfg.Book.Category = v
	}
	if v := os.Getenv("GRADEBOOK_ANNOUNCE"); v != "" {
		announce, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse GRADEBOOK_ANNOUNCE: %w", err)
		}
		cfg.Console.AnnounceAdds = &announce
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Book.Name == "" {
		cfg.Book.Name = "My GradeBook"
	}
	if cfg.Book.Category == "" {
		cfg.Book.Category = "Science"
	}
	if cfg.Console.Prompt == "" {
		cfg.Console.Prompt = "Enter a grade or 'q' to quit"
	}
	if cfg.Console.Separator == "" {
		cfg.Console.Separator = "**"
	}
	if cfg.Console.AnnounceAdds == nil {
		announce := true
		cfg.Console.AnnounceAdds = &announce
	}

	return cfg, nil
}

// Announce reports whether added grades are announced on the console.
func (c *Config) Announce() bool {
	return c.Console.AnnounceAdds == nil || *c.Console.AnnounceAdds
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Book.Name == "" {
		return fmt.Errorf("book.name is required")
	}
	if c.Book.Category == "" {
		return fmt.Errorf("book.category is required")
	}
	if c.Console.Separator == "" {
		return fmt.Errorf("console.separator is required")
	}
	return nil
}
