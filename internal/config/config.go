package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Weights mirrors metadata.Weights in the config file
type Weights struct {
	Title       float64 `yaml:"title"`
	Artist      float64 `yaml:"artist"`
	TitleArtist float64 `yaml:"title_artist"`
	Duration    float64 `yaml:"duration"`
}

// Config contains the program configuration
type Config struct {
	Path              string        `yaml:"-"`
	Debug             bool          `yaml:"debug"`
	Write             bool          `yaml:"write"`
	SearchURL         string        `yaml:"search_url"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	DurationTolerance time.Duration `yaml:"duration_tolerance"`
	TopMatches        int           `yaml:"top_matches"`
	Weights           Weights       `yaml:"weights"`
	LogFile           string        `yaml:"log_file"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		SearchURL:         "https://itunes.apple.com/search",
		RequestTimeout:    10 * time.Second,
		DurationTolerance: 10 * time.Second,
		TopMatches:        5,
		Weights: Weights{
			Title:       0.5,
			Artist:      0.5,
			TitleArtist: 0.5,
			Duration:    0.5,
		},
	}
}

// LoadConfigFile loads configuration from a YAML file.
// If path is empty, searches standard locations. Returns defaults if no file found.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = FindConfigFile()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Path = path
	cfg.LogFile = ExpandHome(cfg.LogFile)

	return cfg, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

// FindConfigFile searches for a config file in standard locations
func FindConfigFile() string {
	home := homeDir()
	locations := []string{
		"./imd.yaml",
		"./imd.yml",
		filepath.Join(home, ".config", "imd", "config.yaml"),
		filepath.Join(home, ".config", "imd", "config.yml"),
		filepath.Join(home, ".imd.yaml"),
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// SaveConfigFile saves the configuration to a YAML file
func SaveConfigFile(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigPath returns the default config file path
func GetDefaultConfigPath() string {
	return filepath.Join(homeDir(), ".config", "imd", "config.yaml")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.Getenv("HOME")
	}
	return home
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.SearchURL, "http://") && !strings.HasPrefix(c.SearchURL, "https://") {
		return fmt.Errorf("search_url must start with http:// or https://, got %q", c.SearchURL)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.DurationTolerance < 0 {
		return fmt.Errorf("duration_tolerance cannot be negative, got %s", c.DurationTolerance)
	}
	if c.TopMatches < 1 {
		return fmt.Errorf("top_matches must be at least 1, got %d", c.TopMatches)
	}

	w := c.Weights
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"title", w.Title},
		{"artist", w.Artist},
		{"title_artist", w.TitleArtist},
		{"duration", w.Duration},
	} {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("weights.%s must be between 0.0 and 1.0, got %.2f", f.name, f.value)
		}
	}

	// Each pair must sum to 1 or the overall score leaves [0, 1].
	if !sumsToOne(w.Title, w.Artist) {
		return fmt.Errorf("weights.title + weights.artist must equal 1.0, got %.2f", w.Title+w.Artist)
	}
	if !sumsToOne(w.TitleArtist, w.Duration) {
		return fmt.Errorf("weights.title_artist + weights.duration must equal 1.0, got %.2f", w.TitleArtist+w.Duration)
	}

	return nil
}

func sumsToOne(a, b float64) bool {
	return math.Abs(a+b-1) <= 1e-9
}
