// Package config loads the speller configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milden6/dictionary"
)

// Supported text encodings.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
)

// Config represents the complete speller configuration.
type Config struct {
	Version    int              `yaml:"version" json:"version"`
	Dictionary DictionaryConfig `yaml:"dictionary" json:"dictionary"`
	Checker    CheckerConfig    `yaml:"checker" json:"checker"`
	Logging    LoggingConfig    `yaml:"logging" json:"logging"`
}

// DictionaryConfig configures the word list and the trie built from it.
type DictionaryConfig struct {
	// Path is the word list to load.
	Path string `yaml:"path" json:"path"`
	// MaxWordLength is the longest word accepted (default: 45).
	MaxWordLength int `yaml:"max_word_length" json:"max_word_length"`
	// MaxNodes bounds the trie size; 0 means unlimited.
	MaxNodes int `yaml:"max_nodes" json:"max_nodes"`
}

// CheckerConfig configures how documents are checked.
type CheckerConfig struct {
	// CacheSize is the number of verdicts cached; 0 disables the cache.
	CacheSize int `yaml:"cache_size" json:"cache_size"`
	// Workers is the number of documents checked at once.
	Workers int `yaml:"workers" json:"workers"`
	// Encoding of the documents: utf-8 or latin1.
	Encoding string `yaml:"encoding" json:"encoding"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file" json:"file"`
}

// NewConfig creates a new Config with defaults.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Dictionary: DictionaryConfig{
			Path:          filepath.Join("dictionaries", "large"),
			MaxWordLength: dictionary.MaxWordLength,
			MaxNodes:      0,
		},
		Checker: CheckerConfig{
			CacheSize: 4096,
			Workers:   runtime.NumCPU(),
			Encoding:  EncodingUTF8,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "auto",
			File:   "",
		},
	}
}

// GetUserConfigPath returns the path to the user configuration file:
//   - $XDG_CONFIG_HOME/speller/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/speller/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "speller", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "speller", "config.yaml")
	}
	return filepath.Join(home, ".config", "speller", "config.yaml")
}

// Load loads configuration for the given directory. It applies configuration
// in order of increasing precedence:
//  1. Hardcoded defaults
//  2. User config (~/.config/speller/config.yaml)
//  3. Project config (.speller.yaml in dir)
//  4. Environment variables (SPELLER_*)
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	userPath := GetUserConfigPath()
	if fileExists(userPath) {
		if err := cfg.loadYAML(userPath); err != nil {
			return nil, fmt.Errorf("failed to load user config: %w", err)
		}
	}

	if err := cfg.loadFromFile(dir); err != nil {
		return nil, err
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads .speller.yaml or, failing that, .speller.yml from dir.
func (c *Config) loadFromFile(dir string) error {
	for _, name := range []string{".speller.yaml", ".speller.yml"} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return c.loadYAML(path)
		}
	}
	return nil
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.Version != 0 {
		c.Version = other.Version
	}

	if other.Dictionary.Path != "" {
		c.Dictionary.Path = other.Dictionary.Path
	}
	if other.Dictionary.MaxWordLength != 0 {
		c.Dictionary.MaxWordLength = other.Dictionary.MaxWordLength
	}
	if other.Dictionary.MaxNodes != 0 {
		c.Dictionary.MaxNodes = other.Dictionary.MaxNodes
	}

	if other.Checker.CacheSize != 0 {
		c.Checker.CacheSize = other.Checker.CacheSize
	}
	if other.Checker.Workers != 0 {
		c.Checker.Workers = other.Checker.Workers
	}
	if other.Checker.Encoding != "" {
		c.Checker.Encoding = other.Checker.Encoding
	}

	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
	if other.Logging.Format != "" {
		c.Logging.Format = other.Logging.Format
	}
	if other.Logging.File != "" {
		c.Logging.File = other.Logging.File
	}
}

// applyEnvOverrides applies SPELLER_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SPELLER_DICTIONARY"); v != "" {
		c.Dictionary.Path = v
	}
	if v := os.Getenv("SPELLER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SPELLER_CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SPELLER_CACHE_SIZE %q: %w", v, err)
		}
		c.Checker.CacheSize = n
	}
	if v := os.Getenv("SPELLER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SPELLER_WORKERS %q: %w", v, err)
		}
		c.Checker.Workers = n
	}
	return nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	var errs []string

	if c.Dictionary.Path == "" {
		errs = append(errs, "dictionary.path must not be empty")
	}
	if c.Dictionary.MaxWordLength < 1 {
		errs = append(errs, fmt.Sprintf("dictionary.max_word_length must be positive, got %d", c.Dictionary.MaxWordLength))
	}
	if c.Dictionary.MaxNodes < 0 {
		errs = append(errs, fmt.Sprintf("dictionary.max_nodes must not be negative, got %d", c.Dictionary.MaxNodes))
	}
	if c.Checker.CacheSize < 0 {
		errs = append(errs, fmt.Sprintf("checker.cache_size must not be negative, got %d", c.Checker.CacheSize))
	}
	if c.Checker.Workers < 1 {
		errs = append(errs, fmt.Sprintf("checker.workers must be at least 1, got %d", c.Checker.Workers))
	}
	switch strings.ToLower(c.Checker.Encoding) {
	case EncodingUTF8, "utf8", EncodingLatin1, "iso-8859-1":
	default:
		errs = append(errs, fmt.Sprintf("checker.encoding must be %s or %s, got %q", EncodingUTF8, EncodingLatin1, c.Checker.Encoding))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "auto", "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be auto, json or text, got %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
