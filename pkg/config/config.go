/*
Package config manages the TOML runtime config for the splitter tools.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/Acidburn0zzz/jwordsplitter/pkg/splitter"
)

// Config holds the entire config structure.
type Config struct {
	Lexicon  LexiconConfig  `toml:"lexicon"`
	Splitter SplitterConfig `toml:"splitter"`
}

// LexiconConfig holds word list options.
type LexiconConfig struct {
	Path                 string   `toml:"path"`
	MinWordLength        int      `toml:"min_word_length"`
	ConnectingCharacters []string `toml:"connecting_characters"`
}

// SplitterConfig holds splitting policy options.
type SplitterConfig struct {
	StrictMode               bool `toml:"strict_mode"`
	HideConnectingCharacters bool `toml:"hide_connecting_characters"`
	Cache                    bool `toml:"cache"`
}

// DefaultConfig returns the built-in defaults (German dictionary shipped
// with the repository).
func DefaultConfig() *Config {
	return &Config{
		Lexicon: LexiconConfig{
			Path:                 "dictionaries/de_compound_parts.txt",
			MinWordLength:        splitter.GermanMinWordLength,
			ConnectingCharacters: splitter.GermanConnectingCharacters(),
		},
		Splitter: SplitterConfig{
			StrictMode:               false,
			HideConnectingCharacters: true,
			Cache:                    true,
		},
	}
}

// LoadConfig reads a config file from the given path.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to the given path.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(cfg)
}

// InitConfig loads the config at path, creating it with defaults first if
// it does not exist.
func InitConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveConfig(path, DefaultConfig()); err != nil {
			return nil, err
		}
		log.Debugf("created default config at %s", path)
	}
	return LoadConfig(path)
}

// GetDefaultConfigPath returns the default location of config.toml.
func GetDefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "jwordsplitter", "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/jwordsplitter/config.toml (if present)
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		cfg, err := LoadConfig(customConfigPath)
		if err != nil {
			log.Warnf("Failed to load config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Debugf("Loaded config from custom path: %s", customConfigPath)
			return cfg, customConfigPath, nil
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using builtin defaults...", err)
		return DefaultConfig(), "", nil
	}
	if _, err := os.Stat(defaultPath); err != nil {
		return DefaultConfig(), "", nil
	}

	cfg, err := LoadConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}
