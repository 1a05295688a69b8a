/*
Package config manages TOML config for wordsieve.
*/
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordsieve/wordsieve/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Dict       DictConfig       `toml:"dict"`
	Distracter DistracterConfig `toml:"distracter"`
	Keyboard   KeyboardConfig   `toml:"keyboard"`
	Server     ServerConfig     `toml:"server"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	DataDir         string `toml:"data_dir"`
	LoadTimeoutSecs int    `toml:"load_timeout_secs"`
}

// DistracterConfig holds decision-engine options.
type DistracterConfig struct {
	ScoreThreshold      float64 `toml:"score_threshold"`
	SuggestionTimeoutMs int     `toml:"suggestion_timeout_ms"`
}

// KeyboardConfig holds the default keyboard dimensions used when no
// display metrics are available.
type KeyboardConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxWordLength int `toml:"max_word_length"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			DataDir:         "data",
			LoadTimeoutSecs: 120,
		},
		Distracter: DistracterConfig{
			ScoreThreshold:      2.0,
			SuggestionTimeoutMs: 200,
		},
		Keyboard: KeyboardConfig{
			Width:  480,
			Height: 180,
		},
		Server: ServerConfig{
			MaxWordLength: 48,
		},
	}
}

// LoadTimeout returns the dictionary load wait as a duration.
func (c *Config) LoadTimeout() time.Duration {
	return time.Duration(c.Dict.LoadTimeoutSecs) * time.Second
}

// SuggestionTimeout returns the bounded suggestion wait as a duration.
func (c *Config) SuggestionTimeout() time.Duration {
	return time.Duration(c.Distracter.SuggestionTimeoutMs) * time.Millisecond
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordsieve
// 2. Current executable dir
// 3. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	return filepath.Join(homeDir, ".config", "wordsieve"), nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/wordsieve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, falling back to defaults for any
// values the file does not set.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		log.Warnf("Could not parse configuration from %s: %v. Using all defaults.", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
