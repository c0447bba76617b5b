/*
Package config resolves wordgrep's paths and limits.

Resolution order for every value: command-line flag, then environment,
then TOML file, then built-in default. The environment names DICT_PATH
and CHAR_FREQ_PATH override the word source and frequency file paths.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordgrep/internal/utils"
)

// DefaultDictPath is the conventional system word list.
const DefaultDictPath = "/usr/share/dict/words"

// DefaultFreqName is the frequency file created next to the caller.
const DefaultFreqName = "char.freq"

// Config holds the entire config structure.
type Config struct {
	Paths  PathsConfig  `toml:"paths"`
	Server ServerConfig `toml:"server"`
}

// PathsConfig locates the word source and the persisted frequency file.
type PathsConfig struct {
	Dictionary string `toml:"dictionary"`
	Frequency  string `toml:"frequency"`
}

// ServerConfig has serve-mode options.
type ServerConfig struct {
	MaxLimit int `toml:"max_limit"`
}

// DefaultConfig returns a Config with built-in defaults. The frequency
// file defaults to the working directory.
func DefaultConfig() *Config {
	freqPath := DefaultFreqName
	if cwd, err := os.Getwd(); err == nil {
		freqPath = filepath.Join(cwd, DefaultFreqName)
	}
	return &Config{
		Paths: PathsConfig{
			Dictionary: DefaultDictPath,
			Frequency:  freqPath,
		},
		Server: ServerConfig{
			MaxLimit: 64,
		},
	}
}

// ApplyEnv overlays environment overrides onto c.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DICT_PATH"); v != "" {
		c.Paths.Dictionary = v
	}
	if v := os.Getenv("CHAR_FREQ_PATH"); v != "" {
		c.Paths.Frequency = v
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordgrep
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	return filepath.Join(homeDir, ".config", "wordgrep"), nil
}

// DefaultConfigPath returns the default path for config.toml.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig loads from a TOML file, layered over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitConfig loads config from file or creates a default one if missing.
// Config trouble is never fatal; the built-in defaults always apply.
func InitConfig(path string) *Config {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using built-in defaults...", path, err)
		return DefaultConfig()
	}
	if !utils.FileExists(path) {
		cfg := DefaultConfig()
		if err := utils.SaveTOMLFile(cfg, path); err != nil {
			log.Warnf("Failed to create default config at %s: %v. Using built-in defaults...", path, err)
			return DefaultConfig()
		}
		log.Debugf("Created default config file at: %s", path)
		return cfg
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", path, err)
		return DefaultConfig()
	}
	return cfg
}

// Resolve loads configuration with priority:
// 1. Custom path from --config
// 2. Default path under the user config dir
// 3. Built-in defaults
// Environment overrides are applied on top in every case.
func Resolve(customPath string) *Config {
	var cfg *Config
	switch {
	case customPath != "":
		loaded, err := LoadConfig(customPath)
		if err != nil {
			log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", customPath, err)
			cfg = DefaultConfig()
		} else {
			log.Debugf("Loaded config from: %s", customPath)
			cfg = loaded
		}
	default:
		path, err := DefaultConfigPath()
		if err != nil {
			log.Warnf("Failed to determine config path: %v. Using built-in defaults...", err)
			cfg = DefaultConfig()
		} else if utils.FileExists(path) {
			cfg = InitConfig(path)
		} else {
			cfg = DefaultConfig()
		}
	}
	cfg.ApplyEnv()
	return cfg
}
