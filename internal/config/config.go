// Package config resolves castqc settings from defaults, an optional YAML
// file, CASTQC_* environment variables and command-line flags, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	DBPath         string `yaml:"db_path"`
	ListsPath      string `yaml:"lists_path"`
	LogFile        string `yaml:"log_file"`
	LogLevel       string `yaml:"log_level"`
	ClearOnSuccess bool   `yaml:"clear_on_success"`
}

// DefaultConfig places every file under dir.
func DefaultConfig(dir string) Config {
	return Config{
		DBPath:         filepath.Join(dir, "castings.db"),
		ListsPath:      filepath.Join(dir, "lists.json"),
		LogFile:        filepath.Join(dir, "castqc.log"),
		LogLevel:       "info",
		ClearOnSuccess: true,
	}
}

// HomeDir is ~/.castqc.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".castqc"), nil
}

// Load reads the YAML file at path over DefaultConfig(dir) and applies
// environment overrides. An empty path falls back to CASTQC_CONFIG and then
// to dir/config.yaml; a missing file is not an error.
func Load(dir, path string) (Config, error) {
	cfg := DefaultConfig(dir)

	if path == "" {
		path = os.Getenv("CASTQC_CONFIG")
	}
	if path == "" {
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CASTQC_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CASTQC_LISTS"); v != "" {
		cfg.ListsPath = v
	}
	if v := os.Getenv("CASTQC_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("CASTQC_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CASTQC_CLEAR_ON_SUCCESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ClearOnSuccess = b
		}
	}
}

// Flags are the persistent command-line overrides.
type Flags struct {
	ConfigPath string
	DBPath     string
	ListsPath  string
	Verbose    bool
}

// Register binds the flags to set.
func (f *Flags) Register(set *pflag.FlagSet) {
	set.StringVar(&f.ConfigPath, "config", "", "config file (default ~/.castqc/config.yaml)")
	set.StringVar(&f.DBPath, "db", "", "inspection database path")
	set.StringVar(&f.ListsPath, "lists", "", "pick-list file path")
	set.BoolVarP(&f.Verbose, "verbose", "v", false, "debug logging")
}

// Apply overlays explicitly set flags onto cfg.
func (f Flags) Apply(cfg *Config) {
	if f.DBPath != "" {
		cfg.DBPath = f.DBPath
	}
	if f.ListsPath != "" {
		cfg.ListsPath = f.ListsPath
	}
	if f.Verbose {
		cfg.LogLevel = "debug"
	}
}
