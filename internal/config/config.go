// Package config loads symscrape settings from the environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ochairo/symscrape/internal/domain/entities"
)

// ErrMissingSearchPath is returned when the environment variable backing a search path set is not set
var ErrMissingSearchPath = errors.New("search path environment variable is not set")

// Environment variables holding the platform search paths
const (
	LibraryPathEnv    = "LIB"
	ExecutablePathEnv = "PATH"
)

// Config holds runtime settings
type Config struct {
	// OutputDir receives symbols_{obj,lib,dll}.yaml
	OutputDir string `mapstructure:"output_dir"`
	// Tool is the inspection executable
	Tool string `mapstructure:"tool"`
	// ToolTimeout bounds each inspection; zero waits indefinitely
	ToolTimeout time.Duration `mapstructure:"tool_timeout"`
	LogLevel    string        `mapstructure:"log_level"`
	Quiet       bool          `mapstructure:"quiet"`

	libraryPath    *string
	executablePath *string
}

// Default returns the built-in defaults
func Default() *Config {
	return &Config{
		OutputDir: "index",
		Tool:      "dumpbin",
		LogLevel:  "info",
	}
}

// Load reads .env (if present) and SYMSCRAPE_* variables over the defaults
func Load() (*Config, error) {
	// A missing .env file is normal
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SYMSCRAPE")
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if v.IsSet("library_path") {
		lib := v.GetString("library_path")
		cfg.libraryPath = &lib
	}
	if v.IsSet("executable_path") {
		path := v.GetString("executable_path")
		cfg.executablePath = &path
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// envBindings maps each setting to its variable; an empty name means SYMSCRAPE_<KEY>
var envBindings = []struct {
	key string
	env string
}{
	{key: "output_dir"},
	{key: "tool"},
	{key: "tool_timeout"},
	{key: "log_level"},
	{key: "quiet"},
	{key: "library_path", env: LibraryPathEnv},
	{key: "executable_path", env: ExecutablePathEnv},
}

func bindEnv(v *viper.Viper) error {
	for _, b := range envBindings {
		input := []string{b.key}
		if b.env != "" {
			input = append(input, b.env)
		}
		if err := v.BindEnv(input...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b.key, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("tool", defaults.Tool)
	v.SetDefault("tool_timeout", defaults.ToolTimeout)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("quiet", defaults.Quiet)
}

// Validate checks that settings are usable
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}
	if strings.TrimSpace(cfg.Tool) == "" {
		return fmt.Errorf("tool cannot be empty")
	}
	if cfg.ToolTimeout < 0 {
		return fmt.Errorf("tool_timeout cannot be negative: %v", cfg.ToolTimeout)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error: got %q", cfg.LogLevel)
	}
	return nil
}

// WithSearchPaths returns a copy of cfg using explicit search path lists
// (in platform list-separator form) instead of the process environment
func (c *Config) WithSearchPaths(libraryPath, executablePath string) *Config {
	out := *c
	out.libraryPath = &libraryPath
	out.executablePath = &executablePath
	return &out
}

// SearchDirs returns the directories an artifact class is looked for in.
// Empty list entries are dropped.
func (c *Config) SearchDirs(set entities.SearchPathSet) ([]string, error) {
	var raw *string
	var env string
	switch set {
	case entities.LibraryPaths:
		raw, env = c.libraryPath, LibraryPathEnv
	case entities.ExecutablePaths:
		raw, env = c.executablePath, ExecutablePathEnv
	default:
		return nil, fmt.Errorf("unknown search path set: %s", set)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingSearchPath, env)
	}
	return SplitSearchPath(*raw), nil
}

// SplitSearchPath splits a list in platform form (';' on Windows, ':' elsewhere), dropping empty entries
func SplitSearchPath(list string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(list) {
		if dir == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}
