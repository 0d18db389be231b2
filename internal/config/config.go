package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"mc-skin-converter/internal/atlasio"
)

// Config holds the settings of a batch conversion run.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir" toml:"input_dir"`
	OutputDir string `json:"output_dir" toml:"output_dir"`

	// Selection and naming
	Pattern   string `json:"pattern" toml:"pattern"`
	Recursive bool   `json:"recursive" toml:"recursive"`
	Suffix    string `json:"suffix" toml:"suffix"`
	Format    string `json:"format" toml:"format"`

	// Run settings
	Workers  int    `json:"workers" toml:"workers"`
	LogLevel string `json:"log_level" toml:"log_level"`
	Color    string `json:"color" toml:"color"`
}

// Defaults applied by Resolve.
const (
	DefaultPattern   = "*.png"
	DefaultSuffix    = "_double"
	DefaultFormat    = "png"
	DefaultLogLevel  = "info"
	DefaultColor     = "auto"
	DefaultOutputSub = "converted"
)

// Load reads a JSON or TOML config file, chosen by extension (.toml, otherwise JSON).
// Relative paths in the file are resolved against the file's directory.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config: parse %s: unknown keys %v", path, undecoded)
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	base := filepath.Dir(path)
	cfg.InputDir = resolvePath(base, cfg.InputDir)
	cfg.OutputDir = resolvePath(base, cfg.OutputDir)
	return cfg, nil
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Pattern != "" {
		c.Pattern = flags.Pattern
	}
	if flags.Recursive {
		c.Recursive = true
	}
	if flags.Suffix != "" {
		c.Suffix = flags.Suffix
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.Color != "" {
		c.Color = flags.Color
	}

	if c.OutputDir == "" && c.InputDir != "" {
		c.OutputDir = filepath.Join(c.InputDir, DefaultOutputSub)
	}
	if c.Pattern == "" {
		c.Pattern = DefaultPattern
	}
	if c.Suffix == "" {
		c.Suffix = DefaultSuffix
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
}

// Validate checks a resolved config.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("config: input directory is required")
	}
	f, err := atlasio.ParseFormat(c.Format)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !f.Writable() {
		return fmt.Errorf("config: %s cannot be used as output format", f)
	}
	return nil
}

// OutputFormat returns the parsed output format, PNG if it does not parse.
func (c Config) OutputFormat() atlasio.Format {
	f, err := atlasio.ParseFormat(c.Format)
	if err != nil {
		return atlasio.PNG
	}
	return f
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir  string
	OutputDir string
	Pattern   string
	Recursive bool
	Suffix    string
	Format    string
	Workers   int
	LogLevel  string
	Color     string
}
