package conf

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPath      = "/etc/settings/config.toml"
	DefaultDropInDir = "/etc/settings/config.toml.d/"
)

func init() {
	sources := &ConfigSource{
		Path:      DefaultPath,
		DropInDir: DefaultDropInDir,
	}
	config, err := sources.Read()
	if err != nil {
		slog.Warn("falling back to built-in configuration", "error", err)
		config = Builtin()
	}
	Configuration = config
}

// defaultConfig is the base layer applied before any file on disk.
//
//go:embed default.toml
var defaultConfig string

// Configuration is the global immutable state.
var Configuration Config

// Config holds the options of the settings tool.
type Config struct {
	Dir      string
	Encoding string
	Profile  string
	LogLevel slog.Level
}

// Builtin returns the configuration described by the embedded defaults.
func Builtin() Config {
	var c Config
	dto, err := parseConfigDTO(defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded defaults: %v", err))
	}
	c.Update(dto)
	return c
}

// Update applies non-nil values from a configDTO.
func (c *Config) Update(dto configDTO) {
	if dto.Dir != nil {
		c.Dir = *dto.Dir
	}
	if dto.Encoding != nil {
		c.Encoding = *dto.Encoding
	}
	if dto.Profile != nil {
		c.Profile = *dto.Profile
	}
	if dto.LogLevel != nil {
		var level slog.Level
		if err := level.UnmarshalText([]byte(*dto.LogLevel)); err == nil {
			c.LogLevel = level
		}
	}
}

// ConfigSource locates the configuration files of the settings tool.
// See the Read method.
type ConfigSource struct {
	Path      string
	DropInDir string
}

// Read merges, in order of increasing precedence:
// 1. Embedded defaults
// 2. Main configuration file (optional)
// 3. Drop-in files, lexicographically
func (cs *ConfigSource) Read() (Config, error) {
	resolved := Builtin()

	layers, err := cs.layers()
	if err != nil {
		return resolved, err
	}
	for _, path := range layers {
		data, err := os.ReadFile(path)
		if err != nil {
			if path == cs.Path && os.IsNotExist(err) {
				continue
			}
			return resolved, fmt.Errorf("failed to load %s: %w", path, err)
		}
		dto, err := parseConfigDTO(string(data))
		if err != nil {
			// A file that exists but does not parse is an error, not a fallback.
			return resolved, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		resolved.Update(dto)
	}

	return resolved, nil
}

// layers returns the main file followed by the sorted drop-in files.
// A missing drop-in directory contributes nothing.
func (cs *ConfigSource) layers() ([]string, error) {
	entries, err := os.ReadDir(cs.DropInDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read drop-in directory %s: %w", cs.DropInDir, err)
	}

	var dropIns []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		dropIns = append(dropIns, filepath.Join(cs.DropInDir, entry.Name()))
	}
	slices.Sort(dropIns)

	return append([]string{cs.Path}, dropIns...), nil
}

type configDTO struct {
	Dir      *string `toml:"dir"`
	Encoding *string `toml:"encoding"`
	Profile  *string `toml:"profile"`
	LogLevel *string `toml:"log-level"`
}

// parseConfigDTO parses a TOML string into a configDTO.
func parseConfigDTO(data string) (configDTO, error) {
	var dto configDTO

	if _, err := toml.Decode(data, &dto); err != nil {
		return dto, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return dto, nil
}
