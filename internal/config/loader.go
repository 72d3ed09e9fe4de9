package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no config file was found.
const SourceEmbedded = "embedded"

// localPath is checked relative to the working directory.
var localPath = filepath.Join("configs", "pipebird.yaml")

// Skipped is a config file that exists but could not be used.
type Skipped struct {
	Path string
	Err  error
}

// Result is what Load found: the config, the file it came from and the
// files it passed over on the way.
type Result struct {
	Config  Config
	Source  string
	Skipped []Skipped
}

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.pipebird/config.yaml -> ./configs/pipebird.yaml -> embedded default.
// Only a broken customPath is an error. Files further down the chain that
// exist but cannot be read or parsed are listed in Result.Skipped; missing
// files are not.
func Load(customPath string) (Result, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Result{Config: cfg, Source: customPath}, err
		}
		return Result{Config: cfg, Source: customPath}, nil
	}

	var res Result
	for _, path := range []string{userConfigPath(), localPath} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if err == nil {
			res.Config = cfg
			res.Source = path
			return res, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			res.Skipped = append(res.Skipped, Skipped{Path: path, Err: err})
		}
	}

	res.Source = SourceEmbedded
	cfg, err := Parse(defaultYAML)
	if err != nil {
		res.Config = Default() // Fallback to hardcoded if embed fails
		return res, nil
	}
	res.Config = cfg
	return res, nil
}

// loadFile reads, parses and validates a single config file.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default, so omitted keys keep their defaults,
// and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Encode renders cfg as YAML.
func Encode(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pipebird", "config.yaml")
}
