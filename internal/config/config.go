package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// ByteSize is a byte count that unmarshals from either a bare integer or a
// human-readable size string ("64 KiB", "1MB").
type ByteSize int

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *ByteSize) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		var n int
		if err := value.Decode(&n); err != nil {
			return err
		}
		*s = ByteSize(n)
		return nil
	}
	return s.parse(raw)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *ByteSize) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		var n int
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*s = ByteSize(n)
		return nil
	}
	return s.parse(raw)
}

func (s *ByteSize) parse(raw string) error {
	n, err := humanize.ParseBytes(raw)
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", raw, err)
	}
	*s = ByteSize(n)
	return nil
}

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// BlockSize is the I/O chunk size used by the engine.
	BlockSize ByteSize `json:"blockSize" yaml:"blockSize"`
	// StreamThreshold is the elision count at which the streaming byte
	// engine switches from the double-buffer to the block ring.
	StreamThreshold ByteSize `json:"streamThreshold" yaml:"streamThreshold"`
	LogLevel        string   `json:"logLevel" yaml:"logLevel"`
	LogFormat       string   `json:"logFormat" yaml:"logFormat"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		BlockSize:       8 << 10,
		StreamThreshold: 1 << 20,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load reads configuration from a YAML or JSON file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
