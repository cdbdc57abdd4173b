package config

import (
	"os"

	"github.com/dustin/go-humanize"
)

// FromEnv overlays SNIP_* environment variables onto cfg. Size variables
// accept either bare byte counts or humanized strings ("64KiB").
func FromEnv(cfg *Config) {
	if v := os.Getenv("SNIP_BLOCK_SIZE"); v != "" {
		if n, err := humanize.ParseBytes(v); err == nil && n > 0 {
			cfg.BlockSize = ByteSize(n)
		}
	}
	if v := os.Getenv("SNIP_STREAM_THRESHOLD"); v != "" {
		if n, err := humanize.ParseBytes(v); err == nil && n > 0 {
			cfg.StreamThreshold = ByteSize(n)
		}
	}
	if v := os.Getenv("SNIP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SNIP_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
