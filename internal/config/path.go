package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// DefaultConfigPath returns the path of the user's config file, or "" when
// none exists. SNIP_CONFIG overrides the search; otherwise XDG conventions
// apply with a ~/.config fallback.
func DefaultConfigPath() string {
	if v := os.Getenv("SNIP_CONFIG"); v != "" {
		return v
	}

	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "snip"))
	}
	if home, err := homedir.Dir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", "snip"))
	}

	for _, dir := range dirs {
		for _, name := range []string{"config.yaml", "config.yml", "config.json"} {
			p := filepath.Join(dir, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p
			}
		}
	}
	return ""
}
