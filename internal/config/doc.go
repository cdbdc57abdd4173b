// Package config provides loading and environment overlay for snip's
// configuration. It exposes a Default() baseline, Load() for YAML or JSON
// files (by extension), and FromEnv() to overlay SNIP_* variables.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load(config.DefaultConfigPath()); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
