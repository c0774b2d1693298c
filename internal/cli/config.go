package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults loaded from the TOML config file. Every field
// can be overridden per invocation by the matching command flag.
type Config struct {
	// Slots is the default column count for layouts that do not carry one.
	Slots int `toml:"slots"`

	// Compaction is the default strategy name (vertical, horizontal,
	// fast-vertical, fast-horizontal, none).
	Compaction string `toml:"compaction"`

	// CacheDir overrides the XDG cache directory for file-backed results.
	CacheDir string `toml:"cache_dir"`

	// RedisAddr switches the result cache to Redis when set (host:port).
	RedisAddr string `toml:"redis_addr"`

	// MongoURI switches the serve command's layout store to MongoDB when set.
	MongoURI string `toml:"mongo_uri"`

	// Listen is the serve command's bind address.
	Listen string `toml:"listen"`
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Slots:      12,
		Compaction: "vertical",
		Listen:     ":8080",
	}
}

// LoadConfig reads the config file at configPath, layering file values over
// the defaults. A missing file is not an error; a malformed one is.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), err
	}
	if cfg.Slots <= 0 {
		cfg.Slots = DefaultConfig().Slots
	}
	return cfg, nil
}

// configPath returns the config file location using the XDG standard
// (~/.config/gridkit/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
