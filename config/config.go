// Package config loads the editor settings from a TOML file.
package config

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/bulga138/kilo/toml"
)

const (
	defaultQuitKey     = "q"
	defaultReadTimeout = 100 * time.Millisecond
	defaultLogFile     = "kilo.log"

	minReadTimeout = 100 * time.Millisecond
	maxReadTimeout = 25500 * time.Millisecond

	fileName = "config.toml"
	dirName  = "kilo"
)

type Config struct {
	// QuitKey is the letter that, held with Ctrl, quits the session.
	QuitKey string
	// ReadTimeout is the raw read poll interval. It bounds how long the
	// decoder waits for the rest of an escape sequence.
	ReadTimeout  time.Duration
	EnableLogger bool
	LogFile      string
}

func DefaultConfig() Config {
	return Config{
		QuitKey:      defaultQuitKey,
		ReadTimeout:  defaultReadTimeout,
		EnableLogger: false,
		LogFile:      defaultLogFile,
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// LoadConfig reads the config file, falling back to defaults when it is
// missing or invalid.
func LoadConfig() Config {
	path, err := Path()
	if err != nil {
		log.Printf("Using default config: %v", err)
		return DefaultConfig()
	}
	cfg, err := Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Using default config: %v", err)
		}
		return DefaultConfig()
	}
	return cfg
}

// Load reads and validates the config file at path. Keys that are absent
// keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	doc, err := toml.Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := cfg.apply(doc); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) apply(doc toml.Table) error {
	if ed := doc.Sub("editor"); ed != nil {
		if v, ok, err := ed.String("quit_key"); err != nil {
			return err
		} else if ok {
			c.QuitKey = v
		}
		if v, ok, err := ed.Int("read_timeout_ms"); err != nil {
			return err
		} else if ok {
			c.ReadTimeout = time.Duration(v) * time.Millisecond
		}
	}
	if lg := doc.Sub("log"); lg != nil {
		if v, ok, err := lg.Bool("enabled"); err != nil {
			return err
		} else if ok {
			c.EnableLogger = v
		}
		if v, ok, err := lg.String("file"); err != nil {
			return err
		} else if ok {
			c.LogFile = v
		}
	}
	return nil
}

func (c Config) Validate() error {
	if len(c.QuitKey) != 1 || c.QuitKey[0] < 'a' || c.QuitKey[0] > 'z' {
		return fmt.Errorf("quit_key must be a single letter a-z, got %q", c.QuitKey)
	}
	if c.ReadTimeout < minReadTimeout || c.ReadTimeout > maxReadTimeout {
		return fmt.Errorf("read_timeout_ms must be between %d and %d, got %d",
			minReadTimeout.Milliseconds(), maxReadTimeout.Milliseconds(), c.ReadTimeout.Milliseconds())
	}
	if c.EnableLogger && c.LogFile == "" {
		return fmt.Errorf("log file must be set when logging is enabled")
	}
	return nil
}

// SaveConfig writes cfg to the default config location.
func SaveConfig(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return Save(path, cfg)
}

func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	doc := toml.Table{
		"editor": toml.Table{
			"quit_key":        cfg.QuitKey,
			"read_timeout_ms": cfg.ReadTimeout.Milliseconds(),
		},
		"log": toml.Table{
			"enabled": cfg.EnableLogger,
			"file":    cfg.LogFile,
		},
	}
	var buf bytes.Buffer
	if err := toml.Encode(&buf, doc); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
