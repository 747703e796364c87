// Package config loads ghprofile settings from a TOML file and the
// environment.
//
// Precedence, lowest first: built-in defaults, the config file, environment
// variables, command-line flags. Flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ghprofile/pkg/buildinfo"
	"github.com/matzehuels/ghprofile/pkg/integrations/github"
)

const (
	// AppName is used for the config directory.
	AppName = "ghprofile"

	// FileName is the config file inside the config directory.
	FileName = "config.toml"

	// DefaultListen is the address `ghprofile serve` binds to.
	DefaultListen = "127.0.0.1:8080"
)

// Environment variables that override file values.
const (
	EnvAPIURL  = "GHPROFILE_API_URL"
	EnvListen  = "GHPROFILE_LISTEN"
	EnvTimeout = "GHPROFILE_TIMEOUT"
)

// Config holds all runtime settings.
type Config struct {
	// APIURL is the root of the GitHub REST API.
	APIURL string `toml:"api_url"`

	// Listen is the HTTP server address.
	Listen string `toml:"listen"`

	// Timeout bounds each outgoing API request. Zero disables it.
	Timeout Duration `toml:"timeout"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `toml:"user_agent"`
}

// Duration is a time.Duration that decodes from strings such as "10s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIURL:    github.DefaultBaseURL,
		Listen:    DefaultListen,
		UserAgent: buildinfo.UserAgent(),
	}
}

// Dir returns the config directory using XDG standard (~/.config/ghprofile/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads path over the defaults and applies environment overrides. An
// empty path means the default location; a missing file at the default
// location is not an error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.APIURL = v
	}
	if v, ok := lookup(EnvListen); ok && v != "" {
		c.Listen = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		if err := c.Timeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return "", err
	}
	return b.String(), nil
}
