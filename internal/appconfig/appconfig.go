// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/mwiater/hkomcp/internal/adapter"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the config file location used before config/ existed.
	legacyConfigPath = "hkomcp.json"
	// defaultAddr is where the HTTP transport listens when none is configured.
	defaultAddr = "127.0.0.1:8080"

	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config represents the top-level application configuration.
type Config struct {
	Debug            bool   `json:"debug" mapstructure:"debug"`
	LogFile          string `json:"logFile,omitempty" mapstructure:"logFile"`
	Transport        string `json:"transport,omitempty" mapstructure:"transport"`
	Addr             string `json:"addr,omitempty" mapstructure:"addr"`
	Language         string `json:"language,omitempty" mapstructure:"language"`
	UserAgent        string `json:"userAgent,omitempty" mapstructure:"userAgent"`
	TimeoutSeconds   int    `json:"timeout,omitempty" mapstructure:"timeout"`
	WeatherBaseURL   string `json:"weatherBaseURL,omitempty" mapstructure:"weatherBaseURL"`
	TransportBaseURL string `json:"transportBaseURL,omitempty" mapstructure:"transportBaseURL"`
	Metrics          bool   `json:"metrics" mapstructure:"metrics"`
	ConfigPath       string `json:"-" mapstructure:"-"`
}

// RequestTimeout returns the upstream call timeout, falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return adapter.DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogFilePath returns the path to the log file. Empty means stderr only.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// TransportMode returns the MCP transport, stdio unless configured otherwise.
func (c Config) TransportMode() string {
	if t := strings.ToLower(strings.TrimSpace(c.Transport)); t != "" {
		return t
	}
	return TransportStdio
}

// ListenAddr returns the HTTP listen address.
func (c Config) ListenAddr() string {
	if a := strings.TrimSpace(c.Addr); a != "" {
		return a
	}
	return defaultAddr
}

// AdapterSettings builds the immutable pipeline settings.
func (c Config) AdapterSettings() adapter.Settings {
	return adapter.Settings{
		UserAgent:        strings.TrimSpace(c.UserAgent),
		Language:         strings.TrimSpace(c.Language),
		WeatherBaseURL:   strings.TrimSpace(c.WeatherBaseURL),
		TransportBaseURL: strings.TrimSpace(c.TransportBaseURL),
		Timeout:          c.RequestTimeout(),
	}.WithDefaults()
}

// Validate rejects configurations the server cannot run with.
func (c Config) Validate() error {
	switch c.TransportMode() {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("invalid configuration: transport must be %q or %q, got %q", TransportStdio, TransportHTTP, c.Transport)
	}
	if lang := strings.TrimSpace(c.Language); lang != "" && !slices.Contains(adapter.Languages, lang) {
		return fmt.Errorf("invalid configuration: language must be one of %s, got %q", strings.Join(adapter.Languages, ", "), lang)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid configuration: timeout must not be negative")
	}
	return nil
}

// Load reads the application configuration from the specified path, with fallback to a legacy path.
// A missing default file is not an error; the zero configuration is valid.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, config.Validate()
	}
	if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if explicit {
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	config, legacyErr := loadFromPath(legacyConfigPath)
	switch {
	case legacyErr == nil:
		config.ConfigPath = legacyConfigPath
		return config, config.Validate()
	case errors.Is(legacyErr, os.ErrNotExist):
		return Config{}, nil
	default:
		return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
	}
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
