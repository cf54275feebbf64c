// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}
	return tmpfile.Name()
}

// TestLoad verifies that a valid file loads with defaults applied through the
// accessors, and that invalid JSON, bad values and missing explicit files fail.
func TestLoad(t *testing.T) {
	path := writeTemp(t, `{"language": "tc", "transport": "http", "addr": ":9090"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected config path %s, got %s", path, cfg.ConfigPath)
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Fatalf("expected default request timeout of 10s, got %v", cfg.RequestTimeout())
	}
	if cfg.TransportMode() != TransportHTTP || cfg.ListenAddr() != ":9090" {
		t.Fatalf("unexpected transport settings: %s %s", cfg.TransportMode(), cfg.ListenAddr())
	}

	settings := cfg.AdapterSettings()
	if settings.Language != "tc" {
		t.Fatalf("expected language tc, got %s", settings.Language)
	}
	if settings.UserAgent != "weather-app/1.0" {
		t.Fatalf("expected default user agent, got %s", settings.UserAgent)
	}

	if _, err := Load(writeTemp(t, `{ "language": `)); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}
	if _, err := Load(writeTemp(t, `{ "language": "fr" }`)); err == nil {
		t.Fatal("Load() with unknown language should have failed")
	}
	if _, err := Load(writeTemp(t, `{ "transport": "grpc" }`)); err == nil {
		t.Fatal("Load() with unknown transport should have failed")
	}
	if _, err := Load("nonexistent.json"); err == nil {
		t.Fatal("Load() with nonexistent file should have failed")
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	if cfg.TransportMode() != TransportStdio {
		t.Fatalf("expected stdio default, got %s", cfg.TransportMode())
	}
	if cfg.ListenAddr() != "127.0.0.1:8080" {
		t.Fatalf("expected default addr, got %s", cfg.ListenAddr())
	}
	if cfg.LogFilePath() != "" {
		t.Fatalf("expected no log file by default, got %s", cfg.LogFilePath())
	}
	cfg.TimeoutSeconds = 3
	if cfg.AdapterSettings().Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %v", cfg.AdapterSettings().Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero config should validate: %v", err)
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", nil, Config{Debug: true})
	out := buf.String()
	for _, want := range []string{
		"No config file loaded",
		"Debug:           true",
		"Transport:       stdio",
		"User Agent:      weather-app/1.0",
		"Weather API:     https://data.weather.gov.hk/weatherAPI/opendata/",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %s", want, out)
		}
	}

	buf.Reset()
	ShowConfig(&buf, "config/config.json", &Config{Transport: "http", Metrics: true}, Config{})
	if !strings.Contains(buf.String(), "Config file: config/config.json") || !strings.Contains(buf.String(), "Metrics:         true") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}
