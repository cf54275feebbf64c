package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		cfg = &fallback
	}
	settings := cfg.AdapterSettings()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Transport:       %s\n", cfg.TransportMode())
	if cfg.TransportMode() == TransportHTTP {
		fmt.Fprintf(out, "  Listen Addr:     %s\n", cfg.ListenAddr())
		fmt.Fprintf(out, "  Metrics:         %v\n", cfg.Metrics)
	}
	fmt.Fprintf(out, "  Log File:        %s\n", valueOr(cfg.LogFilePath(), "(stderr only)"))
	fmt.Fprintf(out, "  Language:        %s\n", settings.Language)
	fmt.Fprintf(out, "  User Agent:      %s\n", settings.UserAgent)
	fmt.Fprintf(out, "  Timeout:         %s\n", settings.Timeout)
	fmt.Fprintf(out, "  Weather API:     %s\n", settings.WeatherBaseURL)
	fmt.Fprintf(out, "  Transport API:   %s\n", settings.TransportBaseURL)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
