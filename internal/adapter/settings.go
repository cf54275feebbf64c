package adapter

import (
	"strings"
	"time"
)

const (
	DefaultUserAgent        = "weather-app/1.0"
	DefaultWeatherBaseURL   = "https://data.weather.gov.hk/weatherAPI/opendata/"
	DefaultTransportBaseURL = "https://siri-shortcut-hk-bus-eta.pages.dev/api/"
	DefaultTimeout          = 10 * time.Second
)

// Languages accepted by the Observatory endpoints.
var Languages = []string{"en", "tc", "sc"}

// Settings is the immutable configuration injected into a Pipeline.
type Settings struct {
	UserAgent        string
	Language         string
	WeatherBaseURL   string
	TransportBaseURL string
	Timeout          time.Duration
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{}.WithDefaults()
}

// WithDefaults fills every empty field with its default.
func (s Settings) WithDefaults() Settings {
	if strings.TrimSpace(s.UserAgent) == "" {
		s.UserAgent = DefaultUserAgent
	}
	if strings.TrimSpace(s.Language) == "" {
		s.Language = "en"
	}
	if strings.TrimSpace(s.WeatherBaseURL) == "" {
		s.WeatherBaseURL = DefaultWeatherBaseURL
	}
	if strings.TrimSpace(s.TransportBaseURL) == "" {
		s.TransportBaseURL = DefaultTransportBaseURL
	}
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeout
	}
	return s
}

func (s Settings) baseURL(b Base) string {
	if b == BaseTransport {
		return s.TransportBaseURL
	}
	return s.WeatherBaseURL
}
