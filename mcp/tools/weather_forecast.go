package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mwiater/hkomcp/internal/adapter"
)

type flwResponse struct {
	GeneralSituation  string `json:"generalSituation"`
	TCInfo            string `json:"tcInfo"`
	FireDangerWarning string `json:"fireDangerWarning"`
	ForecastPeriod    string `json:"forecastPeriod"`
	ForecastDesc      string `json:"forecastDesc"`
	Outlook           string `json:"outlook"`
	UpdateTime        string `json:"updateTime"`
}

// WeatherForecast is the prose rendering of the local weather forecast.
func WeatherForecast() adapter.Descriptor {
	d := Flw()
	d.Name = "weather-forecast"
	d.Description = "Get the local weather forecast of Hong Kong as labelled text sections: general situation, tropical cyclone information, fire danger warning, forecast period, forecast, outlook and update time."
	d.Summarize = SummarizeForecast
	return d
}

// SummarizeForecast renders the seven forecast sections in fixed order, skipping empty ones.
func SummarizeForecast(body []byte) (string, error) {
	var raw flwResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("decode forecast: %w", err)
	}

	sections := []struct{ label, value string }{
		{"General situation", raw.GeneralSituation},
		{"Tropical cyclone information", raw.TCInfo},
		{"Fire danger warning", raw.FireDangerWarning},
		{"Forecast period", raw.ForecastPeriod},
		{"Forecast", raw.ForecastDesc},
		{"Outlook", raw.Outlook},
		{"Update time", raw.UpdateTime},
	}

	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if strings.TrimSpace(s.value) == "" {
			continue
		}
		parts = append(parts, s.label+":\n"+s.value)
	}
	return strings.Join(parts, SummarySeparator), nil
}
