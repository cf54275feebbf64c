package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mwiater/hkomcp/internal/adapter"
)

// SummarySeparator joins the blocks of a prose summary.
const SummarySeparator = "\n---\n"

// rhrreadResponse defines the fields we need from the current weather report.
type rhrreadResponse struct {
	Temperature struct {
		Data       []reading `json:"data"`
		RecordTime string    `json:"recordTime"`
	} `json:"temperature"`
	Humidity struct {
		Data       []reading `json:"data"`
		RecordTime string    `json:"recordTime"`
	} `json:"humidity"`
}

type reading struct {
	Place string      `json:"place"`
	Value json.Number `json:"value"`
	Unit  string      `json:"unit"`
}

func (r reading) block(description string) string {
	return fmt.Sprintf("place:%s\nvalue:%s\nunit:%s\ndescription:%s", r.Place, r.Value, r.Unit, description)
}

// CurrentWeather is the prose rendering of the current weather report.
func CurrentWeather() adapter.Descriptor {
	d := Rhrread()
	d.Name = "current-weather"
	d.Description = "Get the current weather of Hong Kong: the temperature in each district followed by the overall relative humidity, as plain text blocks."
	d.Summarize = SummarizeCurrentWeather
	return d
}

// SummarizeCurrentWeather renders each district temperature and then the first
// humidity reading, separated by SummarySeparator. Missing sections are skipped.
func SummarizeCurrentWeather(body []byte) (string, error) {
	var raw rhrreadResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("decode current weather: %w", err)
	}

	blocks := make([]string, 0, len(raw.Temperature.Data)+1)
	for _, temp := range raw.Temperature.Data {
		blocks = append(blocks, temp.block("district temperature"))
	}
	if len(raw.Humidity.Data) > 0 {
		blocks = append(blocks, raw.Humidity.Data[0].block("overall humidity of hong kong"))
	}
	return strings.Join(blocks, SummarySeparator), nil
}
