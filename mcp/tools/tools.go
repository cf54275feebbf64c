// Package tools declares the Observatory operation catalogue and registers it
// with the MCP tool registry.
package tools

import (
	"github.com/mwiater/hkomcp/internal/adapter"
)

const (
	weatherPath    = "weather.php"
	earthquakePath = "earthquake.php"
	openDataPath   = "opendata.php"
)

// Catalogue returns every operation descriptor in registration order.
func Catalogue() []adapter.Descriptor {
	return []adapter.Descriptor{
		Fnd(),
		Rhrread(),
		Flw(),
		WarningInfo(),
		Warnsum(),
		Swt(),
		Qem(),
		FeltEarthquake(),
		Hhot(),
		Hlt(),
		Srs(),
		Mrs(),
		LunarDate(),
		HourlyRainfall(),
		Lhl(),
		Ltmv(),
		ClmTemp(),
		ClmMaxT(),
		ClmMinT(),
		Ryes(),
		GetRoute(),
		GetEta(),
		CurrentWeather(),
		WeatherForecast(),
	}
}

// Lookup finds a catalogue descriptor by tool name.
func Lookup(name string) (adapter.Descriptor, bool) {
	for _, d := range Catalogue() {
		if d.Name == name {
			return d, true
		}
	}
	return adapter.Descriptor{}, false
}

func langParam() adapter.Param {
	return adapter.Param{
		Name:        "lang",
		Kind:        adapter.KindString,
		Default:     adapter.DefaultLanguage,
		Enum:        adapter.Languages,
		Description: "Language: en (English), tc (Traditional Chinese) or sc (Simplified Chinese)",
	}
}

func formatParam(def string) adapter.Param {
	return adapter.Param{
		Name:        adapter.FormatParam,
		Kind:        adapter.KindString,
		Default:     def,
		Enum:        []string{adapter.FormatJSON, adapter.FormatCSV},
		Description: "Response format: json or csv (default " + def + ")",
	}
}

func yearParam(lo, hi adapter.Limit, desc string) adapter.Param {
	return adapter.Param{
		Name:        "year",
		Kind:        adapter.KindInteger,
		Required:    true,
		Range:       &adapter.Range{Min: lo, Max: hi},
		Description: desc,
	}
}

func monthParam() adapter.Param {
	return adapter.Param{
		Name:        "month",
		Kind:        adapter.KindInteger,
		Range:       &adapter.Range{Min: adapter.Fixed(1), Max: adapter.Fixed(12)},
		Requires:    []string{"year"},
		Description: "Month 1-12 (requires year)",
	}
}

func dayParam() adapter.Param {
	return adapter.Param{
		Name:        "day",
		Kind:        adapter.KindInteger,
		Range:       &adapter.Range{Min: adapter.Fixed(1), Max: adapter.Fixed(31)},
		Requires:    []string{"month", "year"},
		Description: "Day of month 1-31 (requires year and month)",
	}
}

func hourParam(lo, hi int) adapter.Param {
	return adapter.Param{
		Name:        "hour",
		Kind:        adapter.KindInteger,
		Range:       &adapter.Range{Min: adapter.Fixed(lo), Max: adapter.Fixed(hi)},
		Requires:    []string{"day", "month", "year"},
		Description: "Hour of day (requires year, month and day)",
	}
}

func stationParam(codes []string, desc string) adapter.Param {
	return adapter.Param{
		Name:        "station",
		Kind:        adapter.KindString,
		Required:    true,
		Enum:        codes,
		Description: desc,
	}
}
