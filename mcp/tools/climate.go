package tools

import (
	"time"

	"github.com/mwiater/hkomcp/internal/adapter"
)

// climateFirstYear is the earliest year of the Observatory's climate records.
const climateFirstYear = 1884

// ryesFirstDay is the first day the radiation report is archived for.
var ryesFirstDay = adapter.Date(2019, time.September, 10)

func latestReading(name, dataType, description string) adapter.Descriptor {
	return adapter.Descriptor{
		Name:          name,
		Description:   description,
		Base:          adapter.BaseWeather,
		Path:          openDataPath,
		DataType:      dataType,
		Params:        []adapter.Param{langParam(), formatParam(adapter.FormatCSV)},
		Format:        adapter.DualFormat,
		DefaultFormat: adapter.FormatCSV,
	}
}

// Lhl is the cloud-to-ground and cloud-to-cloud lightning count.
func Lhl() adapter.Descriptor {
	return latestReading("lhl", "LHL",
		"Cloud-to-Ground and Cloud-to-Cloud Lightning Count (LHL). Returns the lightning count by region for the past hour.")
}

// Ltmv is the latest 10-minute mean visibility.
func Ltmv() adapter.Descriptor {
	return latestReading("ltmv", "LTMV",
		"Latest 10-minute Mean Visibility (LTMV). Returns the latest mean visibility in kilometres at each visibility station.")
}

func dailyClimate(name, dataType, description string) adapter.Descriptor {
	return adapter.Descriptor{
		Name:        name,
		Description: description,
		Base:        adapter.BaseWeather,
		Path:        openDataPath,
		DataType:    dataType,
		Params: []adapter.Param{
			stationParam(stationCodes(ClimateStations), "Climate station: "+stationHelp(ClimateStations)),
			yearParam(adapter.Fixed(climateFirstYear), adapter.CurrentYear(0), "Year (1884 to this year, station-specific coverage)"),
			monthParam(),
			formatParam(adapter.FormatCSV),
		},
		Format:        adapter.DualFormat,
		DefaultFormat: adapter.FormatCSV,
	}
}

// ClmTemp is the daily mean temperature record.
func ClmTemp() adapter.Descriptor {
	return dailyClimate("clmtemp", "CLMTEMP",
		"Daily Mean Temperature (CLMTEMP). Returns the daily mean temperature recorded at a climate station for the requested year or month.")
}

// ClmMaxT is the daily maximum temperature record.
func ClmMaxT() adapter.Descriptor {
	return dailyClimate("clmmaxt", "CLMMAXT",
		"Daily Maximum Temperature (CLMMAXT). Returns the daily maximum temperature recorded at a climate station for the requested year or month.")
}

// ClmMinT is the daily minimum temperature record, registered as "clmmin".
func ClmMinT() adapter.Descriptor {
	return dailyClimate("clmmin", "CLMMINT",
		"Daily Minimum Temperature (CLMMINT). Returns the daily minimum temperature recorded at a climate station for the requested year or month.")
}

// Ryes is the weather and radiation level report.
func Ryes() adapter.Descriptor {
	return adapter.Descriptor{
		Name:        "ryes",
		Description: "Weather and Radiation Level Report (RYES). Returns the daily weather and ambient gamma radiation readings of a station for the given date.",
		Base:        adapter.BaseWeather,
		Path:        openDataPath,
		DataType:    "RYES",
		Params: []adapter.Param{
			{
				Name:        "date",
				Kind:        adapter.KindString,
				Required:    true,
				Date:        adapter.CompactDate.Between(ryesFirstDay, adapter.DaysAgo(1)),
				Description: "Report date in YYYYMMDD format, from 20190910 to yesterday",
			},
			langParam(),
			{
				Name:        "station",
				Kind:        adapter.KindString,
				Required:    true,
				Pattern:     `^[A-Z0-9]{2,4}$`,
				Description: "Radiation station code, e.g. HKO, KP, CCH",
			},
		},
		Format: adapter.JSONOnly,
	}
}
