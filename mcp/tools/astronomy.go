package tools

import "github.com/mwiater/hkomcp/internal/adapter"

// Astronomical predictions are published for a fixed first year up to next year.
const (
	tideFirstYear = 2022
	sunFirstYear  = 2018
)

func tideTable(name, dataType, description string, hourLo, hourHi int) adapter.Descriptor {
	return adapter.Descriptor{
		Name:        name,
		Description: description,
		Base:        adapter.BaseWeather,
		Path:        openDataPath,
		DataType:    dataType,
		Params: []adapter.Param{
			stationParam(stationCodes(TideStations), "Tide station: "+stationHelp(TideStations)),
			yearParam(adapter.Fixed(tideFirstYear), adapter.CurrentYear(1), "Year of prediction (2022 to next year)"),
			monthParam(),
			dayParam(),
			hourParam(hourLo, hourHi),
			formatParam(adapter.FormatJSON),
		},
		Format:        adapter.DualFormat,
		DefaultFormat: adapter.FormatJSON,
	}
}

// Hhot is the hourly heights of astronomical tides. The tool keeps the
// "hhhot" name it has always been registered under.
func Hhot() adapter.Descriptor {
	return tideTable("hhhot", "HHOT",
		"Hourly Heights of Astronomical Tides (HHOT). Returns predicted tide heights in metres above chart datum for each hour at the given station.",
		0, 23)
}

// Hlt is the times and heights of astronomical high and low tides.
func Hlt() adapter.Descriptor {
	return tideTable("hlt", "HLT",
		"Times and Heights of Astronomical High and Low Tides (HLT). Returns the predicted time and height of each high and low tide at the given station.",
		1, 24)
}

func riseSetTable(name, dataType, description string) adapter.Descriptor {
	return adapter.Descriptor{
		Name:        name,
		Description: description,
		Base:        adapter.BaseWeather,
		Path:        openDataPath,
		DataType:    dataType,
		Params: []adapter.Param{
			yearParam(adapter.Fixed(sunFirstYear), adapter.CurrentYear(1), "Year (2018 to next year)"),
			monthParam(),
			dayParam(),
			formatParam(adapter.FormatCSV),
		},
		Format:        adapter.DualFormat,
		DefaultFormat: adapter.FormatCSV,
	}
}

// Srs is the times of sunrise, sun transit and sunset.
func Srs() adapter.Descriptor {
	return riseSetTable("srs", "SRS",
		"Times of Sunrise/Sunset (SRS). Returns the times of sunrise, sun transit and sunset in Hong Kong for each requested day.")
}

// Mrs is the times of moonrise, moon transit and moonset.
func Mrs() adapter.Descriptor {
	return riseSetTable("mrs", "MRS",
		"Times of Moonrise/Moonset (MRS). Returns the times of moonrise, moon transit and moonset in Hong Kong for each requested day.")
}

// LunarDate converts a Gregorian date to the Chinese lunar calendar.
func LunarDate() adapter.Descriptor {
	return adapter.Descriptor{
		Name:        "lunardate",
		Description: "Gregorian-Lunar Calendar Conversion (lunardate). Returns LunarYear (lunar year with zodiac) and LunarDate (lunar month and day) in traditional Chinese.",
		Base:        adapter.BaseWeather,
		Path:        "lunardate.php",
		Params: []adapter.Param{{
			Name:        "date",
			Kind:        adapter.KindString,
			Required:    true,
			Date:        adapter.ISODate.Between(adapter.YearStart(0), adapter.YearEnd(2)),
			Description: "Gregorian date in YYYY-MM-DD format, from this year to two years ahead",
		}},
		Format: adapter.JSONOnly,
	}
}

