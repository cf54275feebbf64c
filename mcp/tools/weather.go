package tools

import "github.com/mwiater/hkomcp/internal/adapter"

func weatherReport(name, dataType, description string) adapter.Descriptor {
	return adapter.Descriptor{
		Name:        name,
		Description: description,
		Base:        adapter.BaseWeather,
		Path:        weatherPath,
		DataType:    dataType,
		Params:      []adapter.Param{langParam()},
		Format:      adapter.JSONOnly,
	}
}

// Fnd is the 9-day weather forecast.
func Fnd() adapter.Descriptor {
	return weatherReport("fnd", "fnd",
		"9-day Weather Forecast (fnd). Returns the general situation and a forecast for each of the next nine days, including wind, weather, temperature and relative humidity ranges, and the probability of significant rain.")
}

// Rhrread is the current weather report.
func Rhrread() adapter.Descriptor {
	d := weatherReport("rhrread", "rhrread",
		"Current Weather Report (rhrread). Returns rainfall, temperature and humidity readings by district together with warning messages, UV index and the report update time.")
	d.Accept = adapter.AcceptGeoJSON
	return d
}

// Flw is the local weather forecast.
func Flw() adapter.Descriptor {
	return weatherReport("flw", "flw",
		"Local Weather Forecast (flw). Returns the general situation, tropical cyclone information, fire danger warning, forecast period and description, outlook and update time.")
}

// WarningInfo is the detailed weather warning information.
func WarningInfo() adapter.Descriptor {
	return weatherReport("warningInfo", "warningInfo",
		"Weather Warning Information (warningInfo). Returns the details of each weather warning in force.")
}

// Warnsum is the weather warning summary.
func Warnsum() adapter.Descriptor {
	return weatherReport("warnsum", "warnsum",
		"Weather Warning Summary (warnsum). Returns the code, action and issue time of each weather warning in force.")
}

// Swt is the special weather tips feed.
func Swt() adapter.Descriptor {
	return weatherReport("swt", "swt",
		"Special Weather Tips (swt). Returns the special weather tips currently issued and their update time.")
}

// HourlyRainfall is the past-hour rainfall by automatic weather station.
func HourlyRainfall() adapter.Descriptor {
	return adapter.Descriptor{
		Name:        "hourlyrainfall",
		Description: "Hourly Rainfall (hourlyRainfall). Returns the rainfall recorded in the past hour at each automatic weather station, with observation time.",
		Base:        adapter.BaseWeather,
		Path:        "hourlyRainfall.php",
		Params:      []adapter.Param{langParam()},
		Format:      adapter.JSONOnly,
	}
}
