package adapter

import (
	"time"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, HongKong)

func testClock() Clock { return FixedClock(testNow) }

// tideDescriptor mirrors the shape of the tide operations: a station enum,
// a clock-relative year and a month/day/hour dependency chain.
func tideDescriptor() Descriptor {
	return Descriptor{
		Name:     "tide",
		Base:     BaseWeather,
		Path:     "opendata.php",
		DataType: "HHOT",
		Params: []Param{
			{Name: "station", Kind: KindString, Required: true, Enum: []string{"CCH", "QUB"}},
			{Name: "year", Kind: KindInteger, Required: true, Range: &Range{Min: Fixed(2022), Max: CurrentYear(1)}},
			{Name: "month", Kind: KindInteger, Range: &Range{Min: Fixed(1), Max: Fixed(12)}, Requires: []string{"year"}},
			{Name: "day", Kind: KindInteger, Range: &Range{Min: Fixed(1), Max: Fixed(31)}, Requires: []string{"month", "year"}},
			{Name: "hour", Kind: KindInteger, Range: &Range{Min: Fixed(0), Max: Fixed(23)}, Requires: []string{"day", "month", "year"}},
			{Name: FormatParam, Kind: KindString, Default: FormatJSON, Enum: []string{FormatJSON, FormatCSV}},
		},
		Format:        DualFormat,
		DefaultFormat: FormatJSON,
	}
}

func reportDescriptor() Descriptor {
	return Descriptor{
		Name:     "report",
		Base:     BaseWeather,
		Path:     "weather.php",
		DataType: "fnd",
		Params: []Param{
			{Name: "lang", Kind: KindString, Default: DefaultLanguage, Enum: Languages},
		},
	}
}

func radiationDescriptor() Descriptor {
	return Descriptor{
		Name:     "radiation",
		Base:     BaseWeather,
		Path:     "opendata.php",
		DataType: "RYES",
		Params: []Param{
			{Name: "date", Kind: KindString, Required: true, Date: CompactDate.Between(Date(2019, time.September, 10), DaysAgo(1))},
			{Name: "station", Kind: KindString, Required: true, Pattern: `^[A-Z0-9]{2,4}$`},
		},
	}
}

func etaDescriptor() Descriptor {
	return Descriptor{
		Name:   "eta",
		Base:   BaseTransport,
		Path:   "eta",
		Method: "POST",
		Params: []Param{
			{Name: "company", Kind: KindString, Required: true},
			{Name: "routeId", Kind: KindString, Required: true},
			{Name: "stop", Kind: KindString, Required: true},
			{Name: "dir", Kind: KindString},
		},
		Check: func(p Params) *ValidationError {
			if c, _ := p.String("company"); c == "mtr_hr" && !p.Has("dir") {
				return &ValidationError{Field: "dir", Message: "is required for mtr_hr", Allowed: []string{"UT", "DT"}}
			}
			return nil
		},
	}
}
