package tools

import "github.com/mwiater/hkomcp/internal/adapter"

func earthquakeReport(name, description string) adapter.Descriptor {
	return adapter.Descriptor{
		Name:        name,
		Description: description,
		Base:        adapter.BaseWeather,
		Path:        earthquakePath,
		DataType:    name,
		Params:      []adapter.Param{langParam()},
		Format:      adapter.JSONOnly,
	}
}

// Qem is the quick earthquake message.
func Qem() adapter.Descriptor {
	return earthquakeReport("qem",
		"Quick Earthquake Messages (qem). Returns the latest earthquake's magnitude, region, latitude, longitude and origin time.")
}

// FeltEarthquake is the locally felt earth tremor report.
func FeltEarthquake() adapter.Descriptor {
	return earthquakeReport("feltearthquake",
		"Locally Felt Earth Tremor Report (feltearthquake). Returns details of the latest earth tremor felt in Hong Kong, including intensity and felt reports.")
}
