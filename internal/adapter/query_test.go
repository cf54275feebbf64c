package adapter

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGETEncodesSortedQuery(t *testing.T) {
	s := Settings{UserAgent: "hkomcp-test", WeatherBaseURL: "https://example.test/weatherAPI/opendata/"}.WithDefaults()
	p := Params{"year": 2024, "station": "CCH", "month": 3, FormatParam: FormatCSV}

	req, err := Build(tideDescriptor(), p, s)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "https://example.test/weatherAPI/opendata/opendata.php?dataType=HHOT&month=3&rformat=csv&station=CCH&year=2024", req.URL.String())
	assert.Equal(t, "hkomcp-test", req.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Nil(t, req.Body)
}

func TestBuildIsDeterministic(t *testing.T) {
	p := Params{"year": 2024, "station": "QUB", "month": 1, "day": 2, "hour": 3}
	first, err := Build(tideDescriptor(), p, DefaultSettings())
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Build(tideDescriptor(), p, DefaultSettings())
		require.NoError(t, err)
		assert.Equal(t, first.URL.String(), again.URL.String())
	}
}

func TestBuildHonoursAcceptOverride(t *testing.T) {
	d := reportDescriptor()
	d.Accept = AcceptGeoJSON
	req, err := Build(d, Params{"lang": "en"}, DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, AcceptGeoJSON, req.Header.Get("Accept"))
	assert.Equal(t, "https://data.weather.gov.hk/weatherAPI/opendata/weather.php?dataType=fnd&lang=en", req.URL.String())
}

func TestBuildPOSTSendsParameterArray(t *testing.T) {
	s := Settings{TransportBaseURL: "https://eta.example.test/api/"}.WithDefaults()
	p := Params{"company": "kmb", "routeId": "1A", "stop": "18492910339410B1"}

	req, err := Build(etaDescriptor(), p, s)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://eta.example.test/api/eta", req.URL.String())
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	var body []map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	require.Len(t, body, 1)
	assert.Equal(t, map[string]any{"company": "kmb", "routeId": "1A", "stop": "18492910339410B1"}, body[0])
}

func TestBuildRejectsBadBaseURL(t *testing.T) {
	s := DefaultSettings()
	s.WeatherBaseURL = "://missing-scheme"
	_, err := Build(reportDescriptor(), Params{"lang": "en"}, s)
	assert.Error(t, err)
}

func TestParamQueryKey(t *testing.T) {
	assert.Equal(t, "lang", Param{Name: "lang"}.QueryKey())
	assert.Equal(t, "routeNo", Param{Name: "route", Query: "routeNo"}.QueryKey())
}
