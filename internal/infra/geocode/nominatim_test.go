package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sensorysearch/config"
	"sensorysearch/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, baseURL string) service.Geocoder {
	t.Helper()

	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{
			BaseURL:   baseURL,
			UserAgent: "sensorysearch-test",
			Timeout:   2 * time.Second,
		},
	}

	geocoder, err := NewNominatimGeocoder(Params{Config: cfg, Logger: newTestLogger()})
	require.NoError(t, err)

	return geocoder
}

func TestNominatimGeocoder_Geocode_Match(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Philadelphia", r.URL.Query().Get("q"))
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "sensorysearch-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"39.9526","lon":"-75.1652","display_name":"Philadelphia, PA, United States"}]`))
	}))
	defer server.Close()

	geocoder := newTestGeocoder(t, server.URL)

	result, err := geocoder.Geocode(context.Background(), "Philadelphia")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.InDelta(t, 39.9526, result.Coordinate.Lat, 0.0001)
	assert.InDelta(t, -75.1652, result.Coordinate.Lng, 0.0001)
	assert.Equal(t, "Philadelphia, PA, United States", result.Label)
}

func TestNominatimGeocoder_Geocode_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	geocoder := newTestGeocoder(t, server.URL)

	result, err := geocoder.Geocode(context.Background(), "xyzzy")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestNominatimGeocoder_Geocode_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	geocoder := newTestGeocoder(t, server.URL)

	result, err := geocoder.Geocode(context.Background(), "Philadelphia")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestNominatimGeocoder_MissingConfig(t *testing.T) {
	_, err := NewNominatimGeocoder(Params{Config: &config.Config{}, Logger: newTestLogger()})
	assert.Error(t, err)
}
