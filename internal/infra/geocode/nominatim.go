// Package geocode implements the Geocoder interface against a
// Nominatim-compatible search endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"sensorysearch/config"
	"sensorysearch/internal/domain/entity"
	"sensorysearch/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultGeocodeTimeout = 5 * time.Second

// Params holds dependencies for the geocoder, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type nominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewNominatimGeocoder creates a geocoder backed by the configured
// Nominatim-compatible endpoint.
func NewNominatimGeocoder(params Params) (service.Geocoder, error) {
	cfg := params.Config.Geocoding
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("geocoding configuration is missing")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGeocodeTimeout
	}

	return &nominatimGeocoder{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     params.Logger,
	}, nil
}

// searchResult is the subset of the Nominatim response we consume. Nominatim
// serializes coordinates as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-text city/ZIP query. A query with no match
// returns (nil, nil).
func (g *nominatimGeocoder) Geocode(ctx context.Context, query string) (*service.GeocodeResult, error) {
	endpoint, err := url.Parse(g.baseURL + "/search")
	if err != nil {
		return nil, errors.Wrap(err, "invalid geocoding base URL")
	}

	values := endpoint.Query()
	values.Set("q", query)
	values.Set("format", "jsonv2")
	values.Set("limit", "1")
	endpoint.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build geocode request")
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocode request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocode endpoint returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocode response")
	}

	if len(results) == 0 {
		g.logger.Debug("geocode query had no match", slog.String("query", query))

		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse geocode latitude")
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse geocode longitude")
	}

	return &service.GeocodeResult{
		Coordinate: entity.Coordinate{Lat: lat, Lng: lng},
		Label:      results[0].DisplayName,
	}, nil
}
