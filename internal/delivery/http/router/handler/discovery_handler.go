// Package handler contains the HTTP handlers for the Echo server.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"sensorysearch/config"
	"sensorysearch/internal/delivery/http/response"
	"sensorysearch/internal/domain/entity"
	"sensorysearch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	Config      *config.Config
	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// DiscoveryHandler holds dependencies for the discovery surface handlers
type DiscoveryHandler struct {
	cfg         *config.Config
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		cfg:         params.Config,
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// Discover handles the tabbed listing fetch with the active filters.
// All filters arrive as query parameters and are optional.
func (h *DiscoveryHandler) Discover(c echo.Context) error {
	input := &usecase.DiscoverInput{
		Query: c.QueryParam("q"),
	}

	latParam := c.QueryParam("lat")
	lngParam := c.QueryParam("lng")
	if latParam != "" && lngParam != "" {
		lat, err := strconv.ParseFloat(latParam, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_COORDINATE", "Invalid latitude")
		}
		lng, err := strconv.ParseFloat(lngParam, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_COORDINATE", "Invalid longitude")
		}
		input.Origin = &entity.Coordinate{Lat: lat, Lng: lng}
	}

	if radiusParam := c.QueryParam("radius_miles"); radiusParam != "" {
		radius, err := strconv.ParseFloat(radiusParam, 64)
		if err != nil || radius <= 0 {
			return response.BadRequest(c, "INVALID_RADIUS", "Search radius is out of range")
		}
		if maxRadius := float64(h.cfg.Discovery.MaxRadiusMiles); radius > maxRadius {
			radius = maxRadius
		}
		input.RadiusMiles = radius
	} else if input.Origin != nil {
		input.RadiusMiles = float64(h.cfg.Discovery.DefaultRadiusMiles)
	}

	if ageParam := c.QueryParam("age"); ageParam != "" {
		age := entity.AgeBracket(ageParam)
		if _, _, ok := age.Range(); !ok {
			return response.BadRequest(c, "INVALID_AGE_BRACKET", "Unknown age bracket")
		}
		input.Age = &age
	}

	result, err := h.discoveryUC.Discover(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Listings retrieved successfully")
}

// GetListing handles the listing detail fetch by kind and ID.
func (h *DiscoveryHandler) GetListing(c echo.Context) error {
	kind := entity.ListingKind(c.Param("kind"))
	if !validKind(kind) {
		return response.NotFound(c, "LISTING_NOT_FOUND", "Unknown listing kind")
	}

	listing, err := h.discoveryUC.GetListing(c.Request().Context(), kind, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing retrieved successfully")
}

func validKind(kind entity.ListingKind) bool {
	for _, known := range entity.Kinds() {
		if kind == known {
			return true
		}
	}

	return false
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
