package handler

import (
	"log/slog"
	"net/http"

	"sensorysearch/internal/delivery/http/response"
	"sensorysearch/internal/domain/entity"
	"sensorysearch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ResolveLocationRequest represents the request body for resolving a location
type ResolveLocationRequest struct {
	Query       string   `json:"query"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	RadiusMiles int      `json:"radius_miles" validate:"omitempty,min=1"`
}

// SavePreferenceRequest represents the request body for saving a preference
type SavePreferenceRequest struct {
	Latitude    *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Label       string   `json:"label" validate:"required"`
	RadiusMiles int      `json:"radius_miles" validate:"omitempty,min=1"`
	Source      string   `json:"source" validate:"required,oneof=device manual"`
}

// SaveFavoritesRequest represents the request body for replacing favorites
type SaveFavoritesRequest struct {
	ListingIDs []string `json:"listing_ids"`
}

// ResolveLocation resolves a free-text query or device coordinate into a
// normalized location preference.
func (h *LocationHandler) ResolveLocation(c echo.Context) error {
	var req ResolveLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid location input")
	}

	input := &usecase.ResolveLocationInput{
		Query:       req.Query,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		RadiusMiles: req.RadiusMiles,
	}

	pref, err := h.locationUC.Resolve(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if pref == nil {
		return response.Success(c, http.StatusOK, nil, "No matching location found")
	}

	return response.Success(c, http.StatusOK, pref, "Location resolved successfully")
}

// GetPreference returns the stored location preference for the caller.
func (h *LocationHandler) GetPreference(c echo.Context) error {
	userID, err := getUserKey(c)
	if err != nil {
		return err
	}

	pref, err := h.locationUC.LoadPreference(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pref, "Location preference retrieved successfully")
}

// SavePreference stores the caller's location preference.
func (h *LocationHandler) SavePreference(c echo.Context) error {
	userID, err := getUserKey(c)
	if err != nil {
		return err
	}

	var req SavePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid preference input")
	}

	pref := &entity.LocationPreference{
		Label:       req.Label,
		RadiusMiles: req.RadiusMiles,
		Source:      entity.LocationSource(req.Source),
	}
	if req.Latitude != nil && req.Longitude != nil {
		pref.Coordinate = &entity.Coordinate{Lat: *req.Latitude, Lng: *req.Longitude}
	}

	if err := h.locationUC.SavePreference(c.Request().Context(), userID, pref); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pref, "Location preference saved successfully")
}

// GetFavorites returns the caller's favorite listing IDs.
func (h *LocationHandler) GetFavorites(c echo.Context) error {
	userID, err := getUserKey(c)
	if err != nil {
		return err
	}

	favorites, err := h.locationUC.LoadFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

// SaveFavorites replaces the caller's favorite listing IDs.
func (h *LocationHandler) SaveFavorites(c echo.Context) error {
	userID, err := getUserKey(c)
	if err != nil {
		return err
	}

	var req SaveFavoritesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorites input")
	}

	if err := h.locationUC.SaveFavorites(c.Request().Context(), userID, req.ListingIDs); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, req.ListingIDs, "Favorites saved successfully")
}

// getUserKey extracts the preference key set by the auth middleware.
func getUserKey(c echo.Context) (string, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return "", response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	return userID, nil
}
