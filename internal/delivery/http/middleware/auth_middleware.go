// Package middleware contains the HTTP middleware for the Echo server.
package middleware

import (
	"net/http"
	"slices"
	"strings"

	"sensorysearch/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// deviceIDHeader carries the device-scoped identifier for guests who have
// not signed in. Preferences for guests are keyed by this value.
const deviceIDHeader = "X-Device-ID"

// AuthMiddleware provides middleware for JWT authentication and authorization.
// Tokens are minted by the hosted auth provider and validated here with the
// shared HMAC secret.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// Authenticate validates the JWT access token and stores the user identity
// on the context. Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, roles, err := m.parseToken(c)
		if err != nil {
			return err
		}

		c.Set("userID", userID)
		c.Set("roles", roles)

		return next(c)
	}
}

// Identify resolves a preference key for the request: the authenticated
// user ID when a token is present, otherwise the device identifier header.
// Guests without either cannot store preferences.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") != "" {
			userID, roles, err := m.parseToken(c)
			if err != nil {
				return err
			}

			c.Set("userID", userID)
			c.Set("roles", roles)

			return next(c)
		}

		deviceID := strings.TrimSpace(c.Request().Header.Get(deviceIDHeader))
		if deviceID == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header or " + deviceIDHeader + " is required"})
		}

		c.Set("userID", "device:"+deviceID)
		c.Set("roles", []string{})

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get("roles")
			roles, ok := rolesVal.([]string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !slices.Contains(roles, requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole + "' role"})
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) parseToken(c echo.Context) (string, []string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(m.cfg.SecretKey.Access), nil
	})
	if err != nil || !token.Valid {
		return "", nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "User ID missing from token"})
	}

	rolesClaim, _ := claims["roles"].([]any)
	roles := make([]string, 0, len(rolesClaim))
	for _, r := range rolesClaim {
		if roleStr, ok := r.(string); ok {
			roles = append(roles, roleStr)
		}
	}

	return userID, roles, nil
}
