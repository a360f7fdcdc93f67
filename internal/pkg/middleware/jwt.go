package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/rumbus/shuttle/internal/pkg/jwt"
	"github.com/rumbus/shuttle/internal/pkg/logger"
	"github.com/rumbus/shuttle/internal/pkg/models"
	"github.com/rumbus/shuttle/internal/utils"
)

// JWTAuthMiddleware authenticates admin requests. Browsers cannot set headers on a
// websocket handshake, so the token is also accepted from the "token" query parameter.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := c.QueryParam("token")
			if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || parts[0] != "Bearer" {
					return utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format")
				}
				tokenString = parts[1]
			}

			if tokenString == "" {
				return utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header is required")
			}

			claims, err := jwtpkg.ValidateToken(tokenString, config)
			if err != nil {
				logger.Warn("Token validation failed",
					logger.String("path", c.Path()),
					logger.Err(err))
				return utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid token")
			}

			if claims.Role != jwtpkg.RoleAdmin {
				return utils.ErrorResponse(c, http.StatusForbidden, "Admin role required")
			}

			c.Set("subject", claims.Subject)
			c.Set("user_role", claims.Role)

			return next(c)
		}
	}
}
