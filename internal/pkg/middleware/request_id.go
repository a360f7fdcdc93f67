package middleware

import (
	"github.com/labstack/echo/v4"
	ctxpkg "github.com/rumbus/shuttle/internal/pkg/context"
)

// RequestIDMiddleware propagates or generates X-Request-ID and stores it in the request context
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := ctxpkg.WithRequestID(c.Request().Context(), c.Request().Header.Get(echo.HeaderXRequestID))
			requestID := ctxpkg.GetRequestID(ctx)

			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)

			return next(c)
		}
	}
}
