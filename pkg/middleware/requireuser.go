package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireUser is the strict variant for deployments behind an auth gateway:
// the gateway must inject an X-User-Id header (or the uid cookie must be
// present). When enabled=false it passes through, use DevLogin instead.
func RequireUser(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			uid := c.Request().Header.Get("X-User-Id")
			if uid == "" {
				if ck, err := c.Cookie(uidCookie); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing user identity"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
