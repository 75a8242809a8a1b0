package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const uidCookie = "AGRO_UID"

// DevLogin resolves the caller uid from cookie or query param and stores it
// in the echo context under "uid". Intended for development; production
// fronts this service with a real identity provider (see RequireUser).
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(uidCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: uidCookie, Value: q, Path: "/"})
					uid = q
				} else {
					uid = "U_DEV_DEFAULT"
					c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
