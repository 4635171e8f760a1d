package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the session claims injected by the Auth middleware
// and fast-fails before any service call: a missing user id means the
// middleware did not run or the token carried no identity.
func ctxIdentity(c echo.Context) (userID, userName, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userName, _ = c.Get("user_name").(string)
	role, _ = c.Get("role").(string)
	return userID, userName, role, nil
}
