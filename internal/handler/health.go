package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health answers GET /healthz for load balancers.  It only confirms the
// process is serving; it deliberately does not probe the booking API or
// Redis, since the service keeps working (degraded) without either.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
