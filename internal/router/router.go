package router // package router defines how HTTP routes are registered for the service

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/sleeperbus/booking-web/internal/handler"    // import the handlers that implement the UI flows
	"github.com/sleeperbus/booking-web/internal/middleware" // import middleware for admin auth and submit limiting
)

// RegisterRoutes registers routes that belong to no particular flow: the
// health check used by load balancers and the theme toggle shared by
// every page.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.POST("/theme", handler.ToggleTheme)
}

// RegisterBooking wires the passenger booking flow.  Every mutation is a
// POST that redirects back to the page, and the submission runs through
// the rate limiter so a double-clicked submit cannot book twice.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, limit echo.MiddlewareFunc) {
	e.GET("/", h.Page)
	e.POST("/date", h.ChangeDate)
	e.POST("/seats/toggle", h.ToggleSeat)
	e.POST("/meals/toggle", h.ToggleMeal)
	e.POST("/book", h.Submit, limit)
}

// RegisterManage wires the passenger lookup/cancel flow.  Cancellation
// shares the submit limiter: it is the other upstream mutation a visitor
// can trigger.
func RegisterManage(e *echo.Echo, h *handler.ManageHandler, limit echo.MiddlewareFunc) {
	e.GET("/manage", h.Page)
	e.POST("/manage/find", h.Find)
	e.POST("/manage/cancel", h.Cancel, limit)
}

// RegisterAdmin wires the dashboard.  Sign-in and sign-out are open;
// everything else sits behind AdminAuth plus the ADMIN role check, so a
// token with the wrong role claim is rejected even if validly signed.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string, limit echo.MiddlewareFunc) {
	e.GET("/admin/login", h.LoginPage)
	e.POST("/admin/login", h.Login)
	e.POST("/admin/logout", h.Logout)

	g := e.Group("/admin")
	g.Use(middleware.AdminAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN"))
	g.GET("", h.Dashboard)
	g.GET("/bookings", h.Bookings)
	g.POST("/bookings/:id/cancel", h.CancelBooking, limit)
}
