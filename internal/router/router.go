// Package router wires HTTP routes to their handlers.  Public routes
// (health, auth) are registered separately from the protected /v1 API,
// which sits behind the JWT middleware.
package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/handler"
    "github.com/iliyamo/restaurant-table-reservation/internal/middleware"
)

// RegisterRoutes mounts the unauthenticated service routes.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth mounts the staff authentication endpoints.  Register and
// Login are public; Me requires a valid access token.
func RegisterAuth(e *echo.Echo, h *handler.AuthHandler, jwtSecret string) {
    auth := e.Group("/v1/auth")
    auth.POST("/register", h.Register)
    auth.POST("/login", h.Login)

    me := e.Group("/v1", middleware.JWTAuth(jwtSecret))
    me.GET("/me", h.Me)
}

// RegisterAPI mounts the reservation API under /v1 behind the JWT
// middleware.
func RegisterAPI(e *echo.Echo, jwtSecret string, customers *handler.CustomerHandler, tables *handler.TableHandler, bookings *handler.BookingHandler, reports *handler.ReportHandler) {
    v1 := e.Group("/v1", middleware.JWTAuth(jwtSecret))

    v1.POST("/customers", customers.Create)
    v1.GET("/customers", customers.List)
    v1.GET("/customers/:id", customers.Get)
    v1.PUT("/customers/:id", customers.Update)
    v1.DELETE("/customers/:id", customers.Delete)

    v1.POST("/tables", tables.Create)
    v1.GET("/tables", tables.List)
    v1.GET("/tables/:id", tables.Get)
    v1.PUT("/tables/:id", tables.Update)
    v1.DELETE("/tables/:id", tables.Delete)

    v1.POST("/bookings", bookings.Create)
    v1.GET("/bookings", bookings.List)
    v1.GET("/bookings/:id", bookings.Get)
    v1.PUT("/bookings/:id", bookings.Update)
    v1.DELETE("/bookings/:id", bookings.Delete)
    v1.POST("/bookings/:id/confirm", bookings.Confirm)
    v1.POST("/bookings/:id/complete", bookings.Complete)
    v1.POST("/bookings/:id/cancel", bookings.Cancel)

    v1.GET("/reports/bookings", reports.Bookings)
}
