// Package gateway is the public tier: it validates every inbound
// request and forwards it to the backend, relaying the response
// verbatim. No business logic lives here.
package gateway

import (
	"log/slog"
	"net/http"

	"shareit/app/gateway/client"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Cli *client.Client
	Log *slog.Logger
}

func Register(e *echo.Echo, h *Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	e.POST("/users", h.CreateUser)
	e.GET("/users", h.ListUsers)
	e.GET("/users/:id", h.GetUser)
	e.PATCH("/users/:id", h.UpdateUser)
	e.DELETE("/users/:id", h.DeleteUser)

	e.POST("/items", h.CreateItem)
	e.PATCH("/items/:id", h.UpdateItem)
	e.GET("/items/search", h.SearchItems)
	e.GET("/items/:id", h.GetItem)
	e.GET("/items", h.ListOwnItems)
	e.POST("/items/:id/comment", h.AddComment)

	e.POST("/bookings", h.CreateBooking)
	e.PATCH("/bookings/:id", h.ApproveBooking)
	e.GET("/bookings/owner", h.ListOwnerBookings)
	e.GET("/bookings/:id", h.GetBooking)
	e.GET("/bookings", h.ListBookerBookings)

	e.POST("/requests", h.CreateRequest)
	e.GET("/requests", h.ListOwnRequests)
	e.GET("/requests/all", h.ListOtherRequests)
	e.GET("/requests/:id", h.GetRequest)
}

// relay writes the backend's answer through unchanged.
func (h *Handlers) relay(c echo.Context, resp *client.Response, err error) error {
	if err != nil {
		h.Log.Error("backend call failed", "err", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "backend unavailable"})
	}
	if len(resp.Body) == 0 {
		return c.NoContent(resp.Status)
	}
	return c.Blob(resp.Status, echo.MIMEApplicationJSON, resp.Body)
}
