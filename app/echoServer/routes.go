package echoServer

import (
	"net/http"

	bookingctrl "shareit/app/echoServer/controller/booking"
	itemctrl "shareit/app/echoServer/controller/item"
	requestctrl "shareit/app/echoServer/controller/request"
	userctrl "shareit/app/echoServer/controller/user"

	"github.com/labstack/echo/v4"
)

type C struct {
	User    *userctrl.Controller
	Item    *itemctrl.Controller
	Booking *bookingctrl.Controller
	Request *requestctrl.Controller
}

func Register(e *echo.Echo, c C) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	e.POST("/users", c.User.Create)
	e.GET("/users", c.User.List)
	e.GET("/users/:id", c.User.Get)
	e.PATCH("/users/:id", c.User.Update)
	e.DELETE("/users/:id", c.User.Delete)

	e.POST("/items", c.Item.Create)
	e.PATCH("/items/:id", c.Item.Update)
	e.GET("/items/search", c.Item.Search)
	e.GET("/items/:id", c.Item.Get)
	e.GET("/items", c.Item.ListOwn)
	e.POST("/items/:id/comment", c.Item.AddComment)

	e.POST("/bookings", c.Booking.Create)
	e.PATCH("/bookings/:id", c.Booking.Approve)
	e.GET("/bookings/owner", c.Booking.ListForOwner)
	e.GET("/bookings/:id", c.Booking.Get)
	e.GET("/bookings", c.Booking.ListForBooker)

	e.POST("/requests", c.Request.Create)
	e.GET("/requests", c.Request.ListOwn)
	e.GET("/requests/all", c.Request.ListOthers)
	e.GET("/requests/:id", c.Request.Get)
}
