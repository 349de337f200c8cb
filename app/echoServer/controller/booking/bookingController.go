package booking

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"shareit/app/echoServer/web"
	"shareit/model"
	bookingsvc "shareit/service/booking"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc bookingsvc.Service
	Log *slog.Logger
}

type createReq struct {
	ItemID int64          `json:"itemId"`
	Start  model.DateTime `json:"start"`
	End    model.DateTime `json:"end"`
}

// POST /bookings
func (h *Controller) Create(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	out, err := h.Svc.Create(c.Request().Context(), uid, req.ItemID, req.Start, req.End)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// PATCH /bookings/:id?approved=
func (h *Controller) Approve(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	bookingID, err := web.PathID(c, "id")
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return web.Error(c, h.Log, model.Err(model.ErrBadRequest, "invalid approved: %q", c.QueryParam("approved")))
	}
	out, err := h.Svc.Approve(c.Request().Context(), bookingID, uid, approved)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /bookings/:id
func (h *Controller) Get(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	bookingID, err := web.PathID(c, "id")
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	out, err := h.Svc.GetByID(c.Request().Context(), bookingID, uid)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /bookings?state=&from=&size=
func (h *Controller) ListForBooker(c echo.Context) error {
	return h.list(c, h.Svc.ListForBooker)
}

// GET /bookings/owner?state=&from=&size=
func (h *Controller) ListForOwner(c echo.Context) error {
	return h.list(c, h.Svc.ListForOwner)
}

type listFn func(ctx context.Context, userID int64, state model.BookingState, limit, offset int) ([]model.Booking, error)

func (h *Controller) list(c echo.Context, fn listFn) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	state, err := model.ParseState(c.QueryParam("state"))
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	limit, offset, err := web.Pagination(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	out, err := fn(c.Request().Context(), uid, state, limit, offset)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, out)
}
