package gateway

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"shareit/app/echoServer/web"
	"shareit/model"

	"github.com/labstack/echo/v4"
)

// POST /bookings
func (h *Handlers) CreateBooking(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return badRequest(c, "start and end are required")
	}
	if !req.Start.Time.Before(req.End.Time) {
		return badRequest(c, "start must be before end")
	}
	if req.Start.Time.Before(time.Now().Truncate(time.Second)) {
		return badRequest(c, "start must not be in the past")
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodPost, "/bookings", uid, nil, req)
	return h.relay(c, resp, err)
}

// PATCH /bookings/:id?approved=
func (h *Handlers) ApproveBooking(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	bookingID, err := web.PathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	approved := c.QueryParam("approved")
	if _, err := strconv.ParseBool(approved); err != nil {
		return badRequest(c, "invalid approved: "+approved)
	}
	query := url.Values{}
	query.Set("approved", approved)
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodPatch, "/bookings/"+pathInt(bookingID), uid, query, nil)
	return h.relay(c, resp, err)
}

// GET /bookings/:id
func (h *Handlers) GetBooking(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	bookingID, err := web.PathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodGet, "/bookings/"+pathInt(bookingID), uid, nil, nil)
	return h.relay(c, resp, err)
}

// GET /bookings?state=&from=&size=
func (h *Handlers) ListBookerBookings(c echo.Context) error {
	return h.listBookings(c, "/bookings")
}

// GET /bookings/owner?state=&from=&size=
func (h *Handlers) ListOwnerBookings(c echo.Context) error {
	return h.listBookings(c, "/bookings/owner")
}

func (h *Handlers) listBookings(c echo.Context, path string) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	state, err := model.ParseState(c.QueryParam("state"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	query, err := pageQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	query.Set("state", string(state))
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodGet, path, uid, query, nil)
	return h.relay(c, resp, err)
}
