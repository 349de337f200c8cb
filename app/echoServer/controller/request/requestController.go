package request

import (
	"log/slog"
	"net/http"

	"shareit/app/echoServer/web"
	requestsvc "shareit/service/request"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc requestsvc.Service
	Log *slog.Logger
}

type createReq struct {
	Description string `json:"description"`
}

// POST /requests
func (h *Controller) Create(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	out, err := h.Svc.Create(c.Request().Context(), uid, req.Description)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// GET /requests
func (h *Controller) ListOwn(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	out, err := h.Svc.ListOwn(c.Request().Context(), uid)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /requests/all?from=&size=
func (h *Controller) ListOthers(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	limit, offset, err := web.Pagination(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	out, err := h.Svc.ListOthers(c.Request().Context(), uid, limit, offset)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /requests/:id
func (h *Controller) Get(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	requestID, err := web.PathID(c, "id")
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	out, err := h.Svc.GetByID(c.Request().Context(), uid, requestID)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, out)
}
