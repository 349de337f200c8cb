package item

import (
	"log/slog"
	"net/http"
	"strconv"

	"shareit/app/echoServer/web"
	"shareit/model"
	itemsvc "shareit/service/item"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc itemsvc.Service
	Log *slog.Logger
}

type createReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

type commentReq struct {
	Text string `json:"text"`
}

// POST /items?requestId=
func (h *Controller) Create(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}

	requestID := req.RequestID
	if raw := c.QueryParam("requestId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return web.Error(c, h.Log, model.Err(model.ErrBadRequest, "invalid requestId: %q", raw))
		}
		requestID = &id
	}

	it := model.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available != nil && *req.Available,
	}
	out, err := h.Svc.Create(c.Request().Context(), uid, it, requestID)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// PATCH /items/:id
func (h *Controller) Update(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	itemID, err := web.PathID(c, "id")
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	var patch model.ItemPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	out, err := h.Svc.Update(c.Request().Context(), uid, itemID, patch)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /items/:id
func (h *Controller) Get(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	itemID, err := web.PathID(c, "id")
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	out, err := h.Svc.GetByID(c.Request().Context(), uid, itemID)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /items?from=&size=
func (h *Controller) ListOwn(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	limit, offset, err := web.Pagination(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	out, err := h.Svc.ListByOwner(c.Request().Context(), uid, limit, offset)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /items/search?text=&from=&size=
func (h *Controller) Search(c echo.Context) error {
	limit, offset, err := web.Pagination(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	out, err := h.Svc.Search(c.Request().Context(), c.QueryParam("text"), limit, offset)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// POST /items/:id/comment
func (h *Controller) AddComment(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	itemID, err := web.PathID(c, "id")
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	out, err := h.Svc.AddComment(c.Request().Context(), uid, itemID, req.Text)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, out)
}
