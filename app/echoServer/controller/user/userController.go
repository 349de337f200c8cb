package user

import (
	"log/slog"
	"net/http"

	"shareit/app/echoServer/web"
	"shareit/model"
	usersvc "shareit/service/user"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc usersvc.Service
	Log *slog.Logger
}

type createReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// POST /users
func (h *Controller) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	u, err := h.Svc.Create(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, u)
}

// GET /users
func (h *Controller) List(c echo.Context) error {
	users, err := h.Svc.GetAll(c.Request().Context())
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// GET /users/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := web.PathID(c, "id")
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	u, err := h.Svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, u)
}

// PATCH /users/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := web.PathID(c, "id")
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	var patch model.UserPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	u, err := h.Svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, u)
}

// DELETE /users/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := web.PathID(c, "id")
	if err != nil {
		return web.Error(c, h.Log, err)
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return web.Error(c, h.Log, err)
	}
	return c.NoContent(http.StatusOK)
}
