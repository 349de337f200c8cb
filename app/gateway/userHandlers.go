package gateway

import (
	"net/http"

	"shareit/app/echoServer/web"

	"github.com/labstack/echo/v4"
)

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

// POST /users
func (h *Handlers) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodPost, "/users", 0, nil, req)
	return h.relay(c, resp, err)
}

// GET /users
func (h *Handlers) ListUsers(c echo.Context) error {
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodGet, "/users", 0, nil, nil)
	return h.relay(c, resp, err)
}

// GET /users/:id
func (h *Handlers) GetUser(c echo.Context) error {
	id, err := web.PathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodGet, "/users/"+pathInt(id), 0, nil, nil)
	return h.relay(c, resp, err)
}

// PATCH /users/:id
func (h *Handlers) UpdateUser(c echo.Context) error {
	id, err := web.PathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodPatch, "/users/"+pathInt(id), 0, nil, req)
	return h.relay(c, resp, err)
}

// DELETE /users/:id
func (h *Handlers) DeleteUser(c echo.Context) error {
	id, err := web.PathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodDelete, "/users/"+pathInt(id), 0, nil, nil)
	return h.relay(c, resp, err)
}
