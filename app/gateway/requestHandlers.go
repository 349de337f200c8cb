package gateway

import (
	"net/http"

	"shareit/app/echoServer/web"

	"github.com/labstack/echo/v4"
)

// POST /requests
func (h *Handlers) CreateRequest(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodPost, "/requests", uid, nil, req)
	return h.relay(c, resp, err)
}

// GET /requests
func (h *Handlers) ListOwnRequests(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodGet, "/requests", uid, nil, nil)
	return h.relay(c, resp, err)
}

// GET /requests/all?from=&size=
func (h *Handlers) ListOtherRequests(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	query, err := pageQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodGet, "/requests/all", uid, query, nil)
	return h.relay(c, resp, err)
}

// GET /requests/:id
func (h *Handlers) GetRequest(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	requestID, err := web.PathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodGet, "/requests/"+pathInt(requestID), uid, nil, nil)
	return h.relay(c, resp, err)
}
