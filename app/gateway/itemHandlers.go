package gateway

import (
	"net/http"
	"net/url"
	"strconv"

	"shareit/app/echoServer/web"

	"github.com/labstack/echo/v4"
)

func pathInt(id int64) string { return strconv.FormatInt(id, 10) }

// POST /items?requestId=
func (h *Handlers) CreateItem(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req createItemReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	query := url.Values{}
	if raw := c.QueryParam("requestId"); raw != "" {
		if id, perr := strconv.ParseInt(raw, 10, 64); perr != nil || id <= 0 {
			return badRequest(c, "invalid requestId: "+raw)
		}
		query.Set("requestId", raw)
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodPost, "/items", uid, query, req)
	return h.relay(c, resp, err)
}

// PATCH /items/:id
func (h *Handlers) UpdateItem(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	itemID, err := web.PathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req updateItemReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodPatch, "/items/"+pathInt(itemID), uid, nil, req)
	return h.relay(c, resp, err)
}

// GET /items/:id
func (h *Handlers) GetItem(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	itemID, err := web.PathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodGet, "/items/"+pathInt(itemID), uid, nil, nil)
	return h.relay(c, resp, err)
}

// GET /items?from=&size=
func (h *Handlers) ListOwnItems(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	query, err := pageQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodGet, "/items", uid, query, nil)
	return h.relay(c, resp, err)
}

// GET /items/search?text=&from=&size=
func (h *Handlers) SearchItems(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return badRequest(c, err.Error())
	}
	query, err := pageQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	query.Set("text", c.QueryParam("text"))
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodGet, "/items/search", 0, query, nil)
	return h.relay(c, resp, err)
}

// POST /items/:id/comment
func (h *Handlers) AddComment(c echo.Context) error {
	uid, err := web.UserID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	itemID, err := web.PathID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.Cli.Do(c.Request().Context(), http.MethodPost, "/items/"+pathInt(itemID)+"/comment", uid, nil, req)
	return h.relay(c, resp, err)
}

// pageQuery validates from/size and carries them through.
func pageQuery(c echo.Context) (url.Values, error) {
	query := url.Values{}
	limit, offset, err := web.Pagination(c)
	if err != nil {
		return nil, err
	}
	query.Set("from", strconv.Itoa(offset))
	query.Set("size", strconv.Itoa(limit))
	return query, nil
}
