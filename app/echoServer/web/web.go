// Package web holds the small pieces shared by every controller:
// caller identification, pagination, and the error→status mapping.
package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"shareit/model"

	"github.com/labstack/echo/v4"
)

// HeaderSharerUserID identifies the caller on every authenticated
// route. The gateway is trusted to have validated it.
const HeaderSharerUserID = "X-Sharer-User-Id"

// UserID parses the caller id header; absent or garbage is an error.
func UserID(c echo.Context) (int64, error) {
	raw := c.Request().Header.Get(HeaderSharerUserID)
	if raw == "" {
		return 0, model.Err(model.ErrBadRequest, "missing %s header", HeaderSharerUserID)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, model.Err(model.ErrBadRequest, "invalid %s header: %q", HeaderSharerUserID, raw)
	}
	return id, nil
}

// PathID parses a positive int64 path parameter.
func PathID(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, model.Err(model.ErrBadRequest, "invalid %s: %q", name, raw)
	}
	return id, nil
}

// Pagination reads ?from=&size= with the defaults the API promises.
func Pagination(c echo.Context) (limit, offset int, err error) {
	offset = 0
	limit = 10
	if raw := c.QueryParam("from"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, model.Err(model.ErrBadRequest, "invalid from: %q", raw)
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return 0, 0, model.Err(model.ErrBadRequest, "invalid size: %q", raw)
		}
	}
	return limit, offset, nil
}

// Error translates a domain error into the flat JSON error body.
func Error(c echo.Context, log *slog.Logger, err error) error {
	switch model.Code(err) {
	case model.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case model.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case model.ErrBadRequest, model.ErrInvalidState:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case model.ErrDuplicateEmail:
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		log.Error("unhandled error", "err", err, "req_id", rid, "path", c.Path())
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
