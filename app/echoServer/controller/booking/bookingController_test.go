package booking

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shareit/app/echoServer/web"
	"shareit/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type svcMock struct {
	create func(ctx context.Context, bookerID, itemID int64, start, end model.DateTime) (*model.Booking, error)
	get    func(ctx context.Context, bookingID, userID int64) (*model.Booking, error)
}

func (m *svcMock) Create(ctx context.Context, bookerID, itemID int64, start, end model.DateTime) (*model.Booking, error) {
	return m.create(ctx, bookerID, itemID, start, end)
}

func (m *svcMock) Approve(ctx context.Context, bookingID, userID int64, approved bool) (*model.Booking, error) {
	return nil, nil
}

func (m *svcMock) GetByID(ctx context.Context, bookingID, userID int64) (*model.Booking, error) {
	return m.get(ctx, bookingID, userID)
}

func (m *svcMock) ListForBooker(ctx context.Context, bookerID int64, state model.BookingState, limit, offset int) ([]model.Booking, error) {
	return []model.Booking{}, nil
}

func (m *svcMock) ListForOwner(ctx context.Context, ownerID int64, state model.BookingState, limit, offset int) ([]model.Booking, error) {
	return []model.Booking{}, nil
}

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestCreate_ErrorToStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", model.Err(model.ErrNotFound, "item not found: 5"), http.StatusNotFound},
		{"invalid state", model.Err(model.ErrInvalidState, "item not available"), http.StatusBadRequest},
		{"forbidden", model.Err(model.ErrForbidden, "only the owner"), http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &Controller{
				Svc: &svcMock{create: func(ctx context.Context, bookerID, itemID int64, start, end model.DateTime) (*model.Booking, error) {
					return nil, tc.err
				}},
				Log: testLog,
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/bookings",
				strings.NewReader(`{"itemId":5,"start":"2026-09-01T10:00:00","end":"2026-09-02T10:00:00"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set(web.HeaderSharerUserID, "1")
			rec := httptest.NewRecorder()

			err := h.Create(e.NewContext(req, rec))
			require.NoError(t, err)
			require.Equal(t, tc.want, rec.Code)
			require.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestCreate_MissingHeader(t *testing.T) {
	h := &Controller{Svc: &svcMock{}, Log: testLog}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"itemId":5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Create(e.NewContext(req, rec))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGet_Success(t *testing.T) {
	h := &Controller{
		Svc: &svcMock{get: func(ctx context.Context, bookingID, userID int64) (*model.Booking, error) {
			return &model.Booking{ID: bookingID, ItemID: 5, BookerID: userID, Status: model.BookingWaiting}, nil
		}},
		Log: testLog,
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookings/7", nil)
	req.Header.Set(web.HeaderSharerUserID, "1")
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetPath("/bookings/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")

	err := h.Get(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"WAITING"`)
}
