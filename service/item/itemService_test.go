package itemsvc

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"shareit/model"

	"github.com/stretchr/testify/require"
)

type itemsMock struct {
	create  func(ctx context.Context, it *model.Item) error
	byID    func(ctx context.Context, id int64) (*model.Item, error)
	byOwner func(ctx context.Context, ownerID int64, limit, offset int) ([]model.Item, error)
	search  func(ctx context.Context, text string, limit, offset int) ([]model.Item, error)
	update  func(ctx context.Context, it *model.Item) error
}

func (m *itemsMock) Create(ctx context.Context, it *model.Item) error {
	if m.create == nil {
		it.ID = 5
		return nil
	}
	return m.create(ctx, it)
}

func (m *itemsMock) ByID(ctx context.Context, id int64) (*model.Item, error) {
	return m.byID(ctx, id)
}

func (m *itemsMock) ByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Item, error) {
	return m.byOwner(ctx, ownerID, limit, offset)
}

func (m *itemsMock) Search(ctx context.Context, text string, limit, offset int) ([]model.Item, error) {
	return m.search(ctx, text, limit, offset)
}

func (m *itemsMock) Update(ctx context.Context, it *model.Item) error {
	if m.update == nil {
		return nil
	}
	return m.update(ctx, it)
}

type usersMock struct {
	byID func(ctx context.Context, id int64) (*model.User, error)
}

func (m *usersMock) ByID(ctx context.Context, id int64) (*model.User, error) {
	if m.byID == nil {
		return &model.User{ID: id, Name: "user", Email: "u@example.com"}, nil
	}
	return m.byID(ctx, id)
}

type requestsMock struct {
	byID func(ctx context.Context, id int64) (*model.ItemRequest, error)
}

func (m *requestsMock) ByID(ctx context.Context, id int64) (*model.ItemRequest, error) {
	return m.byID(ctx, id)
}

type bookingsMock struct {
	last        func(ctx context.Context, itemID int64, now time.Time) (*model.BookingRef, error)
	next        func(ctx context.Context, itemID int64, now time.Time) (*model.BookingRef, error)
	hasFinished func(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

func (m *bookingsMock) LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingRef, error) {
	if m.last == nil {
		return nil, nil
	}
	return m.last(ctx, itemID, now)
}

func (m *bookingsMock) NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingRef, error) {
	if m.next == nil {
		return nil, nil
	}
	return m.next(ctx, itemID, now)
}

func (m *bookingsMock) HasFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	if m.hasFinished == nil {
		return false, nil
	}
	return m.hasFinished(ctx, itemID, bookerID, now)
}

type commentsMock struct {
	create func(ctx context.Context, c *model.Comment) error
	byItem func(ctx context.Context, itemID int64) ([]model.Comment, error)
}

func (m *commentsMock) Create(ctx context.Context, c *model.Comment) error {
	if m.create == nil {
		c.ID = 1
		return nil
	}
	return m.create(ctx, c)
}

func (m *commentsMock) ByItem(ctx context.Context, itemID int64) ([]model.Comment, error) {
	if m.byItem == nil {
		return nil, nil
	}
	return m.byItem(ctx, itemID)
}

type viewsMock struct {
	recorded [][2]int64
}

func (m *viewsMock) Record(userID, itemID int64) {
	m.recorded = append(m.recorded, [2]int64{userID, itemID})
}

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

type deps struct {
	items    *itemsMock
	users    *usersMock
	requests *requestsMock
	bookings *bookingsMock
	comments *commentsMock
	views    *viewsMock
}

func newService(d deps) (Service, *viewsMock) {
	if d.items == nil {
		d.items = &itemsMock{}
	}
	if d.users == nil {
		d.users = &usersMock{}
	}
	if d.requests == nil {
		d.requests = &requestsMock{}
	}
	if d.bookings == nil {
		d.bookings = &bookingsMock{}
	}
	if d.comments == nil {
		d.comments = &commentsMock{}
	}
	if d.views == nil {
		d.views = &viewsMock{}
	}
	return New(d.items, d.users, d.requests, d.bookings, d.comments, d.views, testLog), d.views
}

func drill(owner int64) *model.Item {
	return &model.Item{ID: 5, Name: "Drill", Description: "cordless drill", Available: true, OwnerID: owner}
}

func TestCreate_AgainstOwnRequestRejected(t *testing.T) {
	requests := &requestsMock{byID: func(ctx context.Context, id int64) (*model.ItemRequest, error) {
		return &model.ItemRequest{ID: id, RequestorID: 1}, nil
	}}
	s, _ := newService(deps{requests: requests})

	reqID := int64(3)
	_, err := s.Create(context.Background(), 1, model.Item{Name: "Drill"}, &reqID)
	require.Error(t, err)
	require.Equal(t, model.ErrInvalidState, model.Code(err))
}

func TestCreate_MissingRequest(t *testing.T) {
	requests := &requestsMock{byID: func(ctx context.Context, id int64) (*model.ItemRequest, error) {
		return nil, sql.ErrNoRows
	}}
	s, _ := newService(deps{requests: requests})

	reqID := int64(3)
	_, err := s.Create(context.Background(), 1, model.Item{Name: "Drill"}, &reqID)
	require.Error(t, err)
	require.Equal(t, model.ErrNotFound, model.Code(err))
}

func TestUpdate_NonOwnerMaskedAsNotFound(t *testing.T) {
	items := &itemsMock{byID: func(ctx context.Context, id int64) (*model.Item, error) {
		return drill(1), nil
	}}
	s, _ := newService(deps{items: items})

	name := "Hammer"
	_, err := s.Update(context.Background(), 2, 5, model.ItemPatch{Name: &name})
	require.Error(t, err)
	require.Equal(t, model.ErrNotFound, model.Code(err))
}

func TestUpdate_BlankFieldsIgnored(t *testing.T) {
	items := &itemsMock{byID: func(ctx context.Context, id int64) (*model.Item, error) {
		return drill(1), nil
	}}
	s, _ := newService(deps{items: items})

	blank := "  "
	avail := false
	out, err := s.Update(context.Background(), 1, 5, model.ItemPatch{Name: &blank, Available: &avail})
	require.NoError(t, err)
	require.Equal(t, "Drill", out.Name)
	require.False(t, out.Available)
}

func TestGetByID_BookingFieldsOwnerOnly(t *testing.T) {
	items := &itemsMock{byID: func(ctx context.Context, id int64) (*model.Item, error) {
		return drill(1), nil
	}}
	bookings := &bookingsMock{
		last: func(ctx context.Context, itemID int64, now time.Time) (*model.BookingRef, error) {
			return &model.BookingRef{ID: 10, BookerID: 2}, nil
		},
		next: func(ctx context.Context, itemID int64, now time.Time) (*model.BookingRef, error) {
			return &model.BookingRef{ID: 11, BookerID: 3}, nil
		},
	}

	s, views := newService(deps{items: items, bookings: bookings})

	asOwner, err := s.GetByID(context.Background(), 1, 5)
	require.NoError(t, err)
	require.NotNil(t, asOwner.LastBooking)
	require.NotNil(t, asOwner.NextBooking)

	asOther, err := s.GetByID(context.Background(), 2, 5)
	require.NoError(t, err)
	require.Nil(t, asOther.LastBooking)
	require.Nil(t, asOther.NextBooking)

	// both lookups leave a view behind
	require.Equal(t, [][2]int64{{1, 5}, {2, 5}}, views.recorded)
}

func TestSearch_BlankQueryIsEmpty(t *testing.T) {
	s, _ := newService(deps{})

	out, err := s.Search(context.Background(), "   ", 10, 0)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestAddComment_RequiresFinishedApprovedBooking(t *testing.T) {
	items := &itemsMock{byID: func(ctx context.Context, id int64) (*model.Item, error) {
		return drill(1), nil
	}}
	s, _ := newService(deps{items: items})

	_, err := s.AddComment(context.Background(), 2, 5, "Great drill")
	require.Error(t, err)
	require.Equal(t, model.ErrInvalidState, model.Code(err))
}

func TestAddComment_Success(t *testing.T) {
	items := &itemsMock{byID: func(ctx context.Context, id int64) (*model.Item, error) {
		return drill(1), nil
	}}
	bookings := &bookingsMock{hasFinished: func(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
		return true, nil
	}}
	users := &usersMock{byID: func(ctx context.Context, id int64) (*model.User, error) {
		return &model.User{ID: id, Name: "Bella"}, nil
	}}
	s, _ := newService(deps{items: items, bookings: bookings, users: users})

	c, err := s.AddComment(context.Background(), 2, 5, "Great drill")
	require.NoError(t, err)
	require.Equal(t, "Great drill", c.Text)
	require.Equal(t, "Bella", c.AuthorName)
	require.Equal(t, int64(5), c.ItemID)
}
