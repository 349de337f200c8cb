package bookingsvc

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"shareit/model"
)

type Users interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type Items interface {
	ByID(ctx context.Context, id int64) (*model.Item, error)
}

type Bookings interface {
	Create(ctx context.Context, b *model.Booking) error
	ByID(ctx context.Context, id int64) (*model.Booking, error)
	SetStatusIfWaiting(ctx context.Context, id int64, status model.BookingStatus) (bool, error)
	ListByBooker(ctx context.Context, bookerID int64, state model.BookingState, now time.Time, limit, offset int) ([]model.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, state model.BookingState, now time.Time, limit, offset int) ([]model.Booking, error)
	OverlapsApproved(ctx context.Context, itemID int64, start, end time.Time) (bool, error)
}

type Service interface {
	Create(ctx context.Context, bookerID, itemID int64, start, end model.DateTime) (*model.Booking, error)
	Approve(ctx context.Context, bookingID, userID int64, approved bool) (*model.Booking, error)
	GetByID(ctx context.Context, bookingID, userID int64) (*model.Booking, error)
	ListForBooker(ctx context.Context, bookerID int64, state model.BookingState, limit, offset int) ([]model.Booking, error)
	ListForOwner(ctx context.Context, ownerID int64, state model.BookingState, limit, offset int) ([]model.Booking, error)
}

type service struct {
	users    Users
	items    Items
	bookings Bookings
	log      *slog.Logger
}

func New(users Users, items Items, bookings Bookings, log *slog.Logger) Service {
	return &service{users: users, items: items, bookings: bookings, log: log}
}

func (s *service) Create(ctx context.Context, bookerID, itemID int64, start, end model.DateTime) (*model.Booking, error) {
	if _, err := s.user(ctx, bookerID); err != nil {
		return nil, err
	}
	item, err := s.item(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if !start.Time.Before(end.Time) {
		return nil, model.Err(model.ErrBadRequest, "booking start must be before end")
	}
	if !item.Available {
		return nil, model.Err(model.ErrInvalidState, "item not available for booking: %d", itemID)
	}
	// Booking your own item is masked as not-found.
	if item.OwnerID == bookerID {
		return nil, model.Err(model.ErrNotFound, "item not found: %d", itemID)
	}

	// Policy: a new booking may not overlap an already approved one.
	overlap, err := s.bookings.OverlapsApproved(ctx, itemID, start.Time, end.Time)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, model.Err(model.ErrInvalidState, "booking dates overlap an approved booking")
	}

	b := &model.Booking{
		ItemID:   itemID,
		BookerID: bookerID,
		Start:    start,
		End:      end,
		Status:   model.BookingWaiting,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	s.log.Info("booking created", "id", b.ID, "item", itemID, "booker", bookerID)
	return b, nil
}

func (s *service) Approve(ctx context.Context, bookingID, userID int64, approved bool) (*model.Booking, error) {
	b, err := s.booking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	item, err := s.item(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != userID {
		return nil, model.Err(model.ErrForbidden, "only the owner can approve a booking")
	}
	if b.Status != model.BookingWaiting {
		return nil, model.Err(model.ErrInvalidState, "booking %d is not waiting for approval", bookingID)
	}

	status := model.BookingRejected
	if approved {
		status = model.BookingApproved
	}
	// Conditional update: a concurrent approval loses here instead of
	// double-writing.
	ok, err := s.bookings.SetStatusIfWaiting(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.Err(model.ErrInvalidState, "booking %d is not waiting for approval", bookingID)
	}

	b.Status = status
	s.log.Info("booking resolved", "id", bookingID, "status", status)
	return b, nil
}

func (s *service) GetByID(ctx context.Context, bookingID, userID int64) (*model.Booking, error) {
	b, err := s.booking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	item, err := s.item(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	// Outsiders get the same not-found as a missing booking.
	if b.BookerID != userID && item.OwnerID != userID {
		return nil, model.Err(model.ErrNotFound, "booking not found: %d", bookingID)
	}
	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, bookerID int64, state model.BookingState, limit, offset int) ([]model.Booking, error) {
	if _, err := s.user(ctx, bookerID); err != nil {
		return nil, err
	}
	out, err := s.bookings.ListByBooker(ctx, bookerID, state, time.Now(), limit, offset)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Booking{}
	}
	return out, nil
}

func (s *service) ListForOwner(ctx context.Context, ownerID int64, state model.BookingState, limit, offset int) ([]model.Booking, error) {
	if _, err := s.user(ctx, ownerID); err != nil {
		return nil, err
	}
	out, err := s.bookings.ListByOwner(ctx, ownerID, state, time.Now(), limit, offset)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Booking{}
	}
	return out, nil
}

func (s *service) user(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.users.ByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.Err(model.ErrNotFound, "user not found: %d", id)
	}
	return u, err
}

func (s *service) item(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.items.ByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.Err(model.ErrNotFound, "item not found: %d", id)
	}
	return it, err
}

func (s *service) booking(ctx context.Context, id int64) (*model.Booking, error) {
	b, err := s.bookings.ByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.Err(model.ErrNotFound, "booking not found: %d", id)
	}
	return b, err
}
