package itemsvc

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"shareit/model"
)

type Items interface {
	Create(ctx context.Context, it *model.Item) error
	ByID(ctx context.Context, id int64) (*model.Item, error)
	ByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Item, error)
	Search(ctx context.Context, text string, limit, offset int) ([]model.Item, error)
	Update(ctx context.Context, it *model.Item) error
}

type Users interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type Requests interface {
	ByID(ctx context.Context, id int64) (*model.ItemRequest, error)
}

type Bookings interface {
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingRef, error)
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingRef, error)
	HasFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

type Comments interface {
	Create(ctx context.Context, c *model.Comment) error
	ByItem(ctx context.Context, itemID int64) ([]model.Comment, error)
}

// Views records which items a user has looked at.
type Views interface {
	Record(userID, itemID int64)
}

type Service interface {
	Create(ctx context.Context, ownerID int64, it model.Item, requestID *int64) (*model.Item, error)
	Update(ctx context.Context, ownerID, itemID int64, patch model.ItemPatch) (*model.Item, error)
	GetByID(ctx context.Context, userID, itemID int64) (*model.Item, error)
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Item, error)
	Search(ctx context.Context, text string, limit, offset int) ([]model.Item, error)
	AddComment(ctx context.Context, authorID, itemID int64, text string) (*model.Comment, error)
}

type service struct {
	items    Items
	users    Users
	requests Requests
	bookings Bookings
	comments Comments
	views    Views
	log      *slog.Logger
}

func New(items Items, users Users, requests Requests, bookings Bookings, comments Comments, views Views, log *slog.Logger) Service {
	return &service{
		items:    items,
		users:    users,
		requests: requests,
		bookings: bookings,
		comments: comments,
		views:    views,
		log:      log,
	}
}

func (s *service) Create(ctx context.Context, ownerID int64, it model.Item, requestID *int64) (*model.Item, error) {
	if _, err := s.user(ctx, ownerID); err != nil {
		return nil, err
	}
	if requestID != nil {
		req, err := s.requests.ByID(ctx, *requestID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.Err(model.ErrNotFound, "request not found: %d", *requestID)
		}
		if err != nil {
			return nil, err
		}
		if req.RequestorID == ownerID {
			return nil, model.Err(model.ErrInvalidState, "cannot answer your own request")
		}
	}

	it.OwnerID = ownerID
	it.RequestID = requestID
	if err := s.items.Create(ctx, &it); err != nil {
		return nil, err
	}
	s.log.Info("item created", "id", it.ID, "owner", ownerID)
	return &it, nil
}

func (s *service) Update(ctx context.Context, ownerID, itemID int64, patch model.ItemPatch) (*model.Item, error) {
	it, err := s.item(ctx, itemID)
	if err != nil {
		return nil, err
	}
	// Non-owners get not-found, never forbidden.
	if it.OwnerID != ownerID {
		return nil, model.Err(model.ErrNotFound, "item not found: %d", itemID)
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		it.Name = *patch.Name
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) != "" {
		it.Description = *patch.Description
	}
	if patch.Available != nil {
		it.Available = *patch.Available
	}

	if err := s.items.Update(ctx, it); err != nil {
		return nil, err
	}
	if err := s.enrich(ctx, it); err != nil {
		return nil, err
	}
	s.log.Info("item updated", "id", itemID)
	return it, nil
}

func (s *service) GetByID(ctx context.Context, userID, itemID int64) (*model.Item, error) {
	it, err := s.item(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// Booking fields are owner-only.
	if it.OwnerID == userID {
		if err := s.enrich(ctx, it); err != nil {
			return nil, err
		}
	}

	comments, err := s.comments.ByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	it.Comments = comments

	s.views.Record(userID, itemID)
	return it, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Item, error) {
	if _, err := s.user(ctx, ownerID); err != nil {
		return nil, err
	}
	items, err := s.items.ByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if err := s.enrich(ctx, &items[i]); err != nil {
			return nil, err
		}
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func (s *service) Search(ctx context.Context, text string, limit, offset int) ([]model.Item, error) {
	// A blank query matches nothing rather than everything.
	if strings.TrimSpace(text) == "" {
		return []model.Item{}, nil
	}
	items, err := s.items.Search(ctx, text, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func (s *service) AddComment(ctx context.Context, authorID, itemID int64, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.Err(model.ErrBadRequest, "comment text must not be blank")
	}
	author, err := s.user(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.item(ctx, itemID); err != nil {
		return nil, err
	}

	ok, err := s.bookings.HasFinishedApproved(ctx, itemID, authorID, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.Err(model.ErrInvalidState, "only a past booker can comment on an item")
	}

	c := &model.Comment{
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Text:       text,
		Created:    model.NewDateTime(time.Now()),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("comment added", "id", c.ID, "item", itemID, "author", authorID)
	return c, nil
}

func (s *service) enrich(ctx context.Context, it *model.Item) error {
	now := time.Now()
	last, err := s.bookings.LastForItem(ctx, it.ID, now)
	if err != nil {
		return err
	}
	next, err := s.bookings.NextForItem(ctx, it.ID, now)
	if err != nil {
		return err
	}
	it.LastBooking = last
	it.NextBooking = next
	return nil
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
