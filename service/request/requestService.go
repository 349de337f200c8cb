package requestsvc

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"shareit/model"
)

type Requests interface {
	Create(ctx context.Context, req *model.ItemRequest) error
	ByID(ctx context.Context, id int64) (*model.ItemRequest, error)
	ByRequestor(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	ByOthers(ctx context.Context, requestorID int64, limit, offset int) ([]model.ItemRequest, error)
}

type Users interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type Items interface {
	ByRequest(ctx context.Context, requestID int64) ([]model.Item, error)
}

type Service interface {
	Create(ctx context.Context, requestorID int64, description string) (*model.ItemRequest, error)
	ListOwn(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	ListOthers(ctx context.Context, requestorID int64, limit, offset int) ([]model.ItemRequest, error)
	GetByID(ctx context.Context, userID, requestID int64) (*model.ItemRequest, error)
}

type service struct {
	requests Requests
	users    Users
	items    Items
	log      *slog.Logger
}

func New(requests Requests, users Users, items Items, log *slog.Logger) Service {
	return &service{requests: requests, users: users, items: items, log: log}
}

func (s *service) Create(ctx context.Context, requestorID int64, description string) (*model.ItemRequest, error) {
	if _, err := s.user(ctx, requestorID); err != nil {
		return nil, err
	}
	req := &model.ItemRequest{
		Description: description,
		RequestorID: requestorID,
		Created:     model.NewDateTime(time.Now()),
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	s.log.Info("request created", "id", req.ID, "requestor", requestorID)
	return req, nil
}

// ListOwn returns the caller's requests, newest first, each with the
// items listed in answer to it.
func (s *service) ListOwn(ctx context.Context, requestorID int64) ([]model.ItemRequest, error) {
	if _, err := s.user(ctx, requestorID); err != nil {
		return nil, err
	}
	reqs, err := s.requests.ByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	for i := range reqs {
		if err := s.attachItems(ctx, &reqs[i]); err != nil {
			return nil, err
		}
	}
	if reqs == nil {
		reqs = []model.ItemRequest{}
	}
	return reqs, nil
}

// ListOthers returns everyone else's requests, newest first. Items
// are omitted on the list view.
func (s *service) ListOthers(ctx context.Context, requestorID int64, limit, offset int) ([]model.ItemRequest, error) {
	if _, err := s.user(ctx, requestorID); err != nil {
		return nil, err
	}
	reqs, err := s.requests.ByOthers(ctx, requestorID, limit, offset)
	if err != nil {
		return nil, err
	}
	if reqs == nil {
		reqs = []model.ItemRequest{}
	}
	return reqs, nil
}

func (s *service) GetByID(ctx context.Context, userID, requestID int64) (*model.ItemRequest, error) {
	if _, err := s.user(ctx, userID); err != nil {
		return nil, err
	}
	req, err := s.requests.ByID(ctx, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.Err(model.ErrNotFound, "request not found: %d", requestID)
	}
	if err != nil {
		return nil, err
	}
	if err := s.attachItems(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) attachItems(ctx context.Context, req *model.ItemRequest) error {
	items, err := s.items.ByRequest(ctx, req.ID)
	if err != nil {
		return err
	}
	req.Items = items
	return nil
}

func (s *service) user(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.users.ByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.Err(model.ErrNotFound, "user not found: %d", id)
	}
	return u, err
}
