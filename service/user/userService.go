package usersvc

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"shareit/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByID(ctx context.Context, id int64) (*model.User, error)
	ByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	Create(ctx context.Context, name, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	r   Repo
	log *slog.Logger
}

func New(r Repo, log *slog.Logger) Service { return &service{r: r, log: log} }

func (s *service) Create(ctx context.Context, name, email string) (*model.User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(ctx, email, 0); err != nil {
		return nil, err
	}

	u := &model.User{Name: name, Email: email}
	if err := s.r.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user created", "id", u.ID, "email", u.Email)
	return u, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.r.ByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.Err(model.ErrNotFound, "user not found: %d", id)
	}
	return u, err
}

func (s *service) GetAll(ctx context.Context) ([]model.User, error) {
	return s.r.List(ctx)
}

func (s *service) Update(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		u.Name = *patch.Name
	}
	if patch.Email != nil && strings.TrimSpace(*patch.Email) != "" {
		if err := validateEmail(*patch.Email); err != nil {
			return nil, err
		}
		if err := s.checkEmailFree(ctx, *patch.Email, id); err != nil {
			return nil, err
		}
		u.Email = *patch.Email
	}

	if err := s.r.Update(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user updated", "id", u.ID)
	return u, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	err := s.r.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Err(model.ErrNotFound, "user not found: %d", id)
	}
	if err == nil {
		s.log.Info("user deleted", "id", id)
	}
	return err
}

// checkEmailFree rejects an email already held by another user.
// selfID exempts the user being patched.
func (s *service) checkEmailFree(ctx context.Context, email string, selfID int64) error {
	other, err := s.r.ByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.ID != selfID {
		return model.Err(model.ErrDuplicateEmail, "email already in use: %s", email)
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return model.Err(model.ErrBadRequest, "invalid email: %q", email)
	}
	return nil
}
