package usersvc

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"shareit/model"

	"github.com/stretchr/testify/require"
)

type repoMock struct {
	createFn  func(ctx context.Context, u *model.User) error
	byIDFn    func(ctx context.Context, id int64) (*model.User, error)
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	listFn    func(ctx context.Context) ([]model.User, error)
	updateFn  func(ctx context.Context, u *model.User) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *repoMock) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		u.ID = 1
		return nil
	}
	return m.createFn(ctx, u)
}

func (m *repoMock) ByID(ctx context.Context, id int64) (*model.User, error) {
	return m.byIDFn(ctx, id)
}

func (m *repoMock) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, sql.ErrNoRows
	}
	return m.byEmailFn(ctx, email)
}

func (m *repoMock) List(ctx context.Context) ([]model.User, error) { return m.listFn(ctx) }

func (m *repoMock) Update(ctx context.Context, u *model.User) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, u)
}

func (m *repoMock) Delete(ctx context.Context, id int64) error { return m.deleteFn(ctx, id) }

var testLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestCreate_Success(t *testing.T) {
	s := New(&repoMock{}, testLog)

	u, err := s.Create(context.Background(), "Ann", "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, "ann@example.com", u.Email)
}

func TestCreate_InvalidEmail(t *testing.T) {
	s := New(&repoMock{}, testLog)

	for _, email := range []string{"", "   ", "not-an-email"} {
		_, err := s.Create(context.Background(), "Ann", email)
		require.Error(t, err, "email %q", email)
		require.Equal(t, model.ErrBadRequest, model.Code(err))
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	m := &repoMock{byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
		return &model.User{ID: 9, Email: email}, nil
	}}
	s := New(m, testLog)

	_, err := s.Create(context.Background(), "Ann", "taken@example.com")
	require.Error(t, err)
	require.Equal(t, model.ErrDuplicateEmail, model.Code(err))
}

func TestUpdate_PartialPatch(t *testing.T) {
	m := &repoMock{byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
		return &model.User{ID: id, Name: "Ann", Email: "ann@example.com"}, nil
	}}
	s := New(m, testLog)

	name := "Anna"
	u, err := s.Update(context.Background(), 1, model.UserPatch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Anna", u.Name)
	require.Equal(t, "ann@example.com", u.Email)
}

func TestUpdate_KeepOwnEmail(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Name: "Ann", Email: "ann@example.com"}, nil
		},
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 1, Email: email}, nil
		},
	}
	s := New(m, testLog)

	email := "ann@example.com"
	_, err := s.Update(context.Background(), 1, model.UserPatch{Email: &email})
	require.NoError(t, err)
}

func TestUpdate_EmailTakenByOther(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Name: "Ann", Email: "ann@example.com"}, nil
		},
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 2, Email: email}, nil
		},
	}
	s := New(m, testLog)

	email := "bob@example.com"
	_, err := s.Update(context.Background(), 1, model.UserPatch{Email: &email})
	require.Error(t, err)
	require.Equal(t, model.ErrDuplicateEmail, model.Code(err))
}

func TestGetByID_NotFound(t *testing.T) {
	m := &repoMock{byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
		return nil, sql.ErrNoRows
	}}
	s := New(m, testLog)

	_, err := s.GetByID(context.Background(), 99)
	require.Error(t, err)
	require.Equal(t, model.ErrNotFound, model.Code(err))
}

func TestDelete_NotFound(t *testing.T) {
	m := &repoMock{deleteFn: func(ctx context.Context, id int64) error {
		return sql.ErrNoRows
	}}
	s := New(m, testLog)

	err := s.Delete(context.Background(), 99)
	require.Error(t, err)
	require.Equal(t, model.ErrNotFound, model.Code(err))
}

func TestDelete_PlainErrorPassesThrough(t *testing.T) {
	boom := errors.New("db down")
	m := &repoMock{deleteFn: func(ctx context.Context, id int64) error { return boom }}
	s := New(m, testLog)

	err := s.Delete(context.Background(), 1)
	require.ErrorIs(t, err, boom)
	require.Equal(t, model.ErrCode(""), model.Code(err))
}
