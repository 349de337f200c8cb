package userrepo

import (
	"context"
	"database/sql"
	"errors"

	"shareit/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByID(ctx context.Context, id int64) (*model.User, error)
	ByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (name, email)
VALUES ($1,$2)
RETURNING id`
	err := r.db.QueryRowContext(ctx, q, u.Name, u.Email).Scan(&u.ID)
	if isUniqueViolation(err) {
		return model.Err(model.ErrDuplicateEmail, "email already in use: %s", u.Email)
	}
	return err
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `
SELECT id, name, email
FROM users
WHERE id = $1`
	u := &model.User{}
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name, &u.Email); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT id, name, email
FROM users
WHERE email = $1`
	u := &model.User{}
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&u.ID, &u.Name, &u.Email); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) List(ctx context.Context) ([]model.User, error) {
	const q = `
SELECT id, name, email
FROM users
ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *repo) Update(ctx context.Context, u *model.User) error {
	const q = `
UPDATE users
SET name = $2, email = $3
WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, u.ID, u.Name, u.Email)
	if isUniqueViolation(err) {
		return model.Err(model.ErrDuplicateEmail, "email already in use: %s", u.Email)
	}
	return err
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
