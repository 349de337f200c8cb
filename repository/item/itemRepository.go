package itemrepo

import (
	"context"
	"database/sql"

	"shareit/model"
)

type Repo interface {
	Create(ctx context.Context, it *model.Item) error
	ByID(ctx context.Context, id int64) (*model.Item, error)
	ByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Item, error)
	Search(ctx context.Context, text string, limit, offset int) ([]model.Item, error)
	Update(ctx context.Context, it *model.Item) error
	ByRequest(ctx context.Context, requestID int64) ([]model.Item, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const itemCols = `id, name, description, available, owner_id, request_id`

func (r *repo) Create(ctx context.Context, it *model.Item) error {
	const q = `
INSERT INTO items (name, description, available, owner_id, request_id)
VALUES ($1,$2,$3,$4,$5)
RETURNING id`
	return r.db.QueryRowContext(ctx, q,
		it.Name, it.Description, it.Available, it.OwnerID, it.RequestID,
	).Scan(&it.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Item, error) {
	const q = `
SELECT ` + itemCols + `
FROM items
WHERE id = $1`
	return scanItem(r.db.QueryRowContext(ctx, q, id))
}

func (r *repo) ByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Item, error) {
	const q = `
SELECT ` + itemCols + `
FROM items
WHERE owner_id = $1
ORDER BY id
LIMIT $2 OFFSET $3`
	return r.queryItems(ctx, q, ownerID, limit, offset)
}

func (r *repo) Search(ctx context.Context, text string, limit, offset int) ([]model.Item, error) {
	const q = `
SELECT ` + itemCols + `
FROM items
WHERE available = TRUE
  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
ORDER BY id
LIMIT $2 OFFSET $3`
	return r.queryItems(ctx, q, text, limit, offset)
}

func (r *repo) Update(ctx context.Context, it *model.Item) error {
	const q = `
UPDATE items
SET name = $2, description = $3, available = $4
WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, it.ID, it.Name, it.Description, it.Available)
	return err
}

func (r *repo) ByRequest(ctx context.Context, requestID int64) ([]model.Item, error) {
	const q = `
SELECT ` + itemCols + `
FROM items
WHERE request_id = $1
ORDER BY id`
	return r.queryItems(ctx, q, requestID)
}

type rowScanner interface{ Scan(dest ...any) error }

func scanItem(row rowScanner) (*model.Item, error) {
	it := &model.Item{}
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &it.RequestID); err != nil {
		return nil, err
	}
	return it, nil
}

func (r *repo) queryItems(ctx context.Context, q string, args ...any) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}
