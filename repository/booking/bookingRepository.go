package bookingrepo

import (
	"context"
	"database/sql"
	"time"

	"shareit/model"
)

type Repo interface {
	Create(ctx context.Context, b *model.Booking) error
	ByID(ctx context.Context, id int64) (*model.Booking, error)

	// SetStatusIfWaiting flips WAITING to the given status in one
	// conditional UPDATE; false means the booking was not WAITING.
	SetStatusIfWaiting(ctx context.Context, id int64, status model.BookingStatus) (bool, error)

	ListByBooker(ctx context.Context, bookerID int64, state model.BookingState, now time.Time, limit, offset int) ([]model.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, state model.BookingState, now time.Time, limit, offset int) ([]model.Booking, error)

	LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingRef, error)
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingRef, error)

	HasFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
	OverlapsApproved(ctx context.Context, itemID int64, start, end time.Time) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const bookingCols = `id, item_id, booker_id, start_date, end_date, status`

func (r *repo) Create(ctx context.Context, b *model.Booking) error {
	const q = `
INSERT INTO bookings (item_id, booker_id, start_date, end_date, status)
VALUES ($1,$2,$3,$4,$5)
RETURNING id`
	return r.db.QueryRowContext(ctx, q,
		b.ItemID, b.BookerID, b.Start.Time, b.End.Time, b.Status,
	).Scan(&b.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Booking, error) {
	const q = `
SELECT ` + bookingCols + `
FROM bookings
WHERE id = $1`
	return scanBooking(r.db.QueryRowContext(ctx, q, id))
}

func (r *repo) SetStatusIfWaiting(ctx context.Context, id int64, status model.BookingStatus) (bool, error) {
	const q = `
UPDATE bookings
SET status = $2
WHERE id = $1
  AND status = 'WAITING'`
	res, err := r.db.ExecContext(ctx, q, id, status)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	return aff > 0, err
}

// stateClause renders the list filter against columns of alias b.
// $2 is always bound to now so the argument list stays uniform.
func stateClause(state model.BookingState) string {
	switch state {
	case model.StateCurrent:
		return `AND b.start_date <= $2 AND b.end_date >= $2`
	case model.StatePast:
		return `AND b.end_date < $2`
	case model.StateFuture:
		return `AND b.start_date > $2`
	case model.StateWaiting:
		return `AND b.status = 'WAITING' AND $2::timestamp IS NOT NULL`
	case model.StateRejected:
		return `AND b.status = 'REJECTED' AND $2::timestamp IS NOT NULL`
	default:
		return `AND $2::timestamp IS NOT NULL`
	}
}

func (r *repo) ListByBooker(ctx context.Context, bookerID int64, state model.BookingState, now time.Time, limit, offset int) ([]model.Booking, error) {
	q := `
SELECT b.id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status
FROM bookings b
WHERE b.booker_id = $1
` + stateClause(state) + `
ORDER BY b.start_date DESC
LIMIT $3 OFFSET $4`
	return r.queryBookings(ctx, q, bookerID, now, limit, offset)
}

func (r *repo) ListByOwner(ctx context.Context, ownerID int64, state model.BookingState, now time.Time, limit, offset int) ([]model.Booking, error) {
	q := `
SELECT b.id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE i.owner_id = $1
` + stateClause(state) + `
ORDER BY b.start_date DESC
LIMIT $3 OFFSET $4`
	return r.queryBookings(ctx, q, ownerID, now, limit, offset)
}

func (r *repo) LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingRef, error) {
	const q = `
SELECT id, booker_id
FROM bookings
WHERE item_id = $1
  AND status = 'APPROVED'
  AND end_date < $2
ORDER BY end_date DESC
LIMIT 1`
	return r.queryRef(ctx, q, itemID, now)
}

func (r *repo) NextForItem(ctx context.Context, itemID int64, now time.Time) (*model.BookingRef, error) {
	const q = `
SELECT id, booker_id
FROM bookings
WHERE item_id = $1
  AND status = 'APPROVED'
  AND start_date > $2
ORDER BY start_date ASC
LIMIT 1`
	return r.queryRef(ctx, q, itemID, now)
}

func (r *repo) HasFinishedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	const q = `
SELECT EXISTS (
	SELECT 1
	FROM bookings
	WHERE item_id = $1
	  AND booker_id = $2
	  AND status = 'APPROVED'
	  AND end_date < $3
)`
	var ok bool
	err := r.db.QueryRowContext(ctx, q, itemID, bookerID, now).Scan(&ok)
	return ok, err
}

func (r *repo) OverlapsApproved(ctx context.Context, itemID int64, start, end time.Time) (bool, error) {
	const q = `
SELECT EXISTS (
	SELECT 1
	FROM bookings
	WHERE item_id = $1
	  AND status = 'APPROVED'
	  AND start_date < $3
	  AND end_date > $2
)`
	var ok bool
	err := r.db.QueryRowContext(ctx, q, itemID, start, end).Scan(&ok)
	return ok, err
}

type rowScanner interface{ Scan(dest ...any) error }

func scanBooking(row rowScanner) (*model.Booking, error) {
	b := &model.Booking{}
	if err := row.Scan(&b.ID, &b.ItemID, &b.BookerID, &b.Start, &b.End, &b.Status); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) queryBookings(ctx context.Context, q string, args ...any) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *repo) queryRef(ctx context.Context, q string, args ...any) (*model.BookingRef, error) {
	ref := &model.BookingRef{}
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&ref.ID, &ref.BookerID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ref, nil
}
