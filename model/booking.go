package model

type BookingStatus string

const (
	BookingWaiting  BookingStatus = "WAITING"
	BookingApproved BookingStatus = "APPROVED"
	BookingRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID       int64         `json:"id"`
	ItemID   int64         `json:"itemId"`
	BookerID int64         `json:"bookerId"`
	Start    DateTime      `json:"start"`
	End      DateTime      `json:"end"`
	Status   BookingStatus `json:"status"`
}

// BookingRef is the short booking shape embedded in item responses.
type BookingRef struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// BookingState filters booking lists.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseState maps the ?state= query value to a filter. Empty means ALL.
func ParseState(s string) (BookingState, error) {
	if s == "" {
		return StateAll, nil
	}
	switch st := BookingState(s); st {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return st, nil
	}
	return "", Err(ErrBadRequest, "Unknown state: %s", s)
}
