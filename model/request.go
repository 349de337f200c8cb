package model

// ItemRequest is a "wanted" posting; Items holds the listings created
// in answer to it (derived, attached only on detail views).
type ItemRequest struct {
	ID          int64    `json:"id"`
	Description string   `json:"description"`
	RequestorID int64    `json:"requestorId"`
	Created     DateTime `json:"created"`
	Items       []Item   `json:"items,omitempty"`
}
