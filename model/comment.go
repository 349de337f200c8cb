package model

type Comment struct {
	ID         int64    `json:"id"`
	ItemID     int64    `json:"itemId"`
	AuthorID   int64    `json:"authorId"`
	AuthorName string   `json:"authorName"`
	Text       string   `json:"text"`
	Created    DateTime `json:"created"`
}
