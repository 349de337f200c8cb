package gateway

import "shareit/model"

// Request shapes with the strict validation the backend trusts the
// gateway to have done.

type createUserReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type updateUserReq struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type createItemReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

type updateItemReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type createBookingReq struct {
	ItemID int64          `json:"itemId" validate:"required,gt=0"`
	Start  model.DateTime `json:"start"`
	End    model.DateTime `json:"end"`
}

type commentReq struct {
	Text string `json:"text" validate:"required"`
}

type createRequestReq struct {
	Description string `json:"description" validate:"required"`
}
