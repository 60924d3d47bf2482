package dto

import "time"

type CreateRecipientRequest struct {
	OrgName  string `json:"org_name" validate:"required,min=2,max=200"`
	Address  string `json:"address" validate:"required,min=5,max=500"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
	Verified bool   `json:"verified"`
}

type UpdateRecipientRequest struct {
	OrgName  *string `json:"org_name,omitempty" validate:"omitempty,min=2,max=200"`
	Address  *string `json:"address,omitempty" validate:"omitempty,min=5,max=500"`
	Capacity *int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Verified *bool   `json:"verified,omitempty"`
}

type RecipientResponse struct {
	ID        string    `json:"id"`
	OrgName   string    `json:"org_name"`
	Address   string    `json:"address"`
	Capacity  int       `json:"capacity"`
	Verified  bool      `json:"verified"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
