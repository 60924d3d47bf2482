package dto

import "time"

type CreateExpirationRequest struct {
	Item      string `json:"item" validate:"required,min=2,max=200"`
	ExpiresOn string `json:"expires_on" validate:"required,dateonly"`
	Notes     string `json:"notes" validate:"omitempty,max=500"`
}

type UpdateExpirationRequest struct {
	Item      *string `json:"item,omitempty" validate:"omitempty,min=2,max=200"`
	ExpiresOn *string `json:"expires_on,omitempty" validate:"omitempty,dateonly"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type ExpirationResponse struct {
	ID        string    `json:"id"`
	Item      string    `json:"item"`
	ExpiresOn string    `json:"expires_on"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
