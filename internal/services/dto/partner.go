package dto

import (
	"time"

	"chirpynosh_backend/internal/models"
)

type CreatePartnerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=200"`
	Type     string `json:"type" validate:"required,oneof=restaurant bakery supermarket cafe other"`
	Address  string `json:"address" validate:"required,min=5,max=500"`
	Verified bool   `json:"verified"`
}

type UpdatePartnerRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Type     *string `json:"type,omitempty" validate:"omitempty,oneof=restaurant bakery supermarket cafe other"`
	Address  *string `json:"address,omitempty" validate:"omitempty,min=5,max=500"`
	Verified *bool   `json:"verified,omitempty"`
}

type PartnerResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Type      models.PartnerType `json:"type"`
	Address   string             `json:"address"`
	Verified  bool               `json:"verified"`
	CreatedAt time.Time          `json:"created_at"`
}

// PartnerSummary is the partner projection embedded in listing responses.
type PartnerSummary struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Type     models.PartnerType `json:"type"`
	Verified bool               `json:"verified"`
}
