package dto

import (
	"time"

	"chirpynosh_backend/internal/models"
)

// CreateClaimRequest is the claim creation body. ClaimedBy and ClaimerName
// are optional at the shape level: whether they are required depends on the
// caller's identity and is decided by the claim service.
type CreateClaimRequest struct {
	ListingID    string `json:"listing_id" validate:"required"`
	ClaimedBy    string `json:"claimed_by" validate:"omitempty,oneof=recipient public"`
	ClaimerName  string `json:"claimer_name" validate:"omitempty,min=2,max=200"`
	PickupWindow string `json:"pickup_window" validate:"required"`
}

type UpdateClaimStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=claimed picked_up cancelled"`
}

type ClaimResponse struct {
	ID           string             `json:"id"`
	ListingID    string             `json:"listing_id"`
	UserID       *string            `json:"user_id,omitempty"`
	ClaimedBy    models.ClaimedBy   `json:"claimed_by"`
	ClaimerName  string             `json:"claimer_name"`
	PickupWindow string             `json:"pickup_window"`
	Status       models.ClaimStatus `json:"status"`
	Listing      *ListingSummary    `json:"listing,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}
