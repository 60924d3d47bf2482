package dto

import (
	"time"

	"chirpynosh_backend/internal/models"
)

type CreateListingRequest struct {
	Title         string   `json:"title" validate:"required,min=3,max=200"`
	Description   string   `json:"description" validate:"required,min=10,max=2000"`
	Category      string   `json:"category" validate:"required,oneof=bakery produce dairy meals pantry other"`
	ListingType   string   `json:"listing_type" validate:"required,oneof=donation discounted"`
	Quantity      int      `json:"quantity" validate:"required,min=1"`
	PriceEur      *float64 `json:"price_eur,omitempty" validate:"omitempty,gt=0"`
	PickupWindows []string `json:"pickup_windows" validate:"required,min=1,dive,required"`
	ImageURL      *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	PartnerID     string   `json:"partner_id" validate:"required"`
}

type UpdateListingRequest struct {
	Title         *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,min=10,max=2000"`
	Category      *string  `json:"category,omitempty" validate:"omitempty,oneof=bakery produce dairy meals pantry other"`
	ListingType   *string  `json:"listing_type,omitempty" validate:"omitempty,oneof=donation discounted"`
	Quantity      *int     `json:"quantity,omitempty" validate:"omitempty,min=1"`
	PriceEur      *float64 `json:"price_eur,omitempty" validate:"omitempty,gt=0"`
	PickupWindows []string `json:"pickup_windows,omitempty" validate:"omitempty,min=1,dive,required"`
	ImageURL      *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

type ListingResponse struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Category        models.ListingCategory `json:"category"`
	ListingType     models.ListingType     `json:"listing_type"`
	Quantity        int                    `json:"quantity"`
	PriceEur        *float64               `json:"price_eur,omitempty"`
	PickupWindows   []string               `json:"pickup_windows"`
	PredictedWindow *string                `json:"predicted_window,omitempty"`
	ImageURL        *string                `json:"image_url,omitempty"`
	PartnerID       string                 `json:"partner_id"`
	Partner         *PartnerSummary        `json:"partner,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// ListingSummary is the listing projection embedded in claim responses.
type ListingSummary struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Category    models.ListingCategory `json:"category"`
	ListingType models.ListingType     `json:"listing_type"`
}

type ListingListResponse struct {
	Listings []*ListingResponse `json:"listings"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}
