package handlers

import (
	"chirpynosh_backend/internal/services"
	"chirpynosh_backend/internal/validator"
)

// AppHandlers collects every HTTP handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	Partner      *PartnerHandler
	Recipient    *RecipientHandler
	Listing      *ListingHandler
	Claim        *ClaimHandler
	Notification *NotificationHandler
	Expiration   *ExpirationHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.Auth),
		Partner:      NewPartnerHandler(base, sc.Partner),
		Recipient:    NewRecipientHandler(base, sc.Recipient),
		Listing:      NewListingHandler(base, sc.Listing, sc.Claim),
		Claim:        NewClaimHandler(base, sc.Claim),
		Notification: NewNotificationHandler(base, sc.Notification),
		Expiration:   NewExpirationHandler(base, sc.Expiration),
	}
}
