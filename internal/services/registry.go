package services

import (
	"chirpynosh_backend/internal/auth"
	"chirpynosh_backend/internal/config"
	"chirpynosh_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires every service with its repositories. Built once at
// startup and handed to the handler layer.
type ServiceContainer struct {
	Auth         AuthService
	Partner      PartnerService
	Recipient    RecipientService
	Listing      ListingService
	Claim        ClaimService
	Notification NotificationService
	Expiration   ExpirationService
	Email        EmailService
}

func NewServiceContainer(db *gorm.DB, cfg *config.Config, codec *auth.TokenCodec) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	partnerRepo := repositories.NewPartnerRepository(db)
	recipientRepo := repositories.NewRecipientRepository(db)
	listingRepo := repositories.NewListingRepository(db)
	claimRepo := repositories.NewClaimRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	expirationRepo := repositories.NewExpirationRepository(db)

	emailService := NewEmailService(cfg)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, codec),
		Partner:      NewPartnerService(partnerRepo),
		Recipient:    NewRecipientService(recipientRepo),
		Listing:      NewListingService(listingRepo, partnerRepo),
		Claim:        NewClaimService(claimRepo, listingRepo, recipientRepo, emailService),
		Notification: NewNotificationService(notificationRepo),
		Expiration:   NewExpirationService(expirationRepo, notificationRepo, emailService),
		Email:        emailService,
	}
}
