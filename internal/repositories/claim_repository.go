package repositories

import (
	"context"
	"errors"

	"chirpynosh_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrClaimNotFound = errors.New("claim not found")
	// ErrClaimConflict is returned when a racing writer changed the claim's
	// status between the caller's read and the transactional write.
	ErrClaimConflict = errors.New("claim was modified concurrently")
)

type ClaimRepository interface {
	FindByID(ctx context.Context, id string) (*models.Claim, error)
	ListByUser(ctx context.Context, userID string) ([]models.Claim, error)
	ListByListing(ctx context.Context, listingID string) ([]models.Claim, error)

	// CreateWithNotification persists the claim and its notification in one
	// transaction. Either both rows become visible together or neither does.
	CreateWithNotification(ctx context.Context, claim *models.Claim, notification *models.Notification) error

	// UpdateStatusWithNotification moves the claim from the expected current
	// status to the new one and, when notification is non-nil, records it in
	// the same transaction. The status write is guarded on fromStatus: the
	// claim is re-read inside the transaction and a mismatch, or zero rows
	// affected by the guarded update, is reported as ErrClaimConflict so the
	// later of two racing contradictory writes loses.
	UpdateStatusWithNotification(ctx context.Context, id string, fromStatus, toStatus models.ClaimStatus, notification *models.Notification) (*models.Claim, error)
}

type ClaimRepositoryImpl struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &ClaimRepositoryImpl{db: db}
}

func (r *ClaimRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.WithContext(ctx).Preload("Listing").First(&claim, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	return &claim, nil
}

func (r *ClaimRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]models.Claim, error) {
	var claims []models.Claim
	err := r.db.WithContext(ctx).
		Preload("Listing").Preload("Listing.Partner").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}

func (r *ClaimRepositoryImpl) ListByListing(ctx context.Context, listingID string) ([]models.Claim, error) {
	var claims []models.Claim
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}

func (r *ClaimRepositoryImpl) CreateWithNotification(ctx context.Context, claim *models.Claim, notification *models.Notification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(claim).Error; err != nil {
			return err
		}
		return tx.Create(notification).Error
	})
}

func (r *ClaimRepositoryImpl) UpdateStatusWithNotification(ctx context.Context, id string, fromStatus, toStatus models.ClaimStatus, notification *models.Notification) (*models.Claim, error) {
	var claim models.Claim

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&claim, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClaimNotFound
			}
			return err
		}

		// The caller validated the transition against fromStatus; a racing
		// writer that committed in between invalidates that validation.
		if claim.Status != fromStatus {
			return ErrClaimConflict
		}

		result := tx.Model(&models.Claim{}).
			Where("id = ? AND status = ?", id, fromStatus).
			Update("status", toStatus)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrClaimConflict
		}
		claim.Status = toStatus

		if notification != nil {
			if err := tx.Create(notification).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &claim, nil
}
