package repositories

import (
	"context"
	"errors"

	"chirpynosh_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRecipientNotFound = errors.New("recipient not found")

type RecipientRepository interface {
	Create(ctx context.Context, recipient *models.Recipient) error
	FindByID(ctx context.Context, id string) (*models.Recipient, error)
	// FindByUserID resolves the recipient profile owned by a user, feeding
	// claimant resolution. Absence is reported as ErrRecipientNotFound.
	FindByUserID(ctx context.Context, userID string) (*models.Recipient, error)
	FindAll(ctx context.Context) ([]models.Recipient, error)
	Update(ctx context.Context, recipient *models.Recipient) error
	Delete(ctx context.Context, id string) error
}

type RecipientRepositoryImpl struct {
	db *gorm.DB
}

func NewRecipientRepository(db *gorm.DB) RecipientRepository {
	return &RecipientRepositoryImpl{db: db}
}

func (r *RecipientRepositoryImpl) Create(ctx context.Context, recipient *models.Recipient) error {
	return r.db.WithContext(ctx).Create(recipient).Error
}

func (r *RecipientRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Recipient, error) {
	var recipient models.Recipient
	err := r.db.WithContext(ctx).First(&recipient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}
	return &recipient, nil
}

func (r *RecipientRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*models.Recipient, error) {
	var recipient models.Recipient
	err := r.db.WithContext(ctx).First(&recipient, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}
	return &recipient, nil
}

func (r *RecipientRepositoryImpl) FindAll(ctx context.Context) ([]models.Recipient, error) {
	var recipients []models.Recipient
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&recipients).Error
	return recipients, err
}

func (r *RecipientRepositoryImpl) Update(ctx context.Context, recipient *models.Recipient) error {
	result := r.db.WithContext(ctx).Model(&models.Recipient{}).
		Where("id = ?", recipient.ID).
		Updates(map[string]interface{}{
			"org_name": recipient.OrgName,
			"address":  recipient.Address,
			"capacity": recipient.Capacity,
			"verified": recipient.Verified,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecipientNotFound
	}
	return nil
}

func (r *RecipientRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Recipient{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecipientNotFound
	}
	return nil
}
