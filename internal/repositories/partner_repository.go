package repositories

import (
	"context"
	"errors"

	"chirpynosh_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPartnerNotFound = errors.New("partner not found")

type PartnerRepository interface {
	Create(ctx context.Context, partner *models.Partner) error
	FindByID(ctx context.Context, id string) (*models.Partner, error)
	FindAll(ctx context.Context) ([]models.Partner, error)
	Update(ctx context.Context, partner *models.Partner) error
	Delete(ctx context.Context, id string) error
}

type PartnerRepositoryImpl struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &PartnerRepositoryImpl{db: db}
}

func (r *PartnerRepositoryImpl) Create(ctx context.Context, partner *models.Partner) error {
	return r.db.WithContext(ctx).Create(partner).Error
}

func (r *PartnerRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.WithContext(ctx).First(&partner, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return &partner, nil
}

func (r *PartnerRepositoryImpl) FindAll(ctx context.Context) ([]models.Partner, error) {
	var partners []models.Partner
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&partners).Error
	return partners, err
}

func (r *PartnerRepositoryImpl) Update(ctx context.Context, partner *models.Partner) error {
	result := r.db.WithContext(ctx).Model(&models.Partner{}).
		Where("id = ?", partner.ID).
		Updates(map[string]interface{}{
			"name":     partner.Name,
			"type":     partner.Type,
			"address":  partner.Address,
			"verified": partner.Verified,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPartnerNotFound
	}
	return nil
}

func (r *PartnerRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Partner{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPartnerNotFound
	}
	return nil
}
