package repositories

import (
	"context"
	"errors"
	"time"

	"chirpynosh_backend/internal/models"

	"gorm.io/gorm"
)

var ErrExpirationNotFound = errors.New("expiration item not found")

type ExpirationRepository interface {
	Create(ctx context.Context, item *models.ExpirationItem) error
	FindByID(ctx context.Context, id string) (*models.ExpirationItem, error)
	FindAll(ctx context.Context) ([]models.ExpirationItem, error)
	// FindExpiringSoon returns items expiring between now and the horizon,
	// soonest first.
	FindExpiringSoon(ctx context.Context, now, horizon time.Time) ([]models.ExpirationItem, error)
	Update(ctx context.Context, item *models.ExpirationItem) error
	Delete(ctx context.Context, id string) error
}

type ExpirationRepositoryImpl struct {
	db *gorm.DB
}

func NewExpirationRepository(db *gorm.DB) ExpirationRepository {
	return &ExpirationRepositoryImpl{db: db}
}

func (r *ExpirationRepositoryImpl) Create(ctx context.Context, item *models.ExpirationItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *ExpirationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.ExpirationItem, error) {
	var item models.ExpirationItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpirationNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ExpirationRepositoryImpl) FindAll(ctx context.Context) ([]models.ExpirationItem, error) {
	var items []models.ExpirationItem
	err := r.db.WithContext(ctx).Order("expires_on ASC").Find(&items).Error
	return items, err
}

func (r *ExpirationRepositoryImpl) FindExpiringSoon(ctx context.Context, now, horizon time.Time) ([]models.ExpirationItem, error) {
	var items []models.ExpirationItem
	err := r.db.WithContext(ctx).
		Where("expires_on >= ? AND expires_on <= ?", now, horizon).
		Order("expires_on ASC").
		Find(&items).Error
	return items, err
}

func (r *ExpirationRepositoryImpl) Update(ctx context.Context, item *models.ExpirationItem) error {
	result := r.db.WithContext(ctx).Model(&models.ExpirationItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"item":       item.Item,
			"expires_on": item.ExpiresOn,
			"notes":      item.Notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExpirationNotFound
	}
	return nil
}

func (r *ExpirationRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpirationItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExpirationNotFound
	}
	return nil
}
