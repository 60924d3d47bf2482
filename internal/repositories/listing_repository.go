package repositories

import (
	"context"
	"errors"

	"chirpynosh_backend/internal/models"

	"gorm.io/gorm"
)

var ErrListingNotFound = errors.New("listing not found")

// ListingCriteria filters and paginates listing queries.
type ListingCriteria struct {
	Category    models.ListingCategory `form:"category"`
	ListingType models.ListingType     `form:"listing_type"`
	PartnerID   string                 `form:"partner_id"`
	Page        int                    `form:"page"`
	PageSize    int                    `form:"page_size"`
}

type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	FindByID(ctx context.Context, id string) (*models.Listing, error)
	FindAll(ctx context.Context, criteria ListingCriteria) ([]models.Listing, int64, error)
	Update(ctx context.Context, listing *models.Listing) error
	Delete(ctx context.Context, id string) error
}

type ListingRepositoryImpl struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &ListingRepositoryImpl{db: db}
}

func (r *ListingRepositoryImpl) Create(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *ListingRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.WithContext(ctx).Preload("Partner").First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepositoryImpl) FindAll(ctx context.Context, criteria ListingCriteria) ([]models.Listing, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Listing{})

	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.ListingType != "" {
		query = query.Where("listing_type = ?", criteria.ListingType)
	}
	if criteria.PartnerID != "" {
		query = query.Where("partner_id = ?", criteria.PartnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	var listings []models.Listing
	err := query.Preload("Partner").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&listings).Error

	return listings, total, err
}

func (r *ListingRepositoryImpl) Update(ctx context.Context, listing *models.Listing) error {
	result := r.db.WithContext(ctx).Model(&models.Listing{}).
		Where("id = ?", listing.ID).
		Updates(map[string]interface{}{
			"title":            listing.Title,
			"description":      listing.Description,
			"category":         listing.Category,
			"listing_type":     listing.ListingType,
			"quantity":         listing.Quantity,
			"price_eur":        listing.PriceEur,
			"pickup_windows":   listing.PickupWindows,
			"predicted_window": listing.PredictedWindow,
			"image_url":        listing.ImageURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (r *ListingRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Listing{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}
