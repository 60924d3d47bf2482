package services

import (
	"context"
	"errors"

	"chirpynosh_backend/internal/models"
	"chirpynosh_backend/internal/repositories"
	"chirpynosh_backend/internal/services/dto"
	"chirpynosh_backend/pkg/apperrors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListingService interface {
	Create(ctx context.Context, req *dto.CreateListingRequest) (*dto.ListingResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ListingResponse, error)
	List(ctx context.Context, criteria repositories.ListingCriteria) (*dto.ListingListResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateListingRequest) (*dto.ListingResponse, error)
	Delete(ctx context.Context, id string) error
}

type listingService struct {
	listingRepo repositories.ListingRepository
	partnerRepo repositories.PartnerRepository
}

func NewListingService(listingRepo repositories.ListingRepository, partnerRepo repositories.PartnerRepository) ListingService {
	return &listingService{listingRepo: listingRepo, partnerRepo: partnerRepo}
}

// predictWindow picks the suggested pickup window for a listing. The windows
// are stored in the order the partner entered them, latest last, and the last
// one historically sees the most pickups.
func predictWindow(windows []string) *string {
	if len(windows) == 0 {
		return nil
	}
	last := windows[len(windows)-1]
	return &last
}

func (s *listingService) Create(ctx context.Context, req *dto.CreateListingRequest) (*dto.ListingResponse, error) {
	partner, err := s.partnerRepo.FindByID(ctx, req.PartnerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPartnerNotFound) {
			return nil, apperrors.NewNotFoundError("Partner")
		}
		return nil, apperrors.InternalError(err)
	}

	listing := &models.Listing{
		Title:           req.Title,
		Description:     req.Description,
		Category:        models.ListingCategory(req.Category),
		ListingType:     models.ListingType(req.ListingType),
		Quantity:        req.Quantity,
		PriceEur:        req.PriceEur,
		PredictedWindow: predictWindow(req.PickupWindows),
		ImageURL:        req.ImageURL,
		PartnerID:       partner.ID,
	}
	if err := listing.SetWindows(req.PickupWindows); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Donations never carry a price.
	if listing.ListingType == models.ListingTypeDonation {
		listing.PriceEur = nil
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, apperrors.InternalError(err)
	}

	listing.Partner = partner
	return buildListingResponse(listing), nil
}

func (s *listingService) GetByID(ctx context.Context, id string) (*dto.ListingResponse, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.NewNotFoundError("Listing")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildListingResponse(listing), nil
}

func (s *listingService) List(ctx context.Context, criteria repositories.ListingCriteria) (*dto.ListingListResponse, error) {
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 {
		criteria.PageSize = defaultPageSize
	}
	if criteria.PageSize > maxPageSize {
		criteria.PageSize = maxPageSize
	}

	listings, total, err := s.listingRepo.FindAll(ctx, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, buildListingResponse(&listings[i]))
	}
	return &dto.ListingListResponse{
		Listings: responses,
		Total:    total,
		Page:     criteria.Page,
		PageSize: criteria.PageSize,
	}, nil
}

func (s *listingService) Update(ctx context.Context, id string, req *dto.UpdateListingRequest) (*dto.ListingResponse, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.NewNotFoundError("Listing")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Category != nil {
		listing.Category = models.ListingCategory(*req.Category)
	}
	if req.ListingType != nil {
		listing.ListingType = models.ListingType(*req.ListingType)
	}
	if req.Quantity != nil {
		listing.Quantity = *req.Quantity
	}
	if req.PriceEur != nil {
		listing.PriceEur = req.PriceEur
	}
	if req.ImageURL != nil {
		listing.ImageURL = req.ImageURL
	}
	if req.PickupWindows != nil {
		// Changing the windows invalidates the previous prediction.
		if err := listing.SetWindows(req.PickupWindows); err != nil {
			return nil, apperrors.InternalError(err)
		}
		listing.PredictedWindow = predictWindow(req.PickupWindows)
	}
	if listing.ListingType == models.ListingTypeDonation {
		listing.PriceEur = nil
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.NewNotFoundError("Listing")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildListingResponse(listing), nil
}

func (s *listingService) Delete(ctx context.Context, id string) error {
	if err := s.listingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrListingNotFound) {
			return apperrors.NewNotFoundError("Listing")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func buildListingResponse(listing *models.Listing) *dto.ListingResponse {
	resp := &dto.ListingResponse{
		ID:              listing.ID,
		Title:           listing.Title,
		Description:     listing.Description,
		Category:        listing.Category,
		ListingType:     listing.ListingType,
		Quantity:        listing.Quantity,
		PriceEur:        listing.PriceEur,
		PickupWindows:   listing.Windows(),
		PredictedWindow: listing.PredictedWindow,
		ImageURL:        listing.ImageURL,
		PartnerID:       listing.PartnerID,
		CreatedAt:       listing.CreatedAt,
	}
	if listing.Partner != nil {
		resp.Partner = &dto.PartnerSummary{
			ID:       listing.Partner.ID,
			Name:     listing.Partner.Name,
			Type:     listing.Partner.Type,
			Verified: listing.Partner.Verified,
		}
	}
	return resp
}
