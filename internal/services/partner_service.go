package services

import (
	"context"
	"errors"

	"chirpynosh_backend/internal/models"
	"chirpynosh_backend/internal/repositories"
	"chirpynosh_backend/internal/services/dto"
	"chirpynosh_backend/pkg/apperrors"
)

type PartnerService interface {
	Create(ctx context.Context, req *dto.CreatePartnerRequest, ownerID string) (*dto.PartnerResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PartnerResponse, error)
	List(ctx context.Context) ([]*dto.PartnerResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdatePartnerRequest) (*dto.PartnerResponse, error)
	Delete(ctx context.Context, id string) error
}

type partnerService struct {
	partnerRepo repositories.PartnerRepository
}

func NewPartnerService(partnerRepo repositories.PartnerRepository) PartnerService {
	return &partnerService{partnerRepo: partnerRepo}
}

func (s *partnerService) Create(ctx context.Context, req *dto.CreatePartnerRequest, ownerID string) (*dto.PartnerResponse, error) {
	partner := &models.Partner{
		Name:     req.Name,
		Type:     models.PartnerType(req.Type),
		Address:  req.Address,
		Verified: req.Verified,
		UserID:   ownerID,
	}
	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildPartnerResponse(partner), nil
}

func (s *partnerService) GetByID(ctx context.Context, id string) (*dto.PartnerResponse, error) {
	partner, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPartnerNotFound) {
			return nil, apperrors.NewNotFoundError("Partner")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildPartnerResponse(partner), nil
}

func (s *partnerService) List(ctx context.Context) ([]*dto.PartnerResponse, error) {
	partners, err := s.partnerRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.PartnerResponse, 0, len(partners))
	for i := range partners {
		responses = append(responses, buildPartnerResponse(&partners[i]))
	}
	return responses, nil
}

func (s *partnerService) Update(ctx context.Context, id string, req *dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	partner, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPartnerNotFound) {
			return nil, apperrors.NewNotFoundError("Partner")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.Type != nil {
		partner.Type = models.PartnerType(*req.Type)
	}
	if req.Address != nil {
		partner.Address = *req.Address
	}
	if req.Verified != nil {
		partner.Verified = *req.Verified
	}

	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		if errors.Is(err, repositories.ErrPartnerNotFound) {
			return nil, apperrors.NewNotFoundError("Partner")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildPartnerResponse(partner), nil
}

func (s *partnerService) Delete(ctx context.Context, id string) error {
	if err := s.partnerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPartnerNotFound) {
			return apperrors.NewNotFoundError("Partner")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func buildPartnerResponse(partner *models.Partner) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:        partner.ID,
		Name:      partner.Name,
		Type:      partner.Type,
		Address:   partner.Address,
		Verified:  partner.Verified,
		CreatedAt: partner.CreatedAt,
	}
}
