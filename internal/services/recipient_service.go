package services

import (
	"context"
	"errors"

	"chirpynosh_backend/internal/models"
	"chirpynosh_backend/internal/repositories"
	"chirpynosh_backend/internal/services/dto"
	"chirpynosh_backend/pkg/apperrors"
)

type RecipientService interface {
	Create(ctx context.Context, req *dto.CreateRecipientRequest, ownerID string) (*dto.RecipientResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RecipientResponse, error)
	GetByUserID(ctx context.Context, userID string) (*dto.RecipientResponse, error)
	List(ctx context.Context) ([]*dto.RecipientResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateRecipientRequest) (*dto.RecipientResponse, error)
	Delete(ctx context.Context, id string) error
}

type recipientService struct {
	recipientRepo repositories.RecipientRepository
}

func NewRecipientService(recipientRepo repositories.RecipientRepository) RecipientService {
	return &recipientService{recipientRepo: recipientRepo}
}

func (s *recipientService) Create(ctx context.Context, req *dto.CreateRecipientRequest, ownerID string) (*dto.RecipientResponse, error) {
	// One profile per user; a second create is a conflict, not an upsert.
	if _, err := s.recipientRepo.FindByUserID(ctx, ownerID); err == nil {
		return nil, apperrors.NewAlreadyExistsError("recipient profile already exists for this user")
	} else if !errors.Is(err, repositories.ErrRecipientNotFound) {
		return nil, apperrors.InternalError(err)
	}

	recipient := &models.Recipient{
		OrgName:  req.OrgName,
		Address:  req.Address,
		Capacity: req.Capacity,
		Verified: req.Verified,
		UserID:   ownerID,
	}
	if err := s.recipientRepo.Create(ctx, recipient); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildRecipientResponse(recipient), nil
}

func (s *recipientService) GetByID(ctx context.Context, id string) (*dto.RecipientResponse, error) {
	recipient, err := s.recipientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecipientNotFound) {
			return nil, apperrors.NewNotFoundError("Recipient")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildRecipientResponse(recipient), nil
}

func (s *recipientService) GetByUserID(ctx context.Context, userID string) (*dto.RecipientResponse, error) {
	recipient, err := s.recipientRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecipientNotFound) {
			return nil, apperrors.NewNotFoundError("Recipient")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildRecipientResponse(recipient), nil
}

func (s *recipientService) List(ctx context.Context) ([]*dto.RecipientResponse, error) {
	recipients, err := s.recipientRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.RecipientResponse, 0, len(recipients))
	for i := range recipients {
		responses = append(responses, buildRecipientResponse(&recipients[i]))
	}
	return responses, nil
}

func (s *recipientService) Update(ctx context.Context, id string, req *dto.UpdateRecipientRequest) (*dto.RecipientResponse, error) {
	recipient, err := s.recipientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecipientNotFound) {
			return nil, apperrors.NewNotFoundError("Recipient")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.OrgName != nil {
		recipient.OrgName = *req.OrgName
	}
	if req.Address != nil {
		recipient.Address = *req.Address
	}
	if req.Capacity != nil {
		recipient.Capacity = *req.Capacity
	}
	if req.Verified != nil {
		recipient.Verified = *req.Verified
	}

	if err := s.recipientRepo.Update(ctx, recipient); err != nil {
		if errors.Is(err, repositories.ErrRecipientNotFound) {
			return nil, apperrors.NewNotFoundError("Recipient")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildRecipientResponse(recipient), nil
}

func (s *recipientService) Delete(ctx context.Context, id string) error {
	if err := s.recipientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRecipientNotFound) {
			return apperrors.NewNotFoundError("Recipient")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func buildRecipientResponse(recipient *models.Recipient) *dto.RecipientResponse {
	return &dto.RecipientResponse{
		ID:        recipient.ID,
		OrgName:   recipient.OrgName,
		Address:   recipient.Address,
		Capacity:  recipient.Capacity,
		Verified:  recipient.Verified,
		UserID:    recipient.UserID,
		CreatedAt: recipient.CreatedAt,
	}
}
