package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"chirpynosh_backend/internal/logger"
	"chirpynosh_backend/internal/models"
	"chirpynosh_backend/internal/repositories"
	"chirpynosh_backend/internal/services/dto"
	"chirpynosh_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

const dateOnlyLayout = "2006-01-02"

type ExpirationService interface {
	Create(ctx context.Context, req *dto.CreateExpirationRequest) (*dto.ExpirationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ExpirationResponse, error)
	List(ctx context.Context) ([]*dto.ExpirationResponse, error)
	// ListExpiringSoon returns items expiring within the horizon, soonest
	// first, without recording notifications.
	ListExpiringSoon(ctx context.Context, horizonDays int) ([]*dto.ExpirationResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateExpirationRequest) (*dto.ExpirationResponse, error)
	Delete(ctx context.Context, id string) error

	// CheckExpiringSoon sweeps tracked items and records an expiring_soon
	// notification for each item entering the horizon. Each item is announced
	// at most once. Returns the number of new notifications.
	CheckExpiringSoon(ctx context.Context, horizonDays int) (int, error)
}

type expirationService struct {
	expirationRepo   repositories.ExpirationRepository
	notificationRepo repositories.NotificationRepository
	emailService     EmailService
}

func NewExpirationService(
	expirationRepo repositories.ExpirationRepository,
	notificationRepo repositories.NotificationRepository,
	emailService EmailService,
) ExpirationService {
	return &expirationService{
		expirationRepo:   expirationRepo,
		notificationRepo: notificationRepo,
		emailService:     emailService,
	}
}

func (s *expirationService) Create(ctx context.Context, req *dto.CreateExpirationRequest) (*dto.ExpirationResponse, error) {
	expiresOn, err := time.Parse(dateOnlyLayout, req.ExpiresOn)
	if err != nil {
		return nil, apperrors.NewBadRequestError("expires_on must be a YYYY-MM-DD date")
	}

	item := &models.ExpirationItem{
		Item:      req.Item,
		ExpiresOn: expiresOn,
		Notes:     req.Notes,
	}
	if err := s.expirationRepo.Create(ctx, item); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildExpirationResponse(item), nil
}

func (s *expirationService) GetByID(ctx context.Context, id string) (*dto.ExpirationResponse, error) {
	item, err := s.expirationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpirationNotFound) {
			return nil, apperrors.NewNotFoundError("Expiration item")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildExpirationResponse(item), nil
}

func (s *expirationService) List(ctx context.Context) ([]*dto.ExpirationResponse, error) {
	items, err := s.expirationRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.ExpirationResponse, 0, len(items))
	for i := range items {
		responses = append(responses, buildExpirationResponse(&items[i]))
	}
	return responses, nil
}

func (s *expirationService) ListExpiringSoon(ctx context.Context, horizonDays int) ([]*dto.ExpirationResponse, error) {
	now := time.Now()
	items, err := s.expirationRepo.FindExpiringSoon(ctx, now, now.AddDate(0, 0, horizonDays))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.ExpirationResponse, 0, len(items))
	for i := range items {
		responses = append(responses, buildExpirationResponse(&items[i]))
	}
	return responses, nil
}

func (s *expirationService) Update(ctx context.Context, id string, req *dto.UpdateExpirationRequest) (*dto.ExpirationResponse, error) {
	item, err := s.expirationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpirationNotFound) {
			return nil, apperrors.NewNotFoundError("Expiration item")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Item != nil {
		item.Item = *req.Item
	}
	if req.ExpiresOn != nil {
		expiresOn, err := time.Parse(dateOnlyLayout, *req.ExpiresOn)
		if err != nil {
			return nil, apperrors.NewBadRequestError("expires_on must be a YYYY-MM-DD date")
		}
		item.ExpiresOn = expiresOn
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	if err := s.expirationRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repositories.ErrExpirationNotFound) {
			return nil, apperrors.NewNotFoundError("Expiration item")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildExpirationResponse(item), nil
}

func (s *expirationService) Delete(ctx context.Context, id string) error {
	if err := s.expirationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrExpirationNotFound) {
			return apperrors.NewNotFoundError("Expiration item")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *expirationService) CheckExpiringSoon(ctx context.Context, horizonDays int) (int, error) {
	now := time.Now()
	horizon := now.AddDate(0, 0, horizonDays)

	items, err := s.expirationRepo.FindExpiringSoon(ctx, now, horizon)
	if err != nil {
		return 0, err
	}

	var announced []string
	for i := range items {
		item := &items[i]
		data := expirationEventData(item.ID)

		exists, err := s.notificationRepo.ExistsByTypeAndData(ctx, models.NotificationExpiringSoon, data)
		if err != nil {
			return len(announced), err
		}
		if exists {
			continue
		}

		notification := &models.Notification{
			Type:    models.NotificationExpiringSoon,
			Title:   "Expiring soon",
			Message: fmt.Sprintf("%s expires on %s", item.Item, item.ExpiresOn.Format(dateOnlyLayout)),
			Data:    data,
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			return len(announced), err
		}
		announced = append(announced, notification.Message)
	}

	if len(announced) > 0 && s.emailService != nil {
		subject := fmt.Sprintf("%d item(s) expiring soon", len(announced))
		if err := s.emailService.SendExpirationDigest(subject, strings.Join(announced, "\n")); err != nil {
			logger.CtxWarn(ctx, "failed to send expiration digest email", "error", err.Error())
		}
	}
	return len(announced), nil
}

func expirationEventData(itemID string) datatypes.JSON {
	raw, err := json.Marshal(map[string]string{"expiration_item_id": itemID})
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func buildExpirationResponse(item *models.ExpirationItem) *dto.ExpirationResponse {
	return &dto.ExpirationResponse{
		ID:        item.ID,
		Item:      item.Item,
		ExpiresOn: item.ExpiresOn.Format(dateOnlyLayout),
		Notes:     item.Notes,
		CreatedAt: item.CreatedAt,
	}
}
