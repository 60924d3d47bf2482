package services

import (
	"context"
	"errors"
	"time"

	"chirpynosh_backend/internal/models"
	"chirpynosh_backend/internal/repositories"
	"chirpynosh_backend/internal/services/dto"
	"chirpynosh_backend/pkg/apperrors"
)

type NotificationService interface {
	List(ctx context.Context, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) (int64, error)
	GetUnreadCount(ctx context.Context) (*dto.UnreadCountResponse, error)
	// DeleteOld prunes read notifications older than the given number of
	// days. A non-positive value falls back to 30 days.
	DeleteOld(ctx context.Context, days int) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) List(ctx context.Context, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.FindAll(ctx, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}
	return &dto.NotificationListResponse{
		Notifications: responses,
		Total:         len(responses),
	}, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string) error {
	if err := s.notificationRepo.MarkAsRead(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("Notification")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context) (int64, error) {
	count, err := s.notificationRepo.MarkAllAsRead(ctx)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *notificationService) GetUnreadCount(ctx context.Context) (*dto.UnreadCountResponse, error) {
	count, err := s.notificationRepo.GetUnreadCount(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

func (s *notificationService) DeleteOld(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	count, err := s.notificationRepo.DeleteOld(ctx, cutoff)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func buildNotificationResponse(n *models.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}
