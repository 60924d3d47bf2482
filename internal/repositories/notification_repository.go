package repositories

import (
	"context"
	"errors"
	"time"

	"chirpynosh_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationCriteria filters notification queries.
type NotificationCriteria struct {
	UnreadOnly bool `form:"unread_only"`
	Limit      int  `form:"limit"`
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	FindByID(ctx context.Context, id string) (*models.Notification, error)
	FindAll(ctx context.Context, criteria NotificationCriteria) ([]models.Notification, error)
	// ExistsByTypeAndData reports whether a notification of the given type
	// already carries the exact data payload. Used by the expiration worker
	// to avoid re-announcing an item on every sweep.
	ExistsByTypeAndData(ctx context.Context, notificationType models.NotificationType, data datatypes.JSON) (bool, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) (int64, error)
	GetUnreadCount(ctx context.Context) (int64, error)
	// DeleteOld removes read notifications created before the cutoff.
	// Unread notifications are kept regardless of age.
	DeleteOld(ctx context.Context, olderThan time.Time) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindAll(ctx context.Context, criteria NotificationCriteria) ([]models.Notification, error) {
	query := r.db.WithContext(ctx).Model(&models.Notification{})

	if criteria.UnreadOnly {
		query = query.Where("read = ?", false)
	}

	limit := criteria.Limit
	if limit <= 0 || limit > 50 {
		limit = 50
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) ExistsByTypeAndData(ctx context.Context, notificationType models.NotificationType, data datatypes.JSON) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("type = ? AND data = ?", notificationType, string(data)).
		Count(&count).Error
	return count > 0, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("read = ?", false).
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *NotificationRepositoryImpl) GetUnreadCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("read = ?", false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) DeleteOld(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ? AND read = ?", olderThan, true).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}
