package services_test

import (
	"context"
	"testing"
	"time"

	"chirpynosh_backend/internal/models"
	"chirpynosh_backend/internal/repositories"
	"chirpynosh_backend/internal/services"
	"chirpynosh_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedNotifications(t *testing.T, db *gorm.DB, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		require.NoError(t, db.Create(&models.Notification{
			Type:    models.NotificationClaimCreated,
			Title:   "Food claimed",
			Message: "someone claimed a listing",
		}).Error)
	}
}

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()
	db := helpers.NewTestDB(t)
	service := services.NewNotificationService(repositories.NewNotificationRepository(db))

	seedNotifications(t, db, 60)

	t.Run("caps the page at 50", func(t *testing.T) {
		resp, err := service.List(ctx, repositories.NotificationCriteria{Limit: 500})
		require.NoError(t, err)
		assert.Len(t, resp.Notifications, 50)
	})

	t.Run("filters unread only", func(t *testing.T) {
		var first models.Notification
		require.NoError(t, db.First(&first).Error)
		require.NoError(t, service.MarkAsRead(ctx, first.ID))

		resp, err := service.List(ctx, repositories.NotificationCriteria{UnreadOnly: true, Limit: 100})
		require.NoError(t, err)
		for _, n := range resp.Notifications {
			assert.False(t, n.Read)
		}
	})
}

func TestNotificationService_ReadTracking(t *testing.T) {
	ctx := context.Background()
	db := helpers.NewTestDB(t)
	service := services.NewNotificationService(repositories.NewNotificationRepository(db))

	seedNotifications(t, db, 3)

	count, err := service.GetUnreadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count.Count)

	var first models.Notification
	require.NoError(t, db.First(&first).Error)
	require.NoError(t, service.MarkAsRead(ctx, first.ID))

	var stored models.Notification
	require.NoError(t, db.First(&stored, "id = ?", first.ID).Error)
	assert.True(t, stored.Read)
	assert.NotNil(t, stored.ReadAt)

	marked, err := service.MarkAllAsRead(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, marked)

	count, err = service.GetUnreadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count.Count)

	err = service.MarkAsRead(ctx, "no-such-id")
	assert.Error(t, err)
}

func TestNotificationService_DeleteOld(t *testing.T) {
	ctx := context.Background()
	db := helpers.NewTestDB(t)
	service := services.NewNotificationService(repositories.NewNotificationRepository(db))

	backdate := func(t *testing.T, id string, days int) {
		t.Helper()
		require.NoError(t, db.Model(&models.Notification{}).
			Where("id = ?", id).
			Update("created_at", time.Now().AddDate(0, 0, -days)).Error)
	}

	seedNotifications(t, db, 3)

	var all []models.Notification
	require.NoError(t, db.Order("id").Find(&all).Error)
	require.Len(t, all, 3)

	// all[0]: old and read, all[1]: old but unread, all[2]: recent and read.
	require.NoError(t, service.MarkAsRead(ctx, all[0].ID))
	require.NoError(t, service.MarkAsRead(ctx, all[2].ID))
	backdate(t, all[0].ID, 40)
	backdate(t, all[1].ID, 40)

	t.Run("removes only read notifications past the cutoff", func(t *testing.T) {
		deleted, err := service.DeleteOld(ctx, 30)
		require.NoError(t, err)
		assert.EqualValues(t, 1, deleted)

		var remaining []models.Notification
		require.NoError(t, db.Find(&remaining).Error)
		assert.Len(t, remaining, 2)
		for _, n := range remaining {
			assert.NotEqual(t, all[0].ID, n.ID)
		}
	})

	t.Run("non-positive days falls back to thirty", func(t *testing.T) {
		backdate(t, all[2].ID, 40)

		deleted, err := service.DeleteOld(ctx, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, deleted)

		var remaining []models.Notification
		require.NoError(t, db.Find(&remaining).Error)
		require.Len(t, remaining, 1)
		assert.Equal(t, all[1].ID, remaining[0].ID)
	})
}
