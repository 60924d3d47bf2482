package repositories_test

import (
	"context"
	"testing"

	"chirpynosh_backend/internal/models"
	"chirpynosh_backend/internal/repositories"
	"chirpynosh_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClaim(listingID string) *models.Claim {
	return &models.Claim{
		ListingID:    listingID,
		ClaimedBy:    models.ClaimedByPublic,
		ClaimerName:  "Walk-in Guest",
		PickupWindow: "Morning 9-11",
		Status:       models.ClaimStatusClaimed,
	}
}

func newNotification() *models.Notification {
	return &models.Notification{
		Type:    models.NotificationClaimCreated,
		Title:   "Food claimed",
		Message: "Walk-in Guest claimed a listing for Morning 9-11",
	}
}

func TestClaimRepository_CreateWithNotification(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewClaimRepository(db)
	ctx := context.Background()

	partner := helpers.CreatePartner(t, db, "Corner Bakery")
	listing := helpers.CreateListing(t, db, partner.ID, []string{"Morning 9-11"})

	t.Run("claim and notification commit together", func(t *testing.T) {
		claim := newClaim(listing.ID)
		err := repo.CreateWithNotification(ctx, claim, newNotification())
		require.NoError(t, err)
		assert.NotEmpty(t, claim.ID)

		var notificationCount int64
		db.Model(&models.Notification{}).Count(&notificationCount)
		assert.EqualValues(t, 1, notificationCount)
	})

	t.Run("notification failure rolls back the claim", func(t *testing.T) {
		existing := newNotification()
		require.NoError(t, db.Create(existing).Error)

		var claimsBefore int64
		db.Model(&models.Claim{}).Count(&claimsBefore)

		claim := newClaim(listing.ID)
		duplicate := newNotification()
		duplicate.ID = existing.ID // forces a primary key violation

		err := repo.CreateWithNotification(ctx, claim, duplicate)
		require.Error(t, err)

		var claimsAfter int64
		db.Model(&models.Claim{}).Count(&claimsAfter)
		assert.Equal(t, claimsBefore, claimsAfter, "claim must not survive a failed notification insert")
	})
}

func TestClaimRepository_UpdateStatusWithNotification(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewClaimRepository(db)
	ctx := context.Background()

	partner := helpers.CreatePartner(t, db, "Corner Bakery")
	listing := helpers.CreateListing(t, db, partner.ID, []string{"Morning 9-11"})

	t.Run("guarded transition commits status and notification", func(t *testing.T) {
		claim := newClaim(listing.ID)
		require.NoError(t, repo.CreateWithNotification(ctx, claim, newNotification()))

		notification := &models.Notification{
			Type:  models.NotificationPickupConfirmed,
			Title: "Pickup completed",
		}
		updated, err := repo.UpdateStatusWithNotification(ctx, claim.ID, models.ClaimStatusClaimed, models.ClaimStatusPickedUp, notification)
		require.NoError(t, err)
		assert.Equal(t, models.ClaimStatusPickedUp, updated.Status)

		var stored models.Claim
		require.NoError(t, db.First(&stored, "id = ?", claim.ID).Error)
		assert.Equal(t, models.ClaimStatusPickedUp, stored.Status)

		var count int64
		db.Model(&models.Notification{}).Where("type = ?", models.NotificationPickupConfirmed).Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("stale expected status reports a conflict", func(t *testing.T) {
		claim := newClaim(listing.ID)
		require.NoError(t, repo.CreateWithNotification(ctx, claim, newNotification()))

		_, err := repo.UpdateStatusWithNotification(ctx, claim.ID, models.ClaimStatusClaimed, models.ClaimStatusCancelled, nil)
		require.NoError(t, err)

		// A second writer still believing the claim is 'claimed' must lose.
		_, err = repo.UpdateStatusWithNotification(ctx, claim.ID, models.ClaimStatusClaimed, models.ClaimStatusPickedUp, nil)
		assert.ErrorIs(t, err, repositories.ErrClaimConflict)

		var stored models.Claim
		require.NoError(t, db.First(&stored, "id = ?", claim.ID).Error)
		assert.Equal(t, models.ClaimStatusCancelled, stored.Status)
	})

	t.Run("conflict leaves no notification behind", func(t *testing.T) {
		claim := newClaim(listing.ID)
		require.NoError(t, repo.CreateWithNotification(ctx, claim, newNotification()))
		_, err := repo.UpdateStatusWithNotification(ctx, claim.ID, models.ClaimStatusClaimed, models.ClaimStatusPickedUp, nil)
		require.NoError(t, err)

		var before int64
		db.Model(&models.Notification{}).Count(&before)

		notification := &models.Notification{Type: models.NotificationClaimCancelled, Title: "Claim cancelled"}
		_, err = repo.UpdateStatusWithNotification(ctx, claim.ID, models.ClaimStatusClaimed, models.ClaimStatusCancelled, notification)
		assert.ErrorIs(t, err, repositories.ErrClaimConflict)

		var after int64
		db.Model(&models.Notification{}).Count(&after)
		assert.Equal(t, before, after)
	})

	t.Run("missing claim reports not found", func(t *testing.T) {
		_, err := repo.UpdateStatusWithNotification(ctx, "no-such-id", models.ClaimStatusClaimed, models.ClaimStatusPickedUp, nil)
		assert.ErrorIs(t, err, repositories.ErrClaimNotFound)
	})
}

func TestClaimRepository_FindByID(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewClaimRepository(db)
	ctx := context.Background()

	partner := helpers.CreatePartner(t, db, "Corner Bakery")
	listing := helpers.CreateListing(t, db, partner.ID, []string{"Morning 9-11"})

	claim := newClaim(listing.ID)
	require.NoError(t, repo.CreateWithNotification(ctx, claim, newNotification()))

	found, err := repo.FindByID(ctx, claim.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Listing, "listing should be preloaded")
	assert.Equal(t, listing.ID, found.Listing.ID)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrClaimNotFound)
}
