package services_test

import (
	"context"
	"net/http"
	"testing"

	"chirpynosh_backend/internal/auth"
	"chirpynosh_backend/internal/models"
	"chirpynosh_backend/internal/repositories"
	"chirpynosh_backend/internal/services"
	"chirpynosh_backend/internal/services/dto"
	"chirpynosh_backend/pkg/apperrors"
	"chirpynosh_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type claimServiceFixture struct {
	db      *gorm.DB
	service services.ClaimService
	listing *models.Listing
}

func newClaimServiceFixture(t *testing.T) *claimServiceFixture {
	db := helpers.NewTestDB(t)
	partner := helpers.CreatePartner(t, db, "Corner Bakery")
	listing := helpers.CreateListing(t, db, partner.ID, []string{"Morning 9-11", "Evening 17-19"})

	service := services.NewClaimService(
		repositories.NewClaimRepository(db),
		repositories.NewListingRepository(db),
		repositories.NewRecipientRepository(db),
		services.NewNoopEmailService(),
	)
	return &claimServiceFixture{db: db, service: service, listing: listing}
}

func (f *claimServiceFixture) notificationsOfType(t *testing.T, nt models.NotificationType) []models.Notification {
	t.Helper()
	var notifications []models.Notification
	require.NoError(t, f.db.Where("type = ?", nt).Find(&notifications).Error)
	return notifications
}

func recipientCaller(t *testing.T, db *gorm.DB, orgName string) *auth.Claims {
	t.Helper()
	user := helpers.CreateUser(t, db, &models.User{
		Email:        orgName + "@example.com",
		PasswordHash: "password123",
		Name:         orgName,
		Role:         models.UserRoleRecipient,
	})
	helpers.CreateRecipient(t, db, user.ID, orgName)
	return &auth.Claims{UserID: user.ID, Email: user.Email, Role: user.Role}
}

func TestClaimService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("recipient profile owner claims under the org name", func(t *testing.T) {
		f := newClaimServiceFixture(t)
		caller := recipientCaller(t, f.db, "Jane's Shelter")

		resp, err := f.service.Create(ctx, &dto.CreateClaimRequest{
			ListingID:    f.listing.ID,
			PickupWindow: "Morning 9-11",
		}, caller)
		require.NoError(t, err)

		assert.Equal(t, models.ClaimedByRecipient, resp.ClaimedBy)
		assert.Equal(t, "Jane's Shelter", resp.ClaimerName)
		assert.Equal(t, models.ClaimStatusClaimed, resp.Status)
		require.NotNil(t, resp.UserID)
		assert.Equal(t, caller.UserID, *resp.UserID)

		created := f.notificationsOfType(t, models.NotificationClaimCreated)
		require.Len(t, created, 1)
		assert.Equal(t, "Food claimed", created[0].Title)
		assert.Equal(t, "Jane's Shelter claimed a listing for Morning 9-11", created[0].Message)
	})

	t.Run("anonymous claim is forced to public", func(t *testing.T) {
		f := newClaimServiceFixture(t)

		resp, err := f.service.Create(ctx, &dto.CreateClaimRequest{
			ListingID:    f.listing.ID,
			ClaimedBy:    "recipient", // must not be honored without identity
			ClaimerName:  "Walk-in Guest",
			PickupWindow: "Evening 17-19",
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, models.ClaimedByPublic, resp.ClaimedBy)
		assert.Equal(t, "Walk-in Guest", resp.ClaimerName)
		assert.Nil(t, resp.UserID)
	})

	t.Run("anonymous claim without details is rejected", func(t *testing.T) {
		f := newClaimServiceFixture(t)

		_, err := f.service.Create(ctx, &dto.CreateClaimRequest{
			ListingID:    f.listing.ID,
			PickupWindow: "Morning 9-11",
		}, nil)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
		assert.Equal(t, "claim details required for public claims", appErr.Message)
	})

	t.Run("authenticated caller without profile must supply details", func(t *testing.T) {
		f := newClaimServiceFixture(t)
		user := helpers.CreateUser(t, f.db, &models.User{
			Email:        "plain@example.com",
			PasswordHash: "password123",
			Name:         "Plain User",
		})
		caller := &auth.Claims{UserID: user.ID, Email: user.Email, Role: user.Role}

		_, err := f.service.Create(ctx, &dto.CreateClaimRequest{
			ListingID:    f.listing.ID,
			PickupWindow: "Morning 9-11",
		}, caller)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "recipient profile required or claim details provided", appErr.Message)

		resp, err := f.service.Create(ctx, &dto.CreateClaimRequest{
			ListingID:    f.listing.ID,
			ClaimedBy:    "public",
			ClaimerName:  "Plain User",
			PickupWindow: "Morning 9-11",
		}, caller)
		require.NoError(t, err)
		assert.Equal(t, models.ClaimedByPublic, resp.ClaimedBy)
		require.NotNil(t, resp.UserID)
		assert.Equal(t, user.ID, *resp.UserID)
	})

	t.Run("missing listing writes nothing", func(t *testing.T) {
		f := newClaimServiceFixture(t)

		_, err := f.service.Create(ctx, &dto.CreateClaimRequest{
			ListingID:    "no-such-listing",
			ClaimedBy:    "public",
			ClaimerName:  "Walk-in Guest",
			PickupWindow: "Morning 9-11",
		}, nil)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)

		var claims, notifications int64
		f.db.Model(&models.Claim{}).Count(&claims)
		f.db.Model(&models.Notification{}).Count(&notifications)
		assert.Zero(t, claims)
		assert.Zero(t, notifications)
	})
}

func TestClaimService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	createClaim := func(t *testing.T, f *claimServiceFixture) *dto.ClaimResponse {
		resp, err := f.service.Create(ctx, &dto.CreateClaimRequest{
			ListingID:    f.listing.ID,
			ClaimedBy:    "public",
			ClaimerName:  "Walk-in Guest",
			PickupWindow: "Morning 9-11",
		}, nil)
		require.NoError(t, err)
		return resp
	}

	t.Run("pickup confirmation records a notification", func(t *testing.T) {
		f := newClaimServiceFixture(t)
		claim := createClaim(t, f)

		resp, err := f.service.UpdateStatus(ctx, claim.ID, &dto.UpdateClaimStatusRequest{Status: "picked_up"})
		require.NoError(t, err)
		assert.Equal(t, models.ClaimStatusPickedUp, resp.Status)

		confirmed := f.notificationsOfType(t, models.NotificationPickupConfirmed)
		require.Len(t, confirmed, 1)
		assert.Equal(t, "Pickup completed", confirmed[0].Title)
		assert.Equal(t, "Pickup confirmed for window Morning 9-11. Great job reducing waste!", confirmed[0].Message)
	})

	t.Run("repeated pickup confirmation is an idempotent no-op", func(t *testing.T) {
		f := newClaimServiceFixture(t)
		claim := createClaim(t, f)

		_, err := f.service.UpdateStatus(ctx, claim.ID, &dto.UpdateClaimStatusRequest{Status: "picked_up"})
		require.NoError(t, err)

		resp, err := f.service.UpdateStatus(ctx, claim.ID, &dto.UpdateClaimStatusRequest{Status: "picked_up"})
		require.NoError(t, err)
		assert.Equal(t, models.ClaimStatusPickedUp, resp.Status)

		confirmed := f.notificationsOfType(t, models.NotificationPickupConfirmed)
		assert.Len(t, confirmed, 1, "re-asserting picked_up must not duplicate the notification")
	})

	t.Run("cancellation records a notification and freezes the claim", func(t *testing.T) {
		f := newClaimServiceFixture(t)
		claim := createClaim(t, f)

		resp, err := f.service.UpdateStatus(ctx, claim.ID, &dto.UpdateClaimStatusRequest{Status: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, models.ClaimStatusCancelled, resp.Status)

		cancelled := f.notificationsOfType(t, models.NotificationClaimCancelled)
		require.Len(t, cancelled, 1)
		assert.Equal(t, "A claim was cancelled for window Morning 9-11.", cancelled[0].Message)

		for _, target := range []string{"claimed", "picked_up", "cancelled"} {
			_, err := f.service.UpdateStatus(ctx, claim.ID, &dto.UpdateClaimStatusRequest{Status: target})
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok, "target %s", target)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
			assert.Equal(t, "cannot update a cancelled claim", appErr.Message)
		}
	})

	t.Run("completed pickup cannot change status", func(t *testing.T) {
		f := newClaimServiceFixture(t)
		claim := createClaim(t, f)

		_, err := f.service.UpdateStatus(ctx, claim.ID, &dto.UpdateClaimStatusRequest{Status: "picked_up"})
		require.NoError(t, err)

		for _, target := range []string{"claimed", "cancelled"} {
			_, err := f.service.UpdateStatus(ctx, claim.ID, &dto.UpdateClaimStatusRequest{Status: target})
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok, "target %s", target)
			assert.Equal(t, "cannot change status of a completed pickup", appErr.Message)
		}
	})

	t.Run("unknown status value is rejected before any read", func(t *testing.T) {
		f := newClaimServiceFixture(t)
		claim := createClaim(t, f)

		_, err := f.service.UpdateStatus(ctx, claim.ID, &dto.UpdateClaimStatusRequest{Status: "banana"})
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	})

	t.Run("missing claim reports not found", func(t *testing.T) {
		f := newClaimServiceFixture(t)

		_, err := f.service.UpdateStatus(ctx, "no-such-claim", &dto.UpdateClaimStatusRequest{Status: "picked_up"})
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	})
}

func TestClaimService_ListByUser(t *testing.T) {
	ctx := context.Background()
	f := newClaimServiceFixture(t)
	caller := recipientCaller(t, f.db, "Jane's Shelter")

	for _, window := range []string{"Morning 9-11", "Evening 17-19"} {
		_, err := f.service.Create(ctx, &dto.CreateClaimRequest{
			ListingID:    f.listing.ID,
			PickupWindow: window,
		}, caller)
		require.NoError(t, err)
	}

	claims, err := f.service.ListByUser(ctx, caller.UserID)
	require.NoError(t, err)
	require.Len(t, claims, 2)
	for _, claim := range claims {
		require.NotNil(t, claim.Listing)
		assert.Equal(t, f.listing.ID, claim.Listing.ID)
	}
}
