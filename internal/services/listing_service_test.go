package services_test

import (
	"context"
	"testing"

	"chirpynosh_backend/internal/repositories"
	"chirpynosh_backend/internal/services"
	"chirpynosh_backend/internal/services/dto"
	"chirpynosh_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newListingService(t *testing.T) (services.ListingService, *gorm.DB) {
	db := helpers.NewTestDB(t)
	return services.NewListingService(
		repositories.NewListingRepository(db),
		repositories.NewPartnerRepository(db),
	), db
}

func floatPtr(v float64) *float64 { return &v }

func TestListingService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("predicted window is the last pickup window", func(t *testing.T) {
		service, db := newListingService(t)
		partner := helpers.CreatePartner(t, db, "Corner Bakery")

		resp, err := service.Create(ctx, &dto.CreateListingRequest{
			Title:         "Surplus pastries",
			Description:   "Assorted pastries from this morning's batch",
			Category:      "bakery",
			ListingType:   "donation",
			Quantity:      10,
			PickupWindows: []string{"Morning 9-11", "Lunch 12-14", "Evening 17-19"},
			PartnerID:     partner.ID,
		})
		require.NoError(t, err)

		require.NotNil(t, resp.PredictedWindow)
		assert.Equal(t, "Evening 17-19", *resp.PredictedWindow)
		assert.Equal(t, []string{"Morning 9-11", "Lunch 12-14", "Evening 17-19"}, resp.PickupWindows)
	})

	t.Run("donations never carry a price", func(t *testing.T) {
		service, db := newListingService(t)
		partner := helpers.CreatePartner(t, db, "Corner Bakery")

		resp, err := service.Create(ctx, &dto.CreateListingRequest{
			Title:         "Surplus pastries",
			Description:   "Assorted pastries from this morning's batch",
			Category:      "bakery",
			ListingType:   "donation",
			Quantity:      10,
			PriceEur:      floatPtr(4.50),
			PickupWindows: []string{"Morning 9-11"},
			PartnerID:     partner.ID,
		})
		require.NoError(t, err)
		assert.Nil(t, resp.PriceEur)
	})

	t.Run("unknown partner is rejected", func(t *testing.T) {
		service, _ := newListingService(t)

		_, err := service.Create(ctx, &dto.CreateListingRequest{
			Title:         "Surplus pastries",
			Description:   "Assorted pastries from this morning's batch",
			Category:      "bakery",
			ListingType:   "donation",
			Quantity:      10,
			PickupWindows: []string{"Morning 9-11"},
			PartnerID:     "no-such-partner",
		})
		assert.Error(t, err)
	})
}

func TestListingService_Update(t *testing.T) {
	ctx := context.Background()
	service, db := newListingService(t)
	partner := helpers.CreatePartner(t, db, "Corner Bakery")
	listing := helpers.CreateListing(t, db, partner.ID, []string{"Morning 9-11", "Evening 17-19"})

	t.Run("changing windows recomputes the prediction", func(t *testing.T) {
		resp, err := service.Update(ctx, listing.ID, &dto.UpdateListingRequest{
			PickupWindows: []string{"Lunch 12-14", "Afternoon 15-17"},
		})
		require.NoError(t, err)

		require.NotNil(t, resp.PredictedWindow)
		assert.Equal(t, "Afternoon 15-17", *resp.PredictedWindow)
	})

	t.Run("untouched windows keep the prediction", func(t *testing.T) {
		newTitle := "Evening pastries"
		resp, err := service.Update(ctx, listing.ID, &dto.UpdateListingRequest{Title: &newTitle})
		require.NoError(t, err)

		assert.Equal(t, "Evening pastries", resp.Title)
		require.NotNil(t, resp.PredictedWindow)
		assert.Equal(t, "Afternoon 15-17", *resp.PredictedWindow)
	})
}

func TestListingService_List(t *testing.T) {
	ctx := context.Background()
	service, db := newListingService(t)
	partner := helpers.CreatePartner(t, db, "Corner Bakery")
	for i := 0; i < 3; i++ {
		helpers.CreateListing(t, db, partner.ID, []string{"Morning 9-11"})
	}

	t.Run("paginates with defaults", func(t *testing.T) {
		resp, err := service.List(ctx, repositories.ListingCriteria{})
		require.NoError(t, err)
		assert.EqualValues(t, 3, resp.Total)
		assert.Equal(t, 1, resp.Page)
		assert.Len(t, resp.Listings, 3)
	})

	t.Run("respects page size", func(t *testing.T) {
		resp, err := service.List(ctx, repositories.ListingCriteria{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, resp.Total)
		assert.Len(t, resp.Listings, 1)
	})

	t.Run("filters by partner", func(t *testing.T) {
		other := helpers.CreatePartner(t, db, "Other Cafe")
		resp, err := service.List(ctx, repositories.ListingCriteria{PartnerID: other.ID})
		require.NoError(t, err)
		assert.EqualValues(t, 0, resp.Total)
	})
}
