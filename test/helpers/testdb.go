package helpers

import (
	"fmt"
	"testing"
	"time"

	"chirpynosh_backend/database"
	"chirpynosh_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory database with the full schema. Each call
// gets a uniquely named database so parallel tests never share state; the
// shared cache keeps it alive across the connection pool.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// CreateUser persists a user, hashing PasswordHash when it holds a raw
// password.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	t.Helper()

	if user.PasswordHash != "" && len(user.PasswordHash) < 60 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashed)
	}
	if user.Role == "" {
		user.Role = models.UserRolePublic
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", user.Email, err)
	}
	return user
}

func CreatePartner(t *testing.T, db *gorm.DB, name string) *models.Partner {
	t.Helper()

	partner := &models.Partner{
		Name:     name,
		Type:     models.PartnerTypeBakery,
		Address:  "12 Test Street",
		Verified: true,
	}
	if err := db.Create(partner).Error; err != nil {
		t.Fatalf("failed to create partner %s: %v", name, err)
	}
	return partner
}

func CreateListing(t *testing.T, db *gorm.DB, partnerID string, windows []string) *models.Listing {
	t.Helper()

	listing := &models.Listing{
		Title:       "Surplus pastries",
		Description: "Assorted pastries from this morning's batch",
		Category:    models.ListingCategoryBakery,
		ListingType: models.ListingTypeDonation,
		Quantity:    10,
		PartnerID:   partnerID,
	}
	if err := listing.SetWindows(windows); err != nil {
		t.Fatalf("failed to set pickup windows: %v", err)
	}
	if len(windows) > 0 {
		last := windows[len(windows)-1]
		listing.PredictedWindow = &last
	}
	if err := db.Create(listing).Error; err != nil {
		t.Fatalf("failed to create listing: %v", err)
	}
	return listing
}

func CreateRecipient(t *testing.T, db *gorm.DB, userID, orgName string) *models.Recipient {
	t.Helper()

	recipient := &models.Recipient{
		OrgName:  orgName,
		Address:  "34 Shelter Road",
		Capacity: 50,
		Verified: true,
		UserID:   userID,
	}
	if err := db.Create(recipient).Error; err != nil {
		t.Fatalf("failed to create recipient %s: %v", orgName, err)
	}
	return recipient
}

func CreateExpirationItem(t *testing.T, db *gorm.DB, item string, expiresOn time.Time) *models.ExpirationItem {
	t.Helper()

	record := &models.ExpirationItem{
		Item:      item,
		ExpiresOn: expiresOn,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create expiration item %s: %v", item, err)
	}
	return record
}
