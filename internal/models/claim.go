package models

// Claim records that a party intends to collect a listing during a pickup
// window. Every field except Status is immutable after creation.
type Claim struct {
	BaseModel
	ListingID    string      `gorm:"type:uuid;not null;index"`
	UserID       *string     `gorm:"type:uuid;index"`
	ClaimedBy    ClaimedBy   `gorm:"type:varchar(20);not null"`
	ClaimerName  string      `gorm:"not null"`
	PickupWindow string      `gorm:"not null"`
	Status       ClaimStatus `gorm:"type:varchar(20);not null;default:'claimed';index"`

	// Relations
	Listing *Listing `gorm:"foreignKey:ListingID"`
}
