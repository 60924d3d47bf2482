package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Listing struct {
	BaseModel
	Title           string          `gorm:"not null"`
	Description     string          `gorm:"not null"`
	Category        ListingCategory `gorm:"type:varchar(20);not null;index"`
	ListingType     ListingType     `gorm:"type:varchar(20);not null;index"`
	Quantity        int             `gorm:"not null"`
	PriceEur        *float64
	PickupWindows   datatypes.JSON `gorm:"type:jsonb"`
	PredictedWindow *string
	ImageURL        *string
	PartnerID       string `gorm:"type:uuid;not null;index"`

	// Relations
	Partner *Partner `gorm:"foreignKey:PartnerID"`
	Claims  []Claim  `gorm:"foreignKey:ListingID"`
}

// Windows decodes the jsonb pickup-window sequence. Order is preserved;
// a missing or malformed payload decodes as empty.
func (l *Listing) Windows() []string {
	if len(l.PickupWindows) == 0 {
		return nil
	}
	var windows []string
	if err := json.Unmarshal(l.PickupWindows, &windows); err != nil {
		return nil
	}
	return windows
}

// SetWindows encodes the ordered pickup-window sequence into the jsonb column.
func (l *Listing) SetWindows(windows []string) error {
	raw, err := json.Marshal(windows)
	if err != nil {
		return err
	}
	l.PickupWindows = datatypes.JSON(raw)
	return nil
}
