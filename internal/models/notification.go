package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is an append-only lifecycle event record. The claim engine
// only ever creates rows; the read flag is mutated by the notification
// service alone.
type Notification struct {
	BaseModel
	Type    NotificationType `gorm:"type:varchar(30);not null;index"`
	Title   string           `gorm:"not null"`
	Message string
	Data    datatypes.JSON `gorm:"type:jsonb"` // {"claim_id": "...", "listing_id": "..."}
	Read    bool           `gorm:"default:false;index"`
	ReadAt  *time.Time
}
