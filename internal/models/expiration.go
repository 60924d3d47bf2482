package models

import "time"

type ExpirationItem struct {
	BaseModel
	Item      string    `gorm:"not null"`
	ExpiresOn time.Time `gorm:"not null;index"`
	Notes     string
}
