package models

type Recipient struct {
	BaseModel
	OrgName  string `gorm:"not null"`
	Address  string `gorm:"not null"`
	Capacity int    `gorm:"not null"`
	Verified bool   `gorm:"default:false"`
	UserID   string `gorm:"type:uuid;uniqueIndex"`
}
