package models

type Partner struct {
	BaseModel
	Name     string      `gorm:"not null"`
	Type     PartnerType `gorm:"type:varchar(20);not null"`
	Address  string      `gorm:"not null"`
	Verified bool        `gorm:"default:false"`
	UserID   string      `gorm:"type:uuid;index"`

	// Relations
	Listings []Listing `gorm:"foreignKey:PartnerID"`
}
