package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Name         string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'public'"`

	// Relations
	Partner   *Partner   `gorm:"foreignKey:UserID"`
	Recipient *Recipient `gorm:"foreignKey:UserID"`
}
