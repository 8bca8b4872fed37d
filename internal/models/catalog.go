package models

import "time"

// Service is a purchasable catalog listing. Slug is derived from the title by
// the catalog store and de-duplicated with a numeric suffix.
type Service struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"size:255;not null"`
	Slug        string  `gorm:"size:255;uniqueIndex;not null"`
	Price       float64 `gorm:"not null"`
	Description string  `gorm:"type:text"`
	Category    string  `gorm:"size:64;default:general;index"`
	Countries   string  `gorm:"type:json"` // JSON array of country codes
	Active      bool    `gorm:"default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Rental is a time-boxed account rental listing.
type Rental struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	Title        string  `gorm:"size:255;not null"`
	Platform     string  `gorm:"size:64;index"`
	PricePerWeek float64 `gorm:"not null"`
	Category     string  `gorm:"size:64;default:general;index"`
	Status       string  `gorm:"size:16;default:available;index"` // available, rented, retired
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
