package store

import (
	"fmt"

	"github.com/zulandar/clerk/internal/models"
	"gorm.io/gorm"
)

// RentalFilters holds optional filters for listing rentals.
type RentalFilters struct {
	Category string
	Status   string // defaults to "available"
	Limit    int    // defaults to 10, capped at MaxCatalogLimit
}

// ListRentals returns rental listings with optional filters and a capped limit.
func ListRentals(db *gorm.DB, filters RentalFilters) ([]models.Rental, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > MaxCatalogLimit {
		limit = MaxCatalogLimit
	}
	status := filters.Status
	if status == "" {
		status = "available"
	}

	q := db.Where("status = ?", status)
	if filters.Category != "" {
		q = q.Where("category = ?", filters.Category)
	}

	var rentals []models.Rental
	if err := q.Order("platform, title").Limit(limit).Find(&rentals).Error; err != nil {
		return nil, fmt.Errorf("store: rental: list: %w", err)
	}
	return rentals, nil
}
