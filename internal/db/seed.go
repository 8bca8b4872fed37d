package db

import (
	"fmt"

	"github.com/zulandar/clerk/internal/models"
	"github.com/zulandar/clerk/internal/store"
	"gorm.io/gorm"
)

// seedServices is the starter catalog written by SeedCatalog.
var seedServices = []store.ServiceOpts{
	{Title: "Outlier Account Setup", Price: 120, Category: "accounts", Countries: []string{"US", "GB", "DE"}},
	{Title: "Upwork Profile Review", Price: 45, Category: "consulting"},
	{Title: "Payoneer Verification", Price: 60, Category: "verification", Countries: []string{"US"}},
	{Title: "Interview Coaching Session", Price: 80, Category: "training"},
}

// seedRentals is the starter rental inventory.
var seedRentals = []models.Rental{
	{Title: "Outlier Account (weekly)", Platform: "Outlier", PricePerWeek: 35, Category: "rentals", Status: "available"},
	{Title: "Upwork Account (weekly)", Platform: "Upwork", PricePerWeek: 25, Category: "rentals", Status: "available"},
}

// SeedCatalog writes the starter services and rentals. It is idempotent:
// existing rows (matched by slug/title) are left alone.
func SeedCatalog(db *gorm.DB) error {
	for _, opts := range seedServices {
		var count int64
		if err := db.Model(&models.Service{}).
			Where("slug = ?", store.Slugify(opts.Title)).Count(&count).Error; err != nil {
			return fmt.Errorf("db: seed: check service %q: %w", opts.Title, err)
		}
		if count > 0 {
			continue
		}
		if _, err := store.CreateService(db, opts); err != nil {
			return fmt.Errorf("db: seed: %w", err)
		}
	}

	for _, rental := range seedRentals {
		var count int64
		if err := db.Model(&models.Rental{}).
			Where("title = ?", rental.Title).Count(&count).Error; err != nil {
			return fmt.Errorf("db: seed: check rental %q: %w", rental.Title, err)
		}
		if count > 0 {
			continue
		}
		r := rental
		if err := db.Create(&r).Error; err != nil {
			return fmt.Errorf("db: seed: create rental %q: %w", rental.Title, err)
		}
	}
	return nil
}
