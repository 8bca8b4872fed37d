package db

import (
	"fmt"

	"github.com/zulandar/clerk/internal/models"
	"gorm.io/gorm"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.Ticket{},
		&models.Order{},
		&models.OrderEvent{},
		&models.Service{},
		&models.Rental{},
		&models.WalletEntry{},
		&models.ChatSession{},
		&models.ChatTurn{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}
