package store

import (
	"fmt"

	"github.com/zulandar/clerk/internal/models"
	"gorm.io/gorm"
)

// WalletBalance returns the sum of all wallet entries for a user.
func WalletBalance(db *gorm.DB, userID string) (float64, error) {
	var balance struct{ Total float64 }
	if err := db.Model(&models.WalletEntry{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&balance).Error; err != nil {
		return 0, fmt.Errorf("store: wallet: balance: %w", err)
	}
	return balance.Total, nil
}

// RecentWalletEntries returns a user's most recent wallet entries.
func RecentWalletEntries(db *gorm.DB, userID string, limit int) ([]models.WalletEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	var entries []models.WalletEntry
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("store: wallet: entries: %w", err)
	}
	return entries, nil
}

// Credit appends a wallet entry for a user.
func Credit(db *gorm.DB, userID string, amount float64, kind, reference string) (*models.WalletEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("store: wallet: user is required")
	}
	if kind == "" {
		kind = "adjustment"
	}
	entry := models.WalletEntry{
		UserID:    userID,
		Amount:    amount,
		Kind:      kind,
		Reference: reference,
	}
	if err := db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("store: wallet: credit: %w", err)
	}
	return &entry, nil
}
