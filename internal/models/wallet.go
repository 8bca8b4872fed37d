package models

import "time"

// WalletEntry is one credit or debit on a user's wallet. The balance is the
// sum of all entries for the user; there is no separate balance row to drift.
type WalletEntry struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	UserID    string  `gorm:"size:64;not null;index"`
	Amount    float64 `gorm:"not null"` // positive credit, negative debit
	Kind      string  `gorm:"size:16;not null"` // deposit, purchase, refund, adjustment
	Reference string  `gorm:"size:64"`          // e.g. order ID
	CreatedAt time.Time
}
