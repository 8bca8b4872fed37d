package models

import "time"

// Order is a purchase of a catalog service by a user. The primary key is a
// 24-hex-character reference string so that order references pasted into chat
// can be recognized without ambiguity.
type Order struct {
	ID        string  `gorm:"primaryKey;size:24"`
	UserID    string  `gorm:"size:64;not null;index"`
	ServiceID uint    `gorm:"index"`
	Title     string  `gorm:"size:255"`
	Amount    float64 `gorm:"not null"`
	Status    string  `gorm:"size:16;default:pending;index"` // pending, processing, delivered, completed, cancelled, refunded
	CreatedAt time.Time
	UpdatedAt time.Time

	Events []OrderEvent `gorm:"foreignKey:OrderID"`
}

// OrderEvent is one entry in an order's append-only status timeline. Rows are
// only ever inserted; status history is never rewritten.
type OrderEvent struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	OrderID   string `gorm:"size:24;not null;index"`
	Status    string `gorm:"size:16;not null"`
	Note      string `gorm:"size:255"`
	Actor     string `gorm:"size:64"` // user ID of whoever changed the status
	CreatedAt time.Time
}
