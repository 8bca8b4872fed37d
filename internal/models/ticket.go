// Package models defines the GORM models for Clerk's backing store.
package models

import "time"

// Ticket is a support ticket opened by a user, either directly through the
// createTicket tool or by an agent on the user's behalf. Number is a
// human-facing sequential ticket number assigned by the ticket store.
type Ticket struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Number    int    `gorm:"uniqueIndex;not null"`
	UserID    string `gorm:"size:64;not null;index"`
	Subject   string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text"`
	Priority  string `gorm:"size:16;default:normal"` // low, normal, high, urgent
	Category  string `gorm:"size:32;default:general"`
	Status    string `gorm:"size:16;default:open;index"` // open, pending, closed
	CreatedAt time.Time
	UpdatedAt time.Time
}
