// Package store provides the collaborator stores the assistant's tools
// execute against: tickets, orders, catalog, rentals, and wallets.
package store

import (
	"fmt"
	"time"

	"github.com/zulandar/clerk/internal/models"
	"gorm.io/gorm"
)

// TicketOpts holds parameters for opening a support ticket.
type TicketOpts struct {
	UserID   string
	Subject  string
	Message  string
	Priority string // defaults to "normal"
	Category string // defaults to "general"
}

// CreateTicket opens a new ticket with the next sequential ticket number.
func CreateTicket(db *gorm.DB, opts TicketOpts) (*models.Ticket, error) {
	if opts.UserID == "" {
		return nil, fmt.Errorf("store: ticket: user is required")
	}
	if opts.Subject == "" {
		return nil, fmt.Errorf("store: ticket: subject is required")
	}
	if opts.Priority == "" {
		opts.Priority = "normal"
	}
	if opts.Category == "" {
		opts.Category = "general"
	}

	var maxNumber int
	if err := db.Model(&models.Ticket{}).
		Select("COALESCE(MAX(number), 0)").Scan(&maxNumber).Error; err != nil {
		return nil, fmt.Errorf("store: ticket: next number: %w", err)
	}

	ticket := models.Ticket{
		Number:   maxNumber + 1,
		UserID:   opts.UserID,
		Subject:  opts.Subject,
		Message:  opts.Message,
		Priority: opts.Priority,
		Category: opts.Category,
		Status:   "open",
	}
	if err := db.Create(&ticket).Error; err != nil {
		return nil, fmt.Errorf("store: ticket: create: %w", err)
	}
	return &ticket, nil
}

// OpenTicketCount returns the number of tickets currently open.
func OpenTicketCount(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Ticket{}).
		Where("status = ?", "open").Count(&count).Error; err != nil {
		return 0, fmt.Errorf("store: ticket: open count: %w", err)
	}
	return int(count), nil
}

// TicketsCreatedSince returns the number of tickets created at or after since.
func TicketsCreatedSince(db *gorm.DB, since time.Time) (int, error) {
	var count int64
	if err := db.Model(&models.Ticket{}).
		Where("created_at >= ?", since).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("store: ticket: created since: %w", err)
	}
	return int(count), nil
}
