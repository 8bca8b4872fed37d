package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/zulandar/clerk/internal/store"
	"gorm.io/gorm"
)

// SupportReport holds the counts behind a daily support digest.
type SupportReport struct {
	PeriodStart   time.Time
	PeriodEnd     time.Time
	OpenTickets   int
	NewTickets    int
	PendingOrders int
}

// BuildDailyDigest queries the last 24 hours of support activity and returns
// the digest text. Returns "" when there is nothing to report.
func BuildDailyDigest(db *gorm.DB) (string, error) {
	now := time.Now()
	since := now.Add(-24 * time.Hour)

	report := SupportReport{PeriodStart: since, PeriodEnd: now}

	open, err := store.OpenTicketCount(db)
	if err != nil {
		return "", fmt.Errorf("chat: daily digest: %w", err)
	}
	report.OpenTickets = open

	created, err := store.TicketsCreatedSince(db, since)
	if err != nil {
		return "", fmt.Errorf("chat: daily digest: %w", err)
	}
	report.NewTickets = created

	pending, err := store.PendingOrderCount(db)
	if err != nil {
		return "", fmt.Errorf("chat: daily digest: %w", err)
	}
	report.PendingOrders = pending

	// Suppress when no activity.
	if report.OpenTickets == 0 && report.NewTickets == 0 && report.PendingOrders == 0 {
		return "", nil
	}
	return FormatDigest(report), nil
}

// FormatDigest renders a support report as chat text.
func FormatDigest(report SupportReport) string {
	lines := []string{
		"**Daily Support Digest**",
		fmt.Sprintf("**Period**: %s – %s",
			report.PeriodStart.Format("Jan 2 15:04"),
			report.PeriodEnd.Format("Jan 2 15:04")),
		fmt.Sprintf("**Tickets**: %d open, %d new", report.OpenTickets, report.NewTickets),
	}
	if report.PendingOrders > 0 {
		lines = append(lines, fmt.Sprintf("**Orders awaiting fulfilment**: %d", report.PendingOrders))
	}
	return strings.Join(lines, "\n")
}
