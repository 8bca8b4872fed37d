package store

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/zulandar/clerk/internal/models"
	"gorm.io/gorm"
)

// MaxOrderLimit caps the number of orders returned by ListOrders.
const MaxOrderLimit = 50

// OrderStatuses is the set of statuses an order may hold.
var OrderStatuses = map[string]bool{
	"pending":    true,
	"processing": true,
	"delivered":  true,
	"completed":  true,
	"cancelled":  true,
	"refunded":   true,
}

// OrderFilters holds optional filters for listing a user's orders.
type OrderFilters struct {
	Status string
	Limit  int // defaults to 10, capped at MaxOrderLimit
}

// GenerateOrderID creates a unique 24-hex-character order reference.
func GenerateOrderID() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("store: order: generate ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// CreateOrder records a new order with a generated reference and an initial
// "pending" timeline event.
func CreateOrder(db *gorm.DB, userID, title string, serviceID uint, amount float64) (*models.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("store: order: user is required")
	}
	id, err := GenerateOrderID()
	if err != nil {
		return nil, err
	}

	order := models.Order{
		ID:        id,
		UserID:    userID,
		ServiceID: serviceID,
		Title:     title,
		Amount:    amount,
		Status:    "pending",
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("store: order: create: %w", err)
	}
	event := models.OrderEvent{
		OrderID: id,
		Status:  "pending",
		Note:    "order created",
		Actor:   userID,
	}
	if err := db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("store: order: initial event: %w", err)
	}
	return &order, nil
}

// ListOrders returns a user's orders, newest first, with optional status
// filter and a capped limit.
func ListOrders(db *gorm.DB, userID string, filters OrderFilters) ([]models.Order, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > MaxOrderLimit {
		limit = MaxOrderLimit
	}

	q := db.Where("user_id = ?", userID)
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}

	var orders []models.Order
	if err := q.Order("created_at DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("store: order: list: %w", err)
	}
	return orders, nil
}

// GetOrder retrieves an order by reference, preloading its timeline.
func GetOrder(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Events", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at, id")
	}).Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store: order %s: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("store: order: get %s: %w", id, err)
	}
	return &order, nil
}

// UpdateOrderStatus mutates an order's status and appends a timeline event.
// The existing timeline is never rewritten.
func UpdateOrderStatus(db *gorm.DB, id, status, actor string) (*models.Order, error) {
	if !OrderStatuses[status] {
		return nil, fmt.Errorf("store: order: invalid status %q", status)
	}

	var order models.Order
	if err := db.Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store: order %s: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("store: order: get %s: %w", id, err)
	}

	if err := db.Model(&order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("store: order: update status: %w", err)
	}
	event := models.OrderEvent{
		OrderID: id,
		Status:  status,
		Actor:   actor,
	}
	if err := db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("store: order: append event: %w", err)
	}
	order.Status = status
	return &order, nil
}

// PendingOrderCount returns the number of orders awaiting fulfilment.
func PendingOrderCount(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Order{}).
		Where("status IN ?", []string{"pending", "processing"}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("store: order: pending count: %w", err)
	}
	return int(count), nil
}
