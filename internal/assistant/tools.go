package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/zulandar/clerk/internal/store"
	"gorm.io/gorm"
)

// Param helpers. Parameters arrive as map[string]any from the router or the
// HTTP API, so types need coercion.

func paramString(p Params, key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

func paramInt(p Params, key string) int {
	switch v := p[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func paramFloat(p Params, key string) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// getServicesTool lists the active catalog with a per-category summary.
type getServicesTool struct {
	db *gorm.DB
}

// ServicesSummary accompanies catalog listings in tool results.
type ServicesSummary struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"byCategory"`
}

func (t *getServicesTool) Execute(ctx context.Context, params Params, tc ToolContext) (*ToolResult, error) {
	services, err := store.ListServices(t.db, store.ServiceFilters{
		Category: paramString(params, "category"),
		Search:   paramString(params, "search"),
		Limit:    paramInt(params, "limit"),
	})
	if err != nil {
		return nil, err
	}
	counts, err := store.CountByCategory(t.db)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if len(services) == 0 {
		return &ToolResult{
			Data:    services,
			Message: "No services match right now — check back soon or open a ticket for a custom request.",
			Summary: ServicesSummary{Total: total, ByCategory: counts},
		}, nil
	}
	return &ToolResult{
		Data:    services,
		Message: fmt.Sprintf("Here are %d available services.", len(services)),
		Summary: ServicesSummary{Total: total, ByCategory: counts},
	}, nil
}

// getRentalsTool lists available rental listings.
type getRentalsTool struct {
	db *gorm.DB
}

func (t *getRentalsTool) Execute(ctx context.Context, params Params, tc ToolContext) (*ToolResult, error) {
	rentals, err := store.ListRentals(t.db, store.RentalFilters{
		Category: paramString(params, "category"),
		Status:   paramString(params, "status"),
		Limit:    paramInt(params, "limit"),
	})
	if err != nil {
		return nil, err
	}
	if len(rentals) == 0 {
		return &ToolResult{Data: rentals, Message: "No rentals are available right now."}, nil
	}
	return &ToolResult{
		Data:    rentals,
		Message: fmt.Sprintf("Here are %d available rentals.", len(rentals)),
	}, nil
}

// getOrdersTool lists the calling user's orders.
type getOrdersTool struct {
	db *gorm.DB
}

func (t *getOrdersTool) Execute(ctx context.Context, params Params, tc ToolContext) (*ToolResult, error) {
	status := paramString(params, "status")
	if status != "" && !store.OrderStatuses[status] {
		return &ToolResult{Message: fmt.Sprintf("%q is not an order status I recognize.", status)}, nil
	}
	orders, err := store.ListOrders(t.db, tc.UserID, store.OrderFilters{
		Status: status,
		Limit:  paramInt(params, "limit"),
	})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return &ToolResult{Data: orders, Message: "You have no orders yet."}, nil
	}
	return &ToolResult{
		Data:    orders,
		Message: fmt.Sprintf("You have %d recent orders.", len(orders)),
	}, nil
}

// getWalletTool reports the calling user's balance and recent entries.
type getWalletTool struct {
	db *gorm.DB
}

func (t *getWalletTool) Execute(ctx context.Context, params Params, tc ToolContext) (*ToolResult, error) {
	balance, err := store.WalletBalance(t.db, tc.UserID)
	if err != nil {
		return nil, err
	}
	entries, err := store.RecentWalletEntries(t.db, tc.UserID, paramInt(params, "limit"))
	if err != nil {
		return nil, err
	}
	return &ToolResult{
		Data: map[string]any{
			"balance": balance,
			"entries": entries,
		},
		Message: fmt.Sprintf("Your wallet balance is $%.2f.", balance),
	}, nil
}

// createTicketTool opens a support ticket for the calling user.
type createTicketTool struct {
	db *gorm.DB
}

func (t *createTicketTool) Execute(ctx context.Context, params Params, tc ToolContext) (*ToolResult, error) {
	subject := paramString(params, "subject")
	if subject == "" {
		return &ToolResult{Message: "What should the ticket be about? Try: open a ticket about my delivery."}, nil
	}
	ticket, err := store.CreateTicket(t.db, store.TicketOpts{
		UserID:   tc.UserID,
		Subject:  subject,
		Message:  paramString(params, "message"),
		Priority: paramString(params, "priority"),
		Category: paramString(params, "category"),
	})
	if err != nil {
		return nil, err
	}
	return &ToolResult{
		Data:    ticket,
		Message: fmt.Sprintf("Ticket #%d is open — the team will get back to you.", ticket.Number),
	}, nil
}

// createServiceTool adds a catalog listing. Admin only.
type createServiceTool struct {
	db *gorm.DB
}

func (t *createServiceTool) Execute(ctx context.Context, params Params, tc ToolContext) (*ToolResult, error) {
	title := paramString(params, "title")
	if title == "" {
		return &ToolResult{Message: `The listing needs a title. Try: add a service called "Profile Review" for $50.`}, nil
	}
	price := paramFloat(params, "price")
	if price <= 0 {
		return &ToolResult{Message: "The listing needs a positive price."}, nil
	}
	service, err := store.CreateService(t.db, store.ServiceOpts{
		Title:       title,
		Price:       price,
		Description: paramString(params, "description"),
		Category:    paramString(params, "category"),
	})
	if err != nil {
		return nil, err
	}
	return &ToolResult{
		Data:    service,
		Message: fmt.Sprintf("Listed %q at $%.2f (slug %s).", service.Title, service.Price, service.Slug),
	}, nil
}

// updateOrderStatusTool transitions an order and appends a timeline event.
// Admin only.
type updateOrderStatusTool struct {
	db *gorm.DB
}

func (t *updateOrderStatusTool) Execute(ctx context.Context, params Params, tc ToolContext) (*ToolResult, error) {
	id := paramString(params, "orderId")
	if id == "" {
		return &ToolResult{Message: "Which order? Include the 24-character order reference."}, nil
	}
	status := paramString(params, "status")
	if status == "" || !store.OrderStatuses[status] {
		return &ToolResult{Message: "Which status? One of: pending, processing, delivered, completed, cancelled, refunded."}, nil
	}
	order, err := store.UpdateOrderStatus(t.db, id, status, tc.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ToolResult{Message: fmt.Sprintf("No order %s found.", id)}, nil
		}
		return nil, err
	}
	return &ToolResult{
		Data:    order,
		Message: fmt.Sprintf("Order %s is now %s.", order.ID, order.Status),
	}, nil
}

// RegisterAll wires every tool executor into the registry against the given
// database handle.
func RegisterAll(registry *Registry, db *gorm.DB) error {
	defs := []*ToolDefinition{
		{Name: "getServices", Executor: &getServicesTool{db: db}},
		{Name: "getRentals", Executor: &getRentalsTool{db: db}},
		{Name: "getOrders", RequiresAuth: true, Executor: &getOrdersTool{db: db}},
		{Name: "getWallet", RequiresAuth: true, Executor: &getWalletTool{db: db}},
		{Name: "createTicket", RequiresAuth: true, Executor: &createTicketTool{db: db}},
		{Name: "createService", RequiresAuth: true, AdminOnly: true, Executor: &createServiceTool{db: db}},
		{Name: "updateOrderStatus", RequiresAuth: true, AdminOnly: true, Executor: &updateOrderStatusTool{db: db}},
	}
	for _, def := range defs {
		if err := registry.Register(def); err != nil {
			return err
		}
	}
	return nil
}
