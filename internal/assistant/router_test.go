package assistant

import "testing"

func route(t *testing.T, raw string, isAdmin bool) *ToolMatch {
	t.Helper()
	return RouteToTool(raw, Normalize(raw), isAdmin)
}

func TestRouteToTool_GetServices(t *testing.T) {
	match := route(t, "show me available services", false)
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.Tool != "getServices" {
		t.Errorf("Tool = %q, want getServices", match.Tool)
	}
	if match.AdminOnly {
		t.Error("getServices is not admin-only")
	}
	if got, ok := match.Params["limit"].(int); !ok || got != 10 {
		t.Errorf("Params[limit] = %v, want 10", match.Params["limit"])
	}
	if _, ok := match.Params["category"]; ok {
		t.Errorf("Params[category] should be absent, got %v", match.Params["category"])
	}
}

func TestRouteToTool_GetServicesWithCategory(t *testing.T) {
	match := route(t, "browse services for verification", false)
	if match == nil || match.Tool != "getServices" {
		t.Fatalf("match = %+v, want getServices", match)
	}
	if got := match.Params["category"]; got != "verification" {
		t.Errorf("Params[category] = %v, want verification", got)
	}
}

func TestRouteToTool_GetOrders(t *testing.T) {
	match := route(t, "show my orders", false)
	if match == nil || match.Tool != "getOrders" {
		t.Fatalf("match = %+v, want getOrders", match)
	}

	match = route(t, "show my orders that are pending", false)
	if match == nil || match.Tool != "getOrders" {
		t.Fatalf("match = %+v, want getOrders", match)
	}
	if got := match.Params["status"]; got != "pending" {
		t.Errorf("Params[status] = %v, want pending", got)
	}
}

func TestRouteToTool_GetWallet(t *testing.T) {
	match := route(t, "check my wallet balance", false)
	if match == nil || match.Tool != "getWallet" {
		t.Fatalf("match = %+v, want getWallet", match)
	}
}

func TestRouteToTool_GetRentals(t *testing.T) {
	match := route(t, "show me rentals", false)
	if match == nil || match.Tool != "getRentals" {
		t.Fatalf("match = %+v, want getRentals", match)
	}
}

func TestRouteToTool_CreateTicket(t *testing.T) {
	match := route(t, "open a ticket about my missing delivery", false)
	if match == nil || match.Tool != "createTicket" {
		t.Fatalf("match = %+v, want createTicket", match)
	}
	if got := match.Params["subject"]; got != "my missing delivery" {
		t.Errorf("Params[subject] = %v, want %q", got, "my missing delivery")
	}

	match = route(t, "i want to talk to a human", false)
	if match == nil || match.Tool != "createTicket" {
		t.Fatalf("match = %+v, want createTicket", match)
	}
}

func TestRouteToTool_AdminRulesInvisibleToNonAdmins(t *testing.T) {
	if match := route(t, "i want to create a new service", false); match != nil {
		t.Errorf("non-admin create service routed to %q, want nil", match.Tool)
	}
	if match := route(t, "mark the order 0123456789abcdef01234567 delivered", false); match != nil {
		t.Errorf("non-admin order update routed to %q, want nil", match.Tool)
	}
}

func TestRouteToTool_CreateServiceAdmin(t *testing.T) {
	match := route(t, `add a new service called "Profile Review" for $50`, true)
	if match == nil || match.Tool != "createService" {
		t.Fatalf("match = %+v, want createService", match)
	}
	if !match.AdminOnly {
		t.Error("createService should be admin-only")
	}
	if got := match.Params["title"]; got != "Profile Review" {
		t.Errorf("Params[title] = %v, want %q", got, "Profile Review")
	}
	if got := match.Params["price"]; got != 50.0 {
		t.Errorf("Params[price] = %v, want 50", got)
	}
}

func TestRouteToTool_UpdateOrderStatusAdmin(t *testing.T) {
	match := route(t, "mark the order 0123456789abcdef01234567 delivered", true)
	if match == nil || match.Tool != "updateOrderStatus" {
		t.Fatalf("match = %+v, want updateOrderStatus", match)
	}
	if got := match.Params["orderId"]; got != "0123456789abcdef01234567" {
		t.Errorf("Params[orderId] = %v", got)
	}
	if got := match.Params["status"]; got != "delivered" {
		t.Errorf("Params[status] = %v, want delivered", got)
	}
}

func TestRouteToTool_NoMatch(t *testing.T) {
	for _, text := range []string{
		"can i get a refund",
		"who are you",
		"hello",
	} {
		if match := route(t, text, true); match != nil {
			t.Errorf("RouteToTool(%q) = %q, want nil", text, match.Tool)
		}
	}
}
