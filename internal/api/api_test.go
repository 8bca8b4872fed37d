package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/clerk/internal/assistant"
	"github.com/zulandar/clerk/internal/config"
	"github.com/zulandar/clerk/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Ticket{}, &models.Order{}, &models.OrderEvent{},
		&models.Service{}, &models.Rental{}, &models.WalletEntry{},
		&models.ChatSession{}, &models.ChatTurn{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	cfg, err := config.Parse([]byte("admins:\n  - admin-1\n"))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	registry := assistant.NewRegistry()
	if err := assistant.RegisterAll(registry, db); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	engine, err := assistant.NewEngine(assistant.EngineOpts{
		DB:       db,
		Registry: registry,
		Out:      &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	return NewRouter(StartOpts{DB: db, Config: cfg, Engine: engine}), db
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestChat_MissingFields(t *testing.T) {
	router, _ := newTestRouter(t)
	w := postJSON(t, router, "/v1/chat", map[string]string{"message": "hi"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChat_ClassifiesIntent(t *testing.T) {
	router, _ := newTestRouter(t)
	w := postJSON(t, router, "/v1/chat", map[string]string{
		"userId":  "alice",
		"message": "can i get a refund",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp assistant.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Intent != assistant.IntentPaymentHelp {
		t.Errorf("Intent = %s, want %s", resp.Intent, assistant.IntentPaymentHelp)
	}
	if resp.Reply == "" {
		t.Error("expected a reply")
	}
}

func TestChat_RunsTools(t *testing.T) {
	router, _ := newTestRouter(t)
	w := postJSON(t, router, "/v1/chat", map[string]string{
		"userId":  "alice",
		"message": "show me available services",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"byCategory"`) {
		t.Errorf("body = %s, want a byCategory summary", w.Body.String())
	}
}

func TestTool_Unknown(t *testing.T) {
	router, _ := newTestRouter(t)
	w := postJSON(t, router, "/v1/tools/frobnicate", map[string]any{"userId": "alice"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), assistant.CodeToolNotFound) {
		t.Errorf("body = %s, want %s", w.Body.String(), assistant.CodeToolNotFound)
	}
}

func TestTool_AdminGate(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(t, router, "/v1/tools/createService", map[string]any{
		"userId": "alice",
		"params": map[string]any{"title": "Thing", "price": 10},
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}

	w = postJSON(t, router, "/v1/tools/createService", map[string]any{
		"userId": "admin-1",
		"params": map[string]any{"title": "Thing", "price": 10},
	})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestTool_AuthRequired(t *testing.T) {
	router, _ := newTestRouter(t)
	w := postJSON(t, router, "/v1/tools/getOrders", map[string]any{})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestTranscript_RoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(t, router, "/v1/chat", map[string]string{
		"userId":  "alice",
		"message": "hello",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/transcripts/api/alice", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("transcript status = %d", rec.Code)
	}

	var body struct {
		Turns []models.ChatTurn `json:"turns"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Turns) != 2 {
		t.Errorf("turns = %d, want 2", len(body.Turns))
	}
}
