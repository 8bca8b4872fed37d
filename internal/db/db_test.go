package db

import (
	"path/filepath"
	"testing"

	"github.com/zulandar/clerk/internal/config"
	"github.com/zulandar/clerk/internal/models"
	"github.com/zulandar/clerk/internal/store"
)

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		User: "root", Host: "127.0.0.1", Port: 3306, Database: "clerk",
	}
	want := "root@tcp(127.0.0.1:3306)/clerk?parseTime=true"
	if got := DSN(cfg); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}

	cfg.Password = "secret"
	want = "root:secret@tcp(127.0.0.1:3306)/clerk?parseTime=true"
	if got := DSN(cfg); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestConnect_SQLiteAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clerk.db")
	db, err := Connect(config.DatabaseConfig{Driver: "sqlite", Path: path})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	// All tables should exist after migration.
	for _, model := range AllModels() {
		if !db.Migrator().HasTable(model) {
			t.Errorf("missing table for %T", model)
		}
	}
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	if _, err := Connect(config.DatabaseConfig{Driver: "postgres"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestSeedCatalog_Idempotent(t *testing.T) {
	db, err := Connect(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	if err := SeedCatalog(db); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}
	if err := SeedCatalog(db); err != nil {
		t.Fatalf("SeedCatalog (second run): %v", err)
	}

	services, err := store.ListServices(db, store.ServiceFilters{Limit: 50})
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(services) != len(seedServices) {
		t.Errorf("services = %d, want %d (no duplicates)", len(services), len(seedServices))
	}

	var rentals int64
	db.Model(&models.Rental{}).Count(&rentals)
	if int(rentals) != len(seedRentals) {
		t.Errorf("rentals = %d, want %d (no duplicates)", rentals, len(seedRentals))
	}
}
