// Package dbtest поднимает изолированную in-memory базу с применёнными миграциями.
package dbtest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/report-mapping-api/internal/config"
	"github.com/report-mapping-api/internal/database"
	"gorm.io/gorm"
)

// New возвращает новую базу SQLite в памяти с начальными данными.
// Каждый вызов получает собственную базу.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver:    config.DriverSQLite,
		SQLiteDSN: "file:test-" + uuid.NewString() + "?mode=memory&cache=shared",
	}

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(sqlDB, cfg.Driver); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
