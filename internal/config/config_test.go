package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("MAPPING_MIN_REPORTS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 2, cfg.Mapping.MinReports)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_HOST", "db")
	t.Setenv("MAPPING_MIN_REPORTS", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test ,")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Contains(t, cfg.Database.DSN(), "host=db")
	assert.Equal(t, 3, cfg.Mapping.MinReports)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.Server.AllowedOrigins)
}

func TestGetEnvInt_Invalid(t *testing.T) {
	t.Setenv("MAPPING_MIN_REPORTS", "-1")
	assert.Equal(t, 2, getEnvInt("MAPPING_MIN_REPORTS", 2))

	t.Setenv("MAPPING_MIN_REPORTS", "two")
	assert.Equal(t, 2, getEnvInt("MAPPING_MIN_REPORTS", 2))
}
