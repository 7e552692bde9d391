package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[auth]
public_api_key = "pk"
jwt_secret = "secret"

[booking]
client_cancel_lead_minutes = 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 60, cfg.Booking.ClientCancelLeadMinutes)
	// Не заданные в файле значения берутся из Default
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 720, cfg.Auth.SessionTTL)
	assert.Equal(t, 512, cfg.Cache.BusinessSize)
	assert.Equal(t, time.Minute, cfg.Cache.BusinessTTL())
	assert.Empty(t, cfg.RateLimit.TrustedProxies)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[auth]
public_api_key = "from-file"
jwt_secret = "from-file"
`)
	t.Setenv("BARBERBOOK_PUBLIC_API_KEY", "from-env")
	t.Setenv("BARBERBOOK_DATABASE_DSN", "postgres://u:p@db:5432/bb?sslmode=disable")
	t.Setenv("BARBERBOOK_DATABASE_DRIVER", "pgx")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.PublicAPIKey)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@db:5432/bb?sslmode=disable", cfg.Database.DSN())
}

func TestLoad_RequiresSecrets(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, `
[database]
driver = "mysql"

[auth]
public_api_key = "pk"
jwt_secret = "secret"
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "database.driver")
}

func TestDatabaseConfig_DSNFromParts(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "barber",
		Password: "s3cret",
		DBName:   "barberbook",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://barber:s3cret@db:5433/barberbook?sslmode=disable", d.DSN())
}

func TestLoad_RejectsBadTrustedProxy(t *testing.T) {
	path := writeConfig(t, `
[auth]
public_api_key = "pk"
jwt_secret = "secret"

[rate_limit]
trusted_proxies = ["10.0.0.0/8", "not-a-cidr"]
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "rate_limit.trusted_proxies")
}

func TestLoad_RejectsZeroCacheTTL(t *testing.T) {
	path := writeConfig(t, `
[auth]
public_api_key = "pk"
jwt_secret = "secret"

[cache]
business_ttl_seconds = 0
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "cache.business_ttl_seconds")
}
