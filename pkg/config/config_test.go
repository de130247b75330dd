package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":3300", cfg.Server.Address)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 20*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.False(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, defaultSQLitePath, cfg.DB.SQLiteDSN())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  address: ":8080"
  request_timeout: 2s
db:
  driver: postgres
  host: db.internal
  user: zoo
  password: secret
  name: zoo
  port: 6543
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 2*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "host=db.internal user=zoo password=secret dbname=zoo port=6543 sslmode=disable", cfg.DB.PostgresDSN())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  address: \":8080\"\n"), 0o600))

	t.Setenv("ZOO_SERVER_ADDRESS", ":9090")
	t.Setenv("ZOO_LOG_LEVEL", "debug")
	t.Setenv("ZOO_DB_DSN", "file:test.db")

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "file:test.db", cfg.DB.SQLiteDSN())
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("ZOO_DB_DRIVER", "mysql")

	_, err := load(viper.New(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Server: ServerConfig{Address: ":3300", Mode: "release"},
			DB:     DBConfig{Driver: DriverSQLite},
		}
	}

	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Server.Address = "  "
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Server.RequestTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 10 * time.Second
	assert.Error(t, cfg.Validate(), "write deadline would cut off slow store calls")

	cfg.Server.WriteTimeout = 20 * time.Second
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Server.Mode = "production"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Server.RateLimit = RateLimitConfig{Enabled: true, RPS: 0, Burst: 1}
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Server.RateLimit = RateLimitConfig{Enabled: true, RPS: 1, Burst: 1}
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsRequestTimeoutBeyondWriteTimeout(t *testing.T) {
	t.Setenv("ZOO_SERVER_REQUEST_TIMEOUT", "30s")

	_, err := load(viper.New(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write_timeout")

	t.Setenv("ZOO_SERVER_WRITE_TIMEOUT", "35s")
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 35*time.Second, cfg.Server.WriteTimeout)
}
