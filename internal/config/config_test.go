package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MemoryDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, 10*time.Second, cfg.Geocode.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Geocode.RetryDelay)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_MongoRequiresURI(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongodb")
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	assert.ErrorContains(t, err, "MONGO_URI is required")
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("APP_PORT", "not-a-port")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid APP_PORT")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "postgres without password",
			cfg: Config{
				App:   AppConfig{Port: 8080},
				Store: StoreConfig{Driver: StorePostgres},
			},
			wantErr: "DB_PASSWORD is required",
		},
		{
			name: "unknown driver",
			cfg: Config{
				App:   AppConfig{Port: 8080},
				Store: StoreConfig{Driver: "sqlite"},
			},
			wantErr: "unsupported STORE_DRIVER",
		},
		{
			name: "bad timezone",
			cfg: Config{
				App:   AppConfig{Port: 8080, Timezone: "Mars/Olympus"},
				Store: StoreConfig{Driver: StoreMemory},
			},
			wantErr: "invalid APP_TIMEZONE",
		},
		{
			name: "memory ok",
			cfg: Config{
				App:   AppConfig{Port: 8080, Timezone: "Local"},
				Store: StoreConfig{Driver: StoreMemory},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if c.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, c.wantErr)
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", Name: "att", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://u:p@db:5433/att?sslmode=disable", cfg.DatabaseURL())
}

func TestSlogLevel(t *testing.T) {
	cfg := Config{App: AppConfig{LogLevel: "DEBUG"}}
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	cfg.App.LogLevel = "bogus"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
