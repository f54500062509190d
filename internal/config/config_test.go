package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("CACHE_CONTENT_TTL", "")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "8010", cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Cache.ContentTTL)
	assert.Equal(t, 10*time.Minute, cfg.Cache.SearchTTL)
	assert.True(t, cfg.Database.PrepareStmt)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("DB_PREPARE_STMT", "not-a-bool")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 3, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.True(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Database.PrepareStmt)
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, Load().Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := Load()
		cfg.Database.Driver = "mysql"
		assert.Error(t, cfg.Validate())
	})

	t.Run("minio needs credentials", func(t *testing.T) {
		cfg := Load()
		cfg.MinIO.Enabled = true
		cfg.MinIO.AccessKeyID = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("cache needs url", func(t *testing.T) {
		cfg := Load()
		cfg.Cache.Enabled = true
		cfg.Cache.RedisURL = ""
		assert.Error(t, cfg.Validate())
	})
}
