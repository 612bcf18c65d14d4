package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver())
	assert.Equal(t, "/tmp/test.db", cfg.Database.SQLitePath)
	assert.Equal(t, "favorite_events", cfg.Kafka.Topic("favorite_events"))
	assert.Equal(t, "catalog", cfg.Elasticsearch.IndexName("catalog"))
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
app:
  name: test-app
  port: 8080
database:
  host: db.local
  port: 6543
  user: u
  password: p
  dbname: d
  sslmode: require
kafka:
  topics:
    favorite_events: fav-v2
redis:
  cache_ttl: 60
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-app", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver())
	assert.Equal(t, "host=db.local port=6543 user=u password=p dbname=d sslmode=require", cfg.Database.DSN())
	assert.Equal(t, "fav-v2", cfg.Kafka.Topic("favorite_events"))
	assert.Equal(t, int64(60), int64(cfg.Redis.TTL().Seconds()))
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user:pw@example.com:5432/holonet")
	t.Setenv("PORT", "9090")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver())
	assert.Equal(t, "postgresql://user:pw@example.com:5432/holonet", cfg.Database.DSN())
}
