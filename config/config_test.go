package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, "local", cfg.Uploads.Driver)
	assert.Equal(t, "/uploads", cfg.Uploads.BaseURL)
	assert.Equal(t, "admin@example.com", cfg.Auth.AdminEmail)
	assert.Equal(t, float64(15000000), cfg.App.AnnualBudget)
	assert.Equal(t, 5, cfg.RateLimit.LoginBurst)
}

func TestLoadConfigReadsYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  port: "8088"
store:
  driver: mongo
  mongo:
    uri: mongodb://db:27017
    dbName: trucks
uploads:
  driver: s3
  s3:
    bucket: fleet-docs
    region: sa-east-1
app:
  annualBudget: 2000
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.Server.Port)
	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Equal(t, "mongodb://db:27017", cfg.Store.Mongo.URI)
	assert.Equal(t, "trucks", cfg.Store.Mongo.DBName)
	assert.Equal(t, "fleet-docs", cfg.Uploads.S3.Bucket)
	assert.Equal(t, "sa-east-1", cfg.Uploads.S3.Region)
	assert.Equal(t, float64(2000), cfg.App.AnnualBudget)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: \"7000\"\n"), 0o600))

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
}

func TestLoadConfigRejectsBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [port"), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
