package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "admin", c.Admin.Username)
	assert.Equal(t, "admin123", c.Admin.Password)
	assert.Equal(t, "", c.JWT.Secret)
	assert.Equal(t, 24, c.JWT.TTLHours)
	assert.Equal(t, "data/items.json", c.Store.Path)
	assert.Equal(t, 8080, c.App.HTTP.Port)
	assert.False(t, c.IsProduction())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
app:
  env: production
  http:
    port: 9090
    corsOrigins: ["http://localhost:3000"]
admin:
  username: gudang
jwt:
  secret: from-file
store:
  path: /var/lib/inventory/items.json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("ADMIN_PASSWORD", "rahasia")
	t.Setenv("APP_JWT_SECRET", "from-env")

	c, err := Load(path)
	require.NoError(t, err)

	assert.True(t, c.IsProduction())
	assert.Equal(t, 9090, c.App.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, c.App.HTTP.CORSOrigins)
	assert.Equal(t, "gudang", c.Admin.Username)
	assert.Equal(t, "rahasia", c.Admin.Password)
	assert.Equal(t, "from-env", c.JWT.Secret)
	assert.Equal(t, "/var/lib/inventory/items.json", c.Store.Path)
}

func TestLoad_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
