package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"inventory-api/internal/core/config"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.App.Env = "development"
	c.JWT.Issuer = "inventory-api"
	c.Admin.Username = "admin"
	c.Admin.Password = "admin123"
	return c
}

func TestNewFromConfig_DevFallbackWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	g, err := NewFromConfig(testConfig(), zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, []byte(DevSecret), g.jwt.Secret)
	assert.Equal(t, TokenTTL, g.jwt.TTL)
	assert.Equal(t, 1, logs.Len())
}

func TestNewFromConfig_ProductionNeedsSecret(t *testing.T) {
	c := testConfig()
	c.App.Env = "production"

	_, err := NewFromConfig(c, nil)
	assert.ErrorIs(t, err, ErrMissingSecret)

	c.JWT.Secret = "prod-secret"
	g, err := NewFromConfig(c, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("prod-secret"), g.jwt.Secret)
	assert.NotNil(t, g.ValidateCredentials("admin", "admin123"))
}
