package auth

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"inventory-api/internal/core/config"
)

var ErrMissingSecret = errors.New("jwt secret must be set in production")

// NewFromConfig wires the gate from process configuration. Without a secret
// it falls back to DevSecret and warns, except in production where it fails.
func NewFromConfig(c *config.Config, l *zap.Logger) (*Gate, error) {
	if l == nil {
		l = zap.NewNop()
	}
	secret := c.JWT.Secret
	if secret == "" {
		if c.IsProduction() {
			return nil, ErrMissingSecret
		}
		l.Warn("JWT secret not set, using the insecure development fallback")
		secret = DevSecret
	}
	ttl := TokenTTL
	if c.JWT.TTLHours > 0 {
		ttl = time.Duration(c.JWT.TTLHours) * time.Hour
	}
	j := &JWTer{Secret: []byte(secret), Issuer: c.JWT.Issuer, TTL: ttl}
	admin := Admin{
		Username:     c.Admin.Username,
		Password:     c.Admin.Password,
		PasswordHash: c.Admin.PasswordHash,
	}
	return NewGate(admin, j, l), nil
}
