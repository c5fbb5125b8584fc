package auth

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"inventory-api/internal/domain"
	"inventory-api/pkg/utils"
)

// DevSecret signs tokens when no secret is configured. It is public, so any
// token signed with it can be forged.
const DevSecret = "fallback-secret-key-for-development-only"

const (
	TokenTTL     = 24 * time.Hour
	bearerPrefix = "Bearer "
)

type Admin struct {
	Username string
	Password string
	// PasswordHash is an optional bcrypt hash; when set it replaces Password.
	PasswordHash string
}

// Gate guards the API for the single configured admin. Tokens are stateless:
// a token is valid until it expires and cannot be revoked.
type Gate struct {
	admin Admin
	jwt   *JWTer
	log   *zap.Logger
}

func NewGate(admin Admin, j *JWTer, l *zap.Logger) *Gate {
	if l == nil {
		l = zap.NewNop()
	}
	return &Gate{admin: admin, jwt: j, log: l}
}

// ValidateCredentials returns the admin identity on an exact match, nil otherwise.
func (g *Gate) ValidateCredentials(username, password string) *domain.Identity {
	if username != g.admin.Username {
		return nil
	}
	if g.admin.PasswordHash != "" {
		if !utils.CheckPassword(password, g.admin.PasswordHash) {
			return nil
		}
	} else if password != g.admin.Password {
		return nil
	}
	return &domain.Identity{Username: g.admin.Username, Role: domain.RoleAdmin}
}

func (g *Gate) IssueToken(id domain.Identity) (string, error) {
	return g.jwt.Issue(id)
}

// VerifyToken returns nil for malformed, tampered, foreign or expired tokens.
func (g *Gate) VerifyToken(token string) *domain.Identity {
	c, err := g.jwt.Parse(token)
	if err != nil {
		g.log.Debug("token verification failed", zap.Error(err))
		return nil
	}
	if c.Role != domain.RoleAdmin || c.Username == "" {
		return nil
	}
	return &domain.Identity{Username: c.Username, Role: c.Role}
}

// TokenFromRequest extracts the token from "Authorization: Bearer <token>".
// The prefix is case sensitive.
func TokenFromRequest(r *http.Request) string {
	ah := r.Header.Get("Authorization")
	if !strings.HasPrefix(ah, bearerPrefix) {
		return ""
	}
	return ah[len(bearerPrefix):]
}

func (g *Gate) Authenticate(r *http.Request) *domain.Identity {
	tok := TokenFromRequest(r)
	if tok == "" {
		return nil
	}
	return g.VerifyToken(tok)
}
