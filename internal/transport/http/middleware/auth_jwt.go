package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-api/internal/core/auth"
	"inventory-api/internal/domain"
	resp "inventory-api/internal/transport/http/response"
)

const KeyIdentity = "identity"

// AuthJWT rejects requests without a valid admin bearer token.
func AuthJWT(g *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := g.Authenticate(c.Request)
		if id == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(domain.MsgUnauthorized))
			return
		}
		c.Set(KeyIdentity, *id)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by AuthJWT.
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(KeyIdentity)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}
