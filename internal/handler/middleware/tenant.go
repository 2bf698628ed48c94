package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"tripcore/internal/handler/httperr"
	"tripcore/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantMiddleware scopes every request to the organization named in the
// bearer token. Handlers never read an org id from the URL or body; the
// token is the only source, which is what makes cross-tenant reads
// structurally impossible at this layer.
type TenantMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxOrganizationIDKey = "organization_id"
	ctxActorKey          = "actor"
)

func NewTenantMiddleware(tokens *jwt.Service) *TenantMiddleware {
	return &TenantMiddleware{tokens: tokens}
}

func (m *TenantMiddleware) RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized, "Access token required")
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in tenant middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, err, httperr.CodeUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ctxOrganizationIDKey, claims.OrganizationID)
		c.Set(ctxActorKey, claims.Actor)
		c.Set("tenant_claims", map[string]any{
			"organization_id": claims.OrganizationID.String(),
			"actor":           claims.Actor,
		})
		c.Next()
	}
}

func GetOrganizationID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxOrganizationIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetActor(c *gin.Context) string {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return ""
	}
	if actor, ok := v.(string); ok {
		return actor
	}
	return ""
}
