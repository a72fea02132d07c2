package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/response"
)

// Auth reads the gateway-verified identity headers and stores them on the
// request as a model.Scope. Requests without a user and workspace identity
// are rejected before they reach a handler.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		workspaceID := strings.TrimSpace(c.GetHeader(HeaderWorkspaceID))
		if userID == "" || workspaceID == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: missing identity headers")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		role := strings.TrimSpace(c.GetHeader(HeaderUserRole))
		if role == "" {
			role = defaultRole
		}

		c.Set(scopeKey, model.Scope{
			UserID:      userID,
			WorkspaceID: workspaceID,
			Role:        role,
		})
		c.Next()
	}
}

// ScopeFromContext returns the identity that Auth stored on the request.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
