package middleware

import "time"

const (
	// Identity headers set by the platform gateway after it verifies the
	// caller's token. The assistant trusts them as-is.
	HeaderUserID      = "X-User-ID"
	HeaderWorkspaceID = "X-Workspace-ID"
	HeaderUserRole    = "X-User-Role"

	scopeKey = "assistant_scope"

	defaultRole = "viewer"

	limiterCacheSize = 4096
	limiterTTL       = 10 * time.Minute

	defaultRequestsPerMin = 60
)
