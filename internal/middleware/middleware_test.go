package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"compliance-assistant/config"
	"compliance-assistant/internal/middleware"
	"compliance-assistant/internal/model"
	"compliance-assistant/pkg/log"
)

func newTestRouter(cfg *config.Config) (*gin.Engine, *model.Scope) {
	gin.SetMode(gin.TestMode)

	mw := middleware.New(log.NewNop(), cfg)

	seen := &model.Scope{}
	r := gin.New()
	r.GET("/ping", mw.Auth(), mw.RateLimit(), func(c *gin.Context) {
		sc, _ := middleware.ScopeFromContext(c)
		*seen = sc
		c.Status(http.StatusOK)
	})
	return r, seen
}

func doPing(r *gin.Engine, userID, workspaceID, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	if workspaceID != "" {
		req.Header.Set(middleware.HeaderWorkspaceID, workspaceID)
	}
	if role != "" {
		req.Header.Set(middleware.HeaderUserRole, role)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_RejectsMissingIdentity(t *testing.T) {
	r, _ := newTestRouter(&config.Config{})

	if w := doPing(r, "", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no headers: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if w := doPing(r, "user-1", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("user header only: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if w := doPing(r, "", "ws-1", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("workspace header only: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuth_StoresScope(t *testing.T) {
	r, seen := newTestRouter(&config.Config{})

	w := doPing(r, "user-1", "ws-1", "admin")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	want := model.Scope{UserID: "user-1", WorkspaceID: "ws-1", Role: "admin"}
	if *seen != want {
		t.Errorf("scope = %+v, want %+v", *seen, want)
	}
}

func TestAuth_DefaultsRoleToViewer(t *testing.T) {
	r, seen := newTestRouter(&config.Config{})

	if w := doPing(r, "user-1", "ws-1", ""); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if seen.Role != "viewer" {
		t.Errorf("role = %q, want %q", seen.Role, "viewer")
	}
}

func TestRateLimit_EnforcesPerUserBudget(t *testing.T) {
	cfg := &config.Config{}
	cfg.RateLimit.PerMin = 2
	r, _ := newTestRouter(cfg)

	for i := 0; i < 2; i++ {
		if w := doPing(r, "user-1", "ws-1", "admin"); w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i+1, w.Code, http.StatusOK)
		}
	}
	if w := doPing(r, "user-1", "ws-1", "admin"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("over budget: status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}

	// The budget is per user, so another caller is unaffected.
	if w := doPing(r, "user-2", "ws-1", "admin"); w.Code != http.StatusOK {
		t.Fatalf("second user: status = %d, want %d", w.Code, http.StatusOK)
	}
}
