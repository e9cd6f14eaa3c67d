package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/marwaELABIDI/ferme-platform/internal/domain"
)

func rbacRouter(role string, allowed ...domain.Role) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Request = c.Request.WithContext(
				SetUserContext(c.Request.Context(), "u-1", "u-1@localhost", role),
			)
		}
		c.Next()
	})
	r.GET("/guarded", RequireRole(allowed...), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func rbacStatus(t *testing.T, role string, allowed ...domain.Role) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	rec := httptest.NewRecorder()
	rbacRouter(role, allowed...).ServeHTTP(rec, req)
	return rec.Code
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []domain.Role
		want    int
	}{
		{"listed role passes", "SUPERVISOR", []domain.Role{domain.RoleSupervisor}, http.StatusNoContent},
		{"admin passes any check", "ADMIN", []domain.Role{domain.RoleSupervisor}, http.StatusNoContent},
		{"unlisted role is refused", "CLIENT", []domain.Role{domain.RoleSupervisor}, http.StatusForbidden},
		{"missing role is refused", "", []domain.Role{domain.RoleSupervisor}, http.StatusForbidden},
		{"unknown role is refused", "ROOT", []domain.Role{domain.RoleSupervisor}, http.StatusForbidden},
		{"empty allow-list admits only admin", "SUPERVISOR", nil, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, rbacStatus(t, tt.role, tt.allowed...))
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			SetUserContext(c.Request.Context(), "u-1", "u-1@localhost", "CLIENT"),
		)
	})
	r.DELETE("/admin-only", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/admin-only", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}
