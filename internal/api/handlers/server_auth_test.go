package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	entauditlog "github.com/marwaELABIDI/ferme-platform/ent/auditlog"
	entuser "github.com/marwaELABIDI/ferme-platform/ent/user"
	"github.com/marwaELABIDI/ferme-platform/internal/api/middleware"
	"github.com/marwaELABIDI/ferme-platform/internal/governance/audit"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
	"github.com/marwaELABIDI/ferme-platform/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

var handlerJWTCfg = middleware.JWTConfig{
	SigningKey: []byte("handler-test-signing-key-123456789"),
	Issuer:     "ferme-platform",
	ExpiresIn:  time.Hour,
}

func TestHashPassword_UsesConfiguredCost(t *testing.T) {
	hash, err := HashPassword("Passw0rd!Example")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost() error = %v", err)
	}
	if cost != passwordHashCost {
		t.Fatalf("bcrypt cost = %d, want %d", cost, passwordHashCost)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "auth_handler_login")
	server := NewServer(ServerDeps{EntClient: client, JWTCfg: handlerJWTCfg})

	hash, err := HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if _, err := client.User.Create().
		SetID("user-1").
		SetEmail("alice@localhost").
		SetPasswordHash(hash).
		SetRole(entuser.RoleCLIENT).
		Save(t.Context()); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := client.User.Create().
		SetID("user-2").
		SetEmail("bob@localhost").
		SetPasswordHash(hash).
		SetRole(entuser.RoleCLIENT).
		SetEnabled(false).
		Save(t.Context()); err != nil {
		t.Fatalf("seed disabled user: %v", err)
	}

	login := func(t *testing.T, body string) *httptest.ResponseRecorder {
		t.Helper()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		server.Login(c)
		return w
	}

	t.Run("valid credentials", func(t *testing.T) {
		w := login(t, `{"email":"alice@localhost","password":"correct-horse-battery"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var resp LoginResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Token == "" {
			t.Fatal("empty token")
		}

		u, err := client.User.Get(t.Context(), "user-1")
		if err != nil {
			t.Fatalf("reload user: %v", err)
		}
		if u.LastLoginAt == nil {
			t.Fatal("last_login_at not stamped")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w := login(t, `{"email":"alice@localhost","password":"nope"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status=%d, want 401", w.Code)
		}
	})

	t.Run("disabled account", func(t *testing.T) {
		w := login(t, `{"email":"bob@localhost","password":"correct-horse-battery"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status=%d, want 401", w.Code)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		w := login(t, `{"email":"ghost@localhost","password":"whatever"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status=%d, want 401", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		w := login(t, `{"email":"alice@localhost"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, want 400", w.Code)
		}
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "auth_handler_passwd")
	server := NewServer(ServerDeps{
		EntClient: client,
		JWTCfg:    handlerJWTCfg,
		Audit:     audit.NewLogger(client),
	})

	hash, err := HashPassword("old-password-123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if _, err := client.User.Create().
		SetID("user-1").
		SetEmail("alice@localhost").
		SetPasswordHash(hash).
		SetRole(entuser.RoleCLIENT).
		Save(t.Context()); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	change := func(t *testing.T, body string) *httptest.ResponseRecorder {
		t.Helper()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req = req.WithContext(middleware.SetUserContext(req.Context(), "user-1", "alice@localhost", "CLIENT"))
		c.Request = req
		server.ChangePassword(c)
		return w
	}

	t.Run("wrong current password", func(t *testing.T) {
		w := change(t, `{"old_password":"nope","new_password":"brand-new-secret"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, want 400", w.Code)
		}
	})

	t.Run("success writes hash and audit record", func(t *testing.T) {
		w := change(t, `{"old_password":"old-password-123","new_password":"brand-new-secret"}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}

		u, err := client.User.Get(t.Context(), "user-1")
		if err != nil {
			t.Fatalf("reload user: %v", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("brand-new-secret")); err != nil {
			t.Fatal("new password does not verify")
		}

		row, err := client.AuditLog.Query().
			Where(entauditlog.ActionEQ("user.password_change")).
			Only(t.Context())
		if err != nil {
			t.Fatalf("audit row: %v", err)
		}
		if row.Actor != "user-1" {
			t.Errorf("audit actor = %q, want user-1", row.Actor)
		}
		if row.Details["email"] != "alice@localhost" {
			t.Errorf("audit email = %v, want alice@localhost", row.Details["email"])
		}
	})
}

func TestGetCurrentUser(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "auth_handler_me")
	server := NewServer(ServerDeps{EntClient: client, JWTCfg: handlerJWTCfg})

	if _, err := client.User.Create().
		SetID("user-1").
		SetEmail("alice@localhost").
		SetFullName("Alice Martin").
		SetPasswordHash("x").
		SetRole(entuser.RoleSUPERVISOR).
		Save(t.Context()); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(middleware.SetUserContext(req.Context(), "user-1", "alice@localhost", "SUPERVISOR"))
	c.Request = req

	server.GetCurrentUser(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var got UserInfo
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode user info: %v", err)
	}
	if got.ID != "user-1" || got.Role != "SUPERVISOR" || got.FullName != "Alice Martin" {
		t.Fatalf("unexpected user info: %+v", got)
	}
}
