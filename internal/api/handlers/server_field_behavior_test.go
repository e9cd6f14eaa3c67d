package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entuser "github.com/marwaELABIDI/ferme-platform/ent/user"
	"github.com/marwaELABIDI/ferme-platform/internal/api/middleware"
	"github.com/marwaELABIDI/ferme-platform/internal/domain"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/metrics"
	"github.com/marwaELABIDI/ferme-platform/internal/testutil"
	"github.com/marwaELABIDI/ferme-platform/internal/usecase"
)

// newTestAPI wires the server behind the same middleware chain the
// application router uses, with the caller's identity injected instead
// of a real token.
func newTestAPI(t *testing.T, prefix string) (*ent.Client, func(userID, role string) *gin.Engine) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	coord := usecase.NewCoordinator(client, 10*time.Second)
	recorder := metrics.NewRecorder()
	server := NewServer(ServerDeps{
		EntClient:    client,
		JWTCfg:       handlerJWTCfg,
		FieldAdmin:   usecase.NewFieldAdmin(coord, client),
		Reservations: usecase.NewReservationDecision(coord, client, recorder),
		Projects:     usecase.NewProjectAllocation(coord, client, recorder),
	})

	seedTestUsers(t, client)

	router := func(userID, role string) *gin.Engine {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(
				middleware.SetUserContext(c.Request.Context(), userID, userID+"@localhost", role),
			)
			c.Next()
		})

		r.GET("/fields", server.ListFields)
		r.GET("/fields/:field_id", server.GetField)
		r.POST("/fields", middleware.RequireAdmin(), server.CreateField)
		r.PATCH("/fields/:field_id", middleware.RequireAdmin(), server.UpdateField)
		r.DELETE("/fields/:field_id", middleware.RequireAdmin(), server.DeleteField)

		r.POST("/reservations", server.CreateReservation)
		r.GET("/reservations", server.ListReservations)
		r.GET("/reservations/:reservation_id", server.GetReservation)
		r.POST("/reservations/:reservation_id/decision", middleware.RequireAdmin(), server.DecideReservation)
		r.DELETE("/reservations/:reservation_id", server.DeleteReservation)

		r.GET("/projects", server.ListProjects)
		return r
	}
	return client, router
}

func seedTestUsers(t *testing.T, client *ent.Client) {
	t.Helper()
	for id, role := range map[string]entuser.Role{
		"admin-1":      entuser.RoleADMIN,
		"supervisor-1": entuser.RoleSUPERVISOR,
		"client-1":     entuser.RoleCLIENT,
		"client-2":     entuser.RoleCLIENT,
	} {
		if _, err := client.User.Create().
			SetID(id).
			SetEmail(id + "@localhost").
			SetPasswordHash("x").
			SetRole(role).
			Save(t.Context()); err != nil {
			t.Fatalf("seed user %s: %v", id, err)
		}
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFieldEndpoints(t *testing.T) {
	t.Parallel()

	_, router := newTestAPI(t, "field_endpoints")
	admin := router("admin-1", string(domain.RoleAdmin))
	client := router("client-1", string(domain.RoleClient))

	var created FieldResponse
	t.Run("admin creates a field", func(t *testing.T) {
		w := doJSON(t, admin, http.MethodPost, "/fields",
			`{"name":"parcelle-est","location":"secteur B","total_capacity":150,"soil_type":"argileux"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if created.FreeCapacity != 150 || created.Status != "ACTIVE" {
			t.Fatalf("unexpected field: %+v", created)
		}
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		w := doJSON(t, admin, http.MethodPost, "/fields",
			`{"name":"parcelle-est","total_capacity":10}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("status=%d, want 409; body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("client cannot create fields", func(t *testing.T) {
		w := doJSON(t, client, http.MethodPost, "/fields",
			`{"name":"parcelle-sud","total_capacity":10}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("status=%d, want 403", w.Code)
		}
	})

	t.Run("anyone authenticated lists fields", func(t *testing.T) {
		w := doJSON(t, client, http.MethodGet, "/fields", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "parcelle-est") {
			t.Fatalf("listing missing field: %s", w.Body.String())
		}
	})

	t.Run("get missing field is 404", func(t *testing.T) {
		w := doJSON(t, client, http.MethodGet, "/fields/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status=%d, want 404", w.Code)
		}
	})

	t.Run("admin resizes total capacity", func(t *testing.T) {
		w := doJSON(t, admin, http.MethodPatch, "/fields/"+created.ID, `{"total_capacity":200}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var updated FieldResponse
		if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if updated.TotalCapacity != 200 || updated.FreeCapacity != 200 {
			t.Fatalf("unexpected field after resize: %+v", updated)
		}
	})

	t.Run("admin deletes the field", func(t *testing.T) {
		w := doJSON(t, admin, http.MethodDelete, "/fields/"+created.ID, "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestReservationEndpoints(t *testing.T) {
	t.Parallel()

	entClient, router := newTestAPI(t, "reservation_endpoints")
	admin := router("admin-1", string(domain.RoleAdmin))
	client := router("client-1", string(domain.RoleClient))

	if _, err := entClient.Field.Create().
		SetID("f1").
		SetName("parcelle-ouest").
		SetTotalCapacity(150).
		SetFreeCapacity(150).
		Save(t.Context()); err != nil {
		t.Fatalf("seed field: %v", err)
	}

	start := time.Now().UTC().Format(time.RFC3339)
	end := time.Now().UTC().AddDate(0, 6, 0).Format(time.RFC3339)

	var created ReservationResponse
	t.Run("client submits a reservation", func(t *testing.T) {
		w := doJSON(t, client, http.MethodPost, "/reservations",
			`{"field_id":"f1","surface_requested":80,"start_requested":"`+start+`","end_requested":"`+end+`"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if created.Status != "PENDING" || created.ClientID != "client-1" {
			t.Fatalf("unexpected reservation: %+v", created)
		}
	})

	t.Run("client cannot decide", func(t *testing.T) {
		w := doJSON(t, client, http.MethodPost, "/reservations/"+created.ID+"/decision",
			`{"decision":"APPROVED","supervisor_id":"supervisor-1"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("status=%d, want 403", w.Code)
		}
	})

	t.Run("foreign client cannot read it", func(t *testing.T) {
		other := router("client-2", string(domain.RoleClient))
		w := doJSON(t, other, http.MethodGet, "/reservations/"+created.ID, "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("status=%d, want 403; body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("admin approves", func(t *testing.T) {
		w := doJSON(t, admin, http.MethodPost, "/reservations/"+created.ID+"/decision",
			`{"decision":"APPROVED","supervisor_id":"supervisor-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var out usecase.DecideReservationOutput
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Status != "APPROVED" || out.ProjectID == "" {
			t.Fatalf("unexpected decision output: %+v", out)
		}

		f, err := entClient.Field.Get(t.Context(), "f1")
		if err != nil {
			t.Fatalf("reload field: %v", err)
		}
		if f.FreeCapacity != 70 {
			t.Fatalf("free capacity = %v, want 70", f.FreeCapacity)
		}
	})

	t.Run("second decision conflicts", func(t *testing.T) {
		w := doJSON(t, admin, http.MethodPost, "/reservations/"+created.ID+"/decision",
			`{"decision":"REJECTED"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("status=%d, want 409; body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("decided reservation cannot be deleted", func(t *testing.T) {
		w := doJSON(t, client, http.MethodDelete, "/reservations/"+created.ID, "")
		if w.Code != http.StatusConflict {
			t.Fatalf("status=%d, want 409; body=%s", w.Code, w.Body.String())
		}
	})
}
