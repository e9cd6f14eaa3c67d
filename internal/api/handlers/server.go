// Package handlers implements the HTTP API of the farm platform.
//
// Handlers bind explicit request structs, delegate to use cases and
// push failures to the centralized error middleware via c.Error().
// Capacity rules live in the use cases, never here.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marwaELABIDI/ferme-platform/ent"
	"github.com/marwaELABIDI/ferme-platform/internal/api/middleware"
	"github.com/marwaELABIDI/ferme-platform/internal/governance/audit"
	"github.com/marwaELABIDI/ferme-platform/internal/usecase"
)

// Server implements all API handlers.
type Server struct {
	client       *ent.Client
	pool         *pgxpool.Pool
	jwtCfg       middleware.JWTConfig
	audit        *audit.Logger
	fieldAdmin   *usecase.FieldAdmin
	reservations *usecase.ReservationDecision
	projects     *usecase.ProjectAllocation
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig. The metrics recorder is not here: domain
// counters belong to the use cases and the scrape endpoint is mounted
// by the router.
type ServerDeps struct {
	EntClient    *ent.Client
	Pool         *pgxpool.Pool
	JWTCfg       middleware.JWTConfig
	Audit        *audit.Logger
	FieldAdmin   *usecase.FieldAdmin
	Reservations *usecase.ReservationDecision
	Projects     *usecase.ProjectAllocation
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:       deps.EntClient,
		pool:         deps.Pool,
		jwtCfg:       deps.JWTCfg,
		audit:        deps.Audit,
		fieldAdmin:   deps.FieldAdmin,
		reservations: deps.Reservations,
		projects:     deps.Projects,
	}
}

// actorFromCtx extracts the authenticated user ID from the request context.
func actorFromCtx(c *gin.Context) string {
	if uid := middleware.GetUserID(c.Request.Context()); uid != "" {
		return uid
	}
	return "anonymous"
}
