package modules

import (
	"github.com/marwaELABIDI/ferme-platform/internal/api/handlers"
	"github.com/marwaELABIDI/ferme-platform/internal/api/middleware"
	"github.com/marwaELABIDI/ferme-platform/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient: infra.EntClient,
		Pool:      infra.Pool,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte(cfg.Security.JWTSecret),
			Issuer:     cfg.Security.JWTIssuer,
			ExpiresIn:  cfg.Security.JWTExpiresIn,
		},
		Audit: infra.AuditLogger,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
