// Package app is the composition root; bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"github.com/marwaELABIDI/ferme-platform/internal/api/handlers"
	"github.com/marwaELABIDI/ferme-platform/internal/app/modules"
	"github.com/marwaELABIDI/ferme-platform/internal/config"
	"github.com/marwaELABIDI/ferme-platform/internal/infrastructure"
	"github.com/marwaELABIDI/ferme-platform/internal/jobs"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	allModules := []modules.Module{
		modules.NewAllocationModule(infra),
		modules.NewAdminModule(infra),
		modules.NewNotificationModule(infra),
	}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}

	if infra.RiverClient != nil {
		// Notification retention: run daily and once on startup to avoid
		// long-lived inbox bloat.
		infra.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(24*time.Hour),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.NotificationCleanupArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		)
		// Capacity drift detection: hourly cross-check of stored free
		// capacity against the sum of holding projects.
		infra.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(time.Hour),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.CapacityReconcileArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		)
	}

	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(cfg, server, infra.Metrics, serverDeps.JWTCfg.SigningKey),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Modules: allModules,
	}, nil
}
