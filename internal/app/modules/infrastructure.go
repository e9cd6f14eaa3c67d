package modules

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"github.com/marwaELABIDI/ferme-platform/ent"
	"github.com/marwaELABIDI/ferme-platform/internal/config"
	"github.com/marwaELABIDI/ferme-platform/internal/governance/audit"
	"github.com/marwaELABIDI/ferme-platform/internal/infrastructure"
	"github.com/marwaELABIDI/ferme-platform/internal/notification"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/metrics"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/worker"
)

// Infrastructure holds shared cross-cutting dependencies for all modules.
// It is a provider, not a Module.
type Infrastructure struct {
	Config      *config.Config
	DB          *infrastructure.DatabaseClients
	Pools       *worker.Pools
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	RiverClient *river.Client[pgx.Tx]
	AuditLogger *audit.Logger
	Metrics     *metrics.Recorder
	Notifier    *notification.Triggers
}

// NewInfrastructure initializes DB/pools and shared services.
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	// Dev-mode: auto-create Ent tables + River queue tables.
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		NotifyPoolSize:  cfg.Worker.NotifyPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	entClient := db.EntClient
	sender := notification.NewInboxSender(entClient)

	return &Infrastructure{
		Config:      cfg,
		DB:          db,
		Pools:       pools,
		EntClient:   entClient,
		Pool:        db.Pool,
		RiverClient: db.RiverClient,
		AuditLogger: audit.NewLogger(entClient),
		Metrics:     metrics.NewRecorder(),
		Notifier:    notification.NewTriggers(sender, entClient).WithPools(pools),
	}, nil
}

// InitRiver initializes River client on top of a prepared worker registry.
func (i *Infrastructure) InitRiver(workers *river.Workers) error {
	if i == nil || i.DB == nil || i.Config == nil {
		return fmt.Errorf("infrastructure is not initialized")
	}
	if err := i.DB.InitRiverClient(workers, i.Config.River); err != nil {
		return fmt.Errorf("init river: %w", err)
	}
	i.RiverClient = i.DB.RiverClient
	return nil
}

// Close releases infra resources in reverse dependency order.
func (i *Infrastructure) Close() {
	if i == nil {
		return
	}
	if i.Pools != nil {
		i.Pools.Shutdown()
	}
	if i.DB != nil {
		i.DB.Close()
	}
}
