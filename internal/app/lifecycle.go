package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
)

// Start brings up the background side of the application: the River
// client that runs the periodic maintenance jobs.
func (a *Application) Start(ctx context.Context) error {
	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Start(ctx); err != nil {
			return fmt.Errorf("start river client: %w", err)
		}
		logger.Info("river client started, periodic jobs scheduled")
	}
	return nil
}

// Shutdown tears the application down in reverse dependency order:
// job consumer first, then modules, then worker pools and the database.
func (a *Application) Shutdown() {
	shutdownCtx := context.Background()

	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Stop(shutdownCtx); err != nil {
			logger.Error("stop river client", zap.Error(err))
		}
	}

	for _, mod := range a.Modules {
		if mod == nil {
			continue
		}
		if err := mod.Shutdown(shutdownCtx); err != nil {
			logger.Warn("module shutdown returned error",
				zap.String("module", mod.Name()),
				zap.Error(err),
			)
		}
	}

	if a.Pools != nil {
		a.Pools.Shutdown()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
