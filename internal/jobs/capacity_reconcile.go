// Package jobs defines River Queue job types for periodic maintenance.
package jobs

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entproject "github.com/marwaELABIDI/ferme-platform/ent/project"
	"github.com/marwaELABIDI/ferme-platform/internal/domain"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
)

// reconcileEpsilon tolerates float accumulation noise when comparing the
// stored free capacity against the one derived from holding projects.
const reconcileEpsilon = 1e-6

// CapacityReconcileArgs is a periodic job that cross-checks every field's
// stored free capacity against the sum of its holding projects' surfaces.
// The ledger maintains the invariant transactionally; this job is the
// detector of last resort for drift introduced outside the application.
type CapacityReconcileArgs struct{}

// Kind returns the job kind identifier for capacity reconciliation.
func (CapacityReconcileArgs) Kind() string { return "capacity_reconcile" }

// InsertOpts ensures at most one reconcile job is enqueued per hour.
func (CapacityReconcileArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// CapacityReconcileWorker compares stored and derived capacity per field.
type CapacityReconcileWorker struct {
	river.WorkerDefaults[CapacityReconcileArgs]
	entClient *ent.Client
}

// NewCapacityReconcileWorker creates a reconcile worker.
func NewCapacityReconcileWorker(entClient *ent.Client) *CapacityReconcileWorker {
	return &CapacityReconcileWorker{entClient: entClient}
}

// Work scans all fields and logs every drifted one. Drift is reported,
// never auto-corrected: the fix needs a human looking at how the numbers
// diverged.
func (w *CapacityReconcileWorker) Work(ctx context.Context, _ *river.Job[CapacityReconcileArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("capacity reconcile worker is not initialized")
	}

	fields, err := w.entClient.Field.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("query fields for reconciliation: %w", err)
	}

	holding := make([]entproject.Status, 0, len(domain.HoldingStatuses()))
	for _, s := range domain.HoldingStatuses() {
		holding = append(holding, entproject.Status(s))
	}

	var drifted int
	for _, f := range fields {
		var rows []struct {
			Sum float64 `json:"sum"`
		}
		err := w.entClient.Project.Query().
			Where(
				entproject.FieldIDEQ(f.ID),
				entproject.StatusIn(holding...),
			).
			Aggregate(ent.Sum(entproject.FieldSurface)).
			Scan(ctx, &rows)
		if err != nil {
			return fmt.Errorf("sum holding surfaces for field %s: %w", f.ID, err)
		}

		var held float64
		if len(rows) > 0 {
			held = rows[0].Sum
		}

		derivedFree := f.TotalCapacity - held
		if math.Abs(derivedFree-f.FreeCapacity) > reconcileEpsilon {
			drifted++
			logger.Error("capacity drift detected",
				zap.String("field_id", f.ID),
				zap.String("field_name", f.Name),
				zap.Float64("stored_free", f.FreeCapacity),
				zap.Float64("derived_free", derivedFree),
				zap.Float64("held", held),
				zap.Float64("total", f.TotalCapacity),
			)
		}
	}

	logger.Info("capacity reconciliation completed",
		zap.Int("fields_checked", len(fields)),
		zap.Int("fields_drifted", drifted),
	)
	return nil
}
