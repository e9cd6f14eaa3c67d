package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/marwaELABIDI/ferme-platform/ent"
	"github.com/marwaELABIDI/ferme-platform/ent/notification"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
)

const (
	// DefaultNotificationRetention is the retention baseline for inbox
	// notifications.
	DefaultNotificationRetention = 90 * 24 * time.Hour
)

// NotificationCleanupArgs is a periodic maintenance job that removes expired
// notifications from the platform inbox.
type NotificationCleanupArgs struct{}

// Kind returns the job kind identifier for periodic notification cleanup.
func (NotificationCleanupArgs) Kind() string { return "notification_cleanup" }

// InsertOpts ensures at most one cleanup job is enqueued within the same day.
func (NotificationCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// NotificationCleanupWorker prunes the inbox: read notifications past the
// retention window go first, and anything older than twice the window is
// removed regardless of read state.
type NotificationCleanupWorker struct {
	river.WorkerDefaults[NotificationCleanupArgs]
	entClient *ent.Client
	retention time.Duration
}

// NewNotificationCleanupWorker creates a cleanup worker. Non-positive retention
// falls back to the 90-day default.
func NewNotificationCleanupWorker(entClient *ent.Client, retention time.Duration) *NotificationCleanupWorker {
	if retention <= 0 {
		retention = DefaultNotificationRetention
	}
	return &NotificationCleanupWorker{
		entClient: entClient,
		retention: retention,
	}
}

// Work prunes expired inbox rows.
func (w *NotificationCleanupWorker) Work(ctx context.Context, _ *river.Job[NotificationCleanupArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("notification cleanup worker is not initialized")
	}

	now := time.Now().UTC()
	readCutoff := now.Add(-w.retention)
	hardCutoff := now.Add(-2 * w.retention)

	deleted, err := w.entClient.Notification.Delete().
		Where(notification.Or(
			notification.And(
				notification.ReadEQ(true),
				notification.CreatedAtLT(readCutoff),
			),
			notification.CreatedAtLT(hardCutoff),
		)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune notifications before %s: %w", readCutoff.Format(time.RFC3339), err)
	}

	logger.Info("notification cleanup completed",
		zap.Int("deleted_rows", deleted),
		zap.String("read_cutoff", readCutoff.Format(time.RFC3339)),
		zap.String("hard_cutoff", hardCutoff.Format(time.RFC3339)),
	)
	return nil
}
