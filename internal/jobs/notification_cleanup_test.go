package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"

	"github.com/marwaELABIDI/ferme-platform/ent"
	"github.com/marwaELABIDI/ferme-platform/ent/notification"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
	"github.com/marwaELABIDI/ferme-platform/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func seedNotification(t *testing.T, client *ent.Client, userID string, age time.Duration, read bool) string {
	t.Helper()
	id := uuid.NewString()
	_, err := client.Notification.Create().
		SetID(id).
		SetUserID(userID).
		SetType(notification.TypeRESERVATION_PENDING).
		SetTitle("nouvelle réservation").
		SetMessage("une réservation attend votre décision").
		SetRead(read).
		SetCreatedAt(time.Now().UTC().Add(-age)).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed notification: %v", err)
	}
	return id
}

func TestNotificationCleanupPrunesInbox(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "jobs_cleanup")
	ctx := context.Background()

	_, err := client.User.Create().
		SetID("admin-1").
		SetEmail("admin-1@localhost").
		SetPasswordHash("x").
		SetRole("ADMIN").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	day := 24 * time.Hour
	retention := 90 * day

	staleRead := seedNotification(t, client, "admin-1", 100*day, true)
	staleUnread := seedNotification(t, client, "admin-1", 100*day, false)
	ancientUnread := seedNotification(t, client, "admin-1", 200*day, false)
	freshRead := seedNotification(t, client, "admin-1", day, true)

	worker := NewNotificationCleanupWorker(client, retention)
	if err := worker.Work(ctx, nil); err != nil {
		t.Fatalf("Work() error = %v", err)
	}

	remaining, err := client.Notification.Query().IDs(ctx)
	if err != nil {
		t.Fatalf("query notifications: %v", err)
	}
	kept := map[string]bool{}
	for _, id := range remaining {
		kept[id] = true
	}
	if kept[staleRead] {
		t.Error("read notification past retention survived")
	}
	if kept[ancientUnread] {
		t.Error("unread notification past the hard cap survived")
	}
	if !kept[staleUnread] {
		t.Error("unread notification inside the hard cap was pruned")
	}
	if !kept[freshRead] {
		t.Error("fresh read notification was pruned")
	}

	// A second run over an already pruned inbox is a no-op.
	if err := worker.Work(ctx, nil); err != nil {
		t.Fatalf("second Work() error = %v", err)
	}
}

func TestNotificationCleanupDefaultsRetention(t *testing.T) {
	w := NewNotificationCleanupWorker(nil, 0)
	if w.retention != DefaultNotificationRetention {
		t.Fatalf("retention = %s, want %s", w.retention, DefaultNotificationRetention)
	}
	w = NewNotificationCleanupWorker(nil, 7*24*time.Hour)
	if w.retention != 7*24*time.Hour {
		t.Fatalf("retention = %s, want 7d", w.retention)
	}
}

func TestNotificationCleanupWorkRequiresClient(t *testing.T) {
	var w *NotificationCleanupWorker
	if err := w.Work(context.Background(), nil); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("nil receiver Work() error = %v", err)
	}
	if err := (&NotificationCleanupWorker{}).Work(context.Background(), nil); err == nil {
		t.Fatal("Work() without client should fail")
	}
}

func TestNotificationCleanupArgs(t *testing.T) {
	if got := (NotificationCleanupArgs{}).Kind(); got != "notification_cleanup" {
		t.Fatalf("Kind() = %q", got)
	}
	opts := (NotificationCleanupArgs{}).InsertOpts()
	if opts.UniqueOpts.ByPeriod != 24*time.Hour || !opts.UniqueOpts.ByQueue {
		t.Fatalf("unexpected unique opts: %+v", opts.UniqueOpts)
	}
	if opts.Queue != river.QueueDefault || opts.MaxAttempts != 1 {
		t.Fatalf("unexpected insert opts: queue=%q attempts=%d", opts.Queue, opts.MaxAttempts)
	}
}
