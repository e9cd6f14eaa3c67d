package modules

import (
	"context"

	"github.com/riverqueue/river"

	"github.com/marwaELABIDI/ferme-platform/internal/api/handlers"
	"github.com/marwaELABIDI/ferme-platform/internal/jobs"
)

// NotificationModule owns the inbox: the trigger service itself lives in
// shared infrastructure, this module registers the retention worker.
type NotificationModule struct {
	infra *Infrastructure
}

// NewNotificationModule creates the notification module.
func NewNotificationModule(infra *Infrastructure) *NotificationModule {
	return &NotificationModule{infra: infra}
}

func (m *NotificationModule) Name() string { return "notifications" }

func (m *NotificationModule) ContributeServerDeps(_ *handlers.ServerDeps) {}

func (m *NotificationModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(
		m.infra.EntClient,
		m.infra.Config.Notification.Retention,
	))
}

func (m *NotificationModule) Shutdown(context.Context) error { return nil }
