package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entuser "github.com/marwaELABIDI/ferme-platform/ent/user"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/worker"
)

// Triggers encapsulates notification trigger logic for the reservation
// and project lifecycle. Three trigger points:
//  1. RESERVATION_PENDING — notify administrators when a request is submitted
//  2. RESERVATION_APPROVED / RESERVATION_REJECTED — notify the client on decision
//  3. PROJECT_ASSIGNED / PROJECT_STATUS_CHANGE — notify the client as their
//     project is created and moves through its lifecycle
//
// Delivery is best-effort: a failed notification write is logged, never
// propagated, so it can never undo a committed allocation. With a worker
// pool attached, delivery leaves the request goroutine entirely.
type Triggers struct {
	sender Sender
	client *ent.Client
	pools  *worker.Pools
}

// NewTriggers creates a new notification trigger service.
func NewTriggers(sender Sender, client *ent.Client) *Triggers {
	return &Triggers{sender: sender, client: client}
}

// WithPools routes delivery through the notify worker pool instead of the
// caller's goroutine. Without pools every trigger delivers inline.
func (t *Triggers) WithPools(pools *worker.Pools) *Triggers {
	t.pools = pools
	return t
}

// dispatch runs deliver on the notify pool when one is attached. A full
// pool falls back to inline delivery rather than dropping the message.
func (t *Triggers) dispatch(ctx context.Context, kind string, deliver func(context.Context)) {
	if t.pools == nil {
		deliver(ctx)
		return
	}
	if err := t.pools.SubmitDetached("notify", deliver); err != nil {
		logger.Warn("notify pool rejected task, delivering inline",
			zap.String("trigger", kind),
			zap.Error(err),
		)
		deliver(ctx)
	}
}

// OnReservationSubmitted fires when a client submits a capacity request.
// Notifies every enabled administrator account.
func (t *Triggers) OnReservationSubmitted(ctx context.Context, reservationID, clientID, fieldName string) {
	t.dispatch(ctx, "reservation_submitted", func(ctx context.Context) {
		adminIDs, err := t.findAdminUserIDs(ctx)
		if err != nil {
			logger.Error("failed to find administrators for notification",
				zap.String("reservation_id", reservationID),
				zap.Error(err),
			)
			return
		}

		if len(adminIDs) == 0 {
			logger.Warn("no administrators found for notification", zap.String("reservation_id", reservationID))
			return
		}

		params := Params{
			Type:         TypeReservationPending,
			Title:        "New reservation pending decision",
			Message:      fmt.Sprintf("A client submitted a reservation for field %s", fieldName),
			ResourceType: "reservation",
			ResourceID:   reservationID,
		}

		if err := t.sender.SendToMany(ctx, adminIDs, params); err != nil {
			logger.Error("failed to send RESERVATION_PENDING notifications",
				zap.String("reservation_id", reservationID),
				zap.Int("admin_count", len(adminIDs)),
				zap.Error(err),
			)
		}
	})
}

// OnReservationApproved fires when a reservation is approved.
// Notifies the requesting client.
func (t *Triggers) OnReservationApproved(ctx context.Context, reservationID, clientID, decidedBy string) {
	t.dispatch(ctx, "reservation_approved", func(ctx context.Context) {
		params := Params{
			RecipientID:  clientID,
			Type:         TypeReservationApproved,
			Title:        "Your reservation has been approved",
			Message:      fmt.Sprintf("Your reservation %s was approved by %s", reservationID, decidedBy),
			ResourceType: "reservation",
			ResourceID:   reservationID,
		}

		if err := t.sender.Send(ctx, params); err != nil {
			logger.Error("failed to send RESERVATION_APPROVED notification",
				zap.String("reservation_id", reservationID),
				zap.String("client", clientID),
				zap.Error(err),
			)
		}
	})
}

// OnReservationRejected fires when a reservation is rejected.
// Notifies the requesting client.
func (t *Triggers) OnReservationRejected(ctx context.Context, reservationID, clientID, decidedBy string) {
	t.dispatch(ctx, "reservation_rejected", func(ctx context.Context) {
		params := Params{
			RecipientID:  clientID,
			Type:         TypeReservationRejected,
			Title:        "Your reservation has been rejected",
			Message:      fmt.Sprintf("Your reservation %s was rejected by %s", reservationID, decidedBy),
			ResourceType: "reservation",
			ResourceID:   reservationID,
		}

		if err := t.sender.Send(ctx, params); err != nil {
			logger.Error("failed to send RESERVATION_REJECTED notification",
				zap.String("reservation_id", reservationID),
				zap.String("client", clientID),
				zap.Error(err),
			)
		}
	})
}

// OnProjectAssigned fires when a project is created for a client, either
// directly by an administrator or through an approved reservation.
func (t *Triggers) OnProjectAssigned(ctx context.Context, projectID, clientID, supervisorID string) {
	t.dispatch(ctx, "project_assigned", func(ctx context.Context) {
		params := Params{
			RecipientID:  clientID,
			Type:         TypeProjectAssigned,
			Title:        "A project has been assigned to you",
			Message:      fmt.Sprintf("Project %s was created for you under supervisor %s", projectID, supervisorID),
			ResourceType: "project",
			ResourceID:   projectID,
		}

		if err := t.sender.Send(ctx, params); err != nil {
			logger.Error("failed to send PROJECT_ASSIGNED notification",
				zap.String("project_id", projectID),
				zap.String("client", clientID),
				zap.Error(err),
			)
		}
	})
}

// OnProjectStatusChanged fires on a committed lifecycle transition.
// Notifies the project's client about the new status.
func (t *Triggers) OnProjectStatusChanged(ctx context.Context, projectID, clientID, newStatus string) {
	t.dispatch(ctx, "project_status_changed", func(ctx context.Context) {
		params := Params{
			RecipientID:  clientID,
			Type:         TypeProjectStatusChange,
			Title:        fmt.Sprintf("Project %s is now %s", projectID, newStatus),
			Message:      fmt.Sprintf("Your project %s has transitioned to status: %s", projectID, newStatus),
			ResourceType: "project",
			ResourceID:   projectID,
		}

		if err := t.sender.Send(ctx, params); err != nil {
			logger.Error("failed to send PROJECT_STATUS_CHANGE notification",
				zap.String("project_id", projectID),
				zap.String("client", clientID),
				zap.String("new_status", newStatus),
				zap.Error(err),
			)
		}
	})
}

// findAdminUserIDs queries all enabled administrator account IDs.
func (t *Triggers) findAdminUserIDs(ctx context.Context) ([]string, error) {
	ids, err := t.client.User.Query().
		Where(
			entuser.RoleEQ(entuser.RoleADMIN),
			entuser.EnabledEQ(true),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("query administrator accounts: %w", err)
	}
	return ids, nil
}
