// Package audit implements the audit logging service.
//
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marwaELABIDI/ferme-platform/ent"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
)

// Logger writes audit records to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// LogAction records an auditable action.
func (l *Logger) LogAction(ctx context.Context, action, resourceType, resourceID, actor string, details map[string]interface{}) error {
	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetActor(actor).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// LogFieldOperation records an administrator operation on a field.
func (l *Logger) LogFieldOperation(ctx context.Context, operation, fieldID, actor string, details map[string]interface{}) error {
	return l.LogAction(ctx, "field."+operation, "field", fieldID, actor, details)
}

// LogReservationOperation records a reservation submission, decision or deletion.
func (l *Logger) LogReservationOperation(ctx context.Context, operation, reservationID, actor string, details map[string]interface{}) error {
	return l.LogAction(ctx, "reservation."+operation, "reservation", reservationID, actor, details)
}

// LogProjectOperation records a project lifecycle operation.
func (l *Logger) LogProjectOperation(ctx context.Context, operation, projectID, actor string, details map[string]interface{}) error {
	return l.LogAction(ctx, "project."+operation, "project", projectID, actor, details)
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
