package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
	entproject "github.com/marwaELABIDI/ferme-platform/ent/project"
	entreservation "github.com/marwaELABIDI/ferme-platform/ent/reservation"
	"github.com/marwaELABIDI/ferme-platform/internal/domain"
	"github.com/marwaELABIDI/ferme-platform/internal/governance/audit"
	"github.com/marwaELABIDI/ferme-platform/internal/ledger"
	apperrors "github.com/marwaELABIDI/ferme-platform/internal/pkg/errors"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
)

// CreateFieldInput is the input for registering a field.
type CreateFieldInput struct {
	Name          string  `json:"name"`
	Location      string  `json:"location,omitempty"`
	TotalCapacity float64 `json:"total_capacity"`
	SoilType      string  `json:"soil_type,omitempty"`
	CreatedBy     string  `json:"-"`
}

// UpdateFieldInput edits a field. Nil pointers leave the attribute
// untouched. Changing TotalCapacity re-derives free capacity from
// current usage inside a coordinator transaction.
type UpdateFieldInput struct {
	FieldID       string   `json:"-"`
	Name          *string  `json:"name,omitempty"`
	Location      *string  `json:"location,omitempty"`
	SoilType      *string  `json:"soil_type,omitempty"`
	TotalCapacity *float64 `json:"total_capacity,omitempty"`
	Status        *string  `json:"status,omitempty"`
	ActorID       string   `json:"-"`
}

// FieldAdmin orchestrates administrator operations on fields: the
// capacity roots of the ledger. Deactivation and deletion are guarded so
// a field can never disappear from under live holders or undecided
// requests.
type FieldAdmin struct {
	coord   *Coordinator
	client  *ent.Client
	auditor *audit.Logger
}

// NewFieldAdmin creates a FieldAdmin use case.
func NewFieldAdmin(coord *Coordinator, client *ent.Client) *FieldAdmin {
	return &FieldAdmin{coord: coord, client: client}
}

// WithAuditLogger sets the audit logger (optional dependency).
func (a *FieldAdmin) WithAuditLogger(al *audit.Logger) *FieldAdmin {
	a.auditor = al
	return a
}

// Create registers a field with free capacity equal to total capacity.
func (a *FieldAdmin) Create(ctx context.Context, input CreateFieldInput) (*ent.Field, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "field name is required")
	}
	if input.TotalCapacity <= 0 {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "total capacity must be positive")
	}

	builder := a.client.Field.Create().
		SetID(newID()).
		SetName(input.Name).
		SetTotalCapacity(input.TotalCapacity).
		SetFreeCapacity(input.TotalCapacity)
	if input.Location != "" {
		builder.SetLocation(input.Location)
	}
	if input.SoilType != "" {
		builder.SetSoilType(input.SoilType)
	}

	f, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.Conflict(apperrors.CodeFieldExists, "a field with this name already exists").
				WithParams(map[string]interface{}{"name": input.Name})
		}
		return nil, fmt.Errorf("create field: %w", err)
	}

	if a.auditor != nil {
		_ = a.auditor.LogFieldOperation(ctx, "create", f.ID, input.CreatedBy, map[string]interface{}{
			"name":           input.Name,
			"total_capacity": input.TotalCapacity,
		})
	}
	logger.Info("field created",
		zap.String("field_id", f.ID),
		zap.String("name", input.Name),
		zap.Float64("total_capacity", input.TotalCapacity),
	)
	return f, nil
}

// Update edits a field. Attribute edits are plain writes; a total
// capacity change fails with InsufficientCapacity if it would drop below
// current usage, and an ACTIVE to INACTIVE move is refused while the
// field has holding projects or pending reservations.
func (a *FieldAdmin) Update(ctx context.Context, input UpdateFieldInput) (*ent.Field, error) {
	var newStatus domain.FieldStatus
	if input.Status != nil {
		newStatus = domain.FieldStatus(*input.Status)
		if !newStatus.Valid() {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest,
				"unknown field status: "+*input.Status)
		}
	}
	if input.TotalCapacity != nil && *input.TotalCapacity <= 0 {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "total capacity must be positive")
	}

	var updated *ent.Field
	err := a.coord.Run(ctx, func(ctx context.Context, tx *ent.Tx) error {
		f, err := tx.Field.Query().
			Where(entfield.IDEQ(input.FieldID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.FieldNotFound(input.FieldID)
			}
			return fmt.Errorf("lock field %s: %w", input.FieldID, err)
		}

		if input.Status != nil && string(newStatus) != string(f.Status) {
			if newStatus == domain.FieldInactive {
				if err := a.checkDeactivation(ctx, tx, f.ID); err != nil {
					return err
				}
			}
		}

		if input.TotalCapacity != nil {
			if err := ledger.SetTotalCapacity(ctx, tx, f.ID, *input.TotalCapacity); err != nil {
				return err
			}
		}

		builder := tx.Field.UpdateOneID(f.ID)
		if input.Name != nil {
			builder.SetName(*input.Name)
		}
		if input.Location != nil {
			builder.SetLocation(*input.Location)
		}
		if input.SoilType != nil {
			builder.SetSoilType(*input.SoilType)
		}
		if input.Status != nil {
			builder.SetStatus(entfield.Status(newStatus))
		}

		updated, err = builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.Conflict(apperrors.CodeFieldExists, "a field with this name already exists")
			}
			return fmt.Errorf("update field %s: %w", input.FieldID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if a.auditor != nil {
		_ = a.auditor.LogFieldOperation(ctx, "update", input.FieldID, input.ActorID, nil)
	}
	logger.Info("field updated", zap.String("field_id", input.FieldID))
	return updated, nil
}

// Delete removes a field. It is refused while any project still holds
// capacity or any reservation awaits a decision; the finalized projects
// and decided reservations that remain are removed with the field in the
// same transaction.
func (a *FieldAdmin) Delete(ctx context.Context, fieldID, actorID string) error {
	err := a.coord.Run(ctx, func(ctx context.Context, tx *ent.Tx) error {
		_, err := tx.Field.Query().
			Where(entfield.IDEQ(fieldID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.FieldNotFound(fieldID)
			}
			return fmt.Errorf("lock field %s: %w", fieldID, err)
		}

		holders, err := tx.Project.Query().
			Where(
				entproject.FieldIDEQ(fieldID),
				entproject.StatusIn(holdingEntStatuses()...),
			).Count(ctx)
		if err != nil {
			return fmt.Errorf("count holding projects for field %s: %w", fieldID, err)
		}
		if holders > 0 {
			return apperrors.CannotDelete("field", fieldID,
				fmt.Sprintf("%d project(s) still hold capacity on this field", holders))
		}

		pending, err := tx.Reservation.Query().
			Where(
				entreservation.FieldIDEQ(fieldID),
				entreservation.StatusEQ(entreservation.StatusPENDING),
			).Count(ctx)
		if err != nil {
			return fmt.Errorf("count pending reservations for field %s: %w", fieldID, err)
		}
		if pending > 0 {
			return apperrors.CannotDelete("field", fieldID,
				fmt.Sprintf("%d reservation(s) still await a decision on this field", pending))
		}

		if _, err := tx.Project.Delete().
			Where(entproject.FieldIDEQ(fieldID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete finalized projects for field %s: %w", fieldID, err)
		}
		if _, err := tx.Reservation.Delete().
			Where(entreservation.FieldIDEQ(fieldID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete decided reservations for field %s: %w", fieldID, err)
		}
		if err := tx.Field.DeleteOneID(fieldID).Exec(ctx); err != nil {
			return fmt.Errorf("delete field %s: %w", fieldID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if a.auditor != nil {
		_ = a.auditor.LogFieldOperation(ctx, "delete", fieldID, actorID, nil)
	}
	logger.Info("field deleted", zap.String("field_id", fieldID))
	return nil
}

// Get fetches a single field by ID.
func (a *FieldAdmin) Get(ctx context.Context, fieldID string) (*ent.Field, error) {
	f, err := a.client.Field.Query().
		Where(entfield.IDEQ(fieldID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.FieldNotFound(fieldID)
		}
		return nil, fmt.Errorf("get field %s: %w", fieldID, err)
	}
	return f, nil
}

// List returns all fields ordered by name.
func (a *FieldAdmin) List(ctx context.Context) ([]*ent.Field, error) {
	fields, err := a.client.Field.Query().
		Order(ent.Asc(entfield.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	return fields, nil
}

// checkDeactivation refuses ACTIVE to INACTIVE while the field has live
// holders or undecided requests.
func (a *FieldAdmin) checkDeactivation(ctx context.Context, tx *ent.Tx, fieldID string) error {
	holders, err := tx.Project.Query().
		Where(
			entproject.FieldIDEQ(fieldID),
			entproject.StatusIn(holdingEntStatuses()...),
		).Count(ctx)
	if err != nil {
		return fmt.Errorf("count holding projects for field %s: %w", fieldID, err)
	}
	pending, err := tx.Reservation.Query().
		Where(
			entreservation.FieldIDEQ(fieldID),
			entreservation.StatusEQ(entreservation.StatusPENDING),
		).Count(ctx)
	if err != nil {
		return fmt.Errorf("count pending reservations for field %s: %w", fieldID, err)
	}
	if holders > 0 || pending > 0 {
		return apperrors.InvalidTransition(string(domain.FieldActive), string(domain.FieldInactive)).
			WithParams(map[string]interface{}{
				"from":                 string(domain.FieldActive),
				"to":                   string(domain.FieldInactive),
				"field_id":             fieldID,
				"holding_projects":     holders,
				"pending_reservations": pending,
			})
	}
	return nil
}

func holdingEntStatuses() []entproject.Status {
	holding := domain.HoldingStatuses()
	statuses := make([]entproject.Status, len(holding))
	for i, s := range holding {
		statuses[i] = entproject.Status(s)
	}
	return statuses
}
