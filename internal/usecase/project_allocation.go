package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
	entproject "github.com/marwaELABIDI/ferme-platform/ent/project"
	"github.com/marwaELABIDI/ferme-platform/internal/domain"
	"github.com/marwaELABIDI/ferme-platform/internal/governance/audit"
	"github.com/marwaELABIDI/ferme-platform/internal/ledger"
	"github.com/marwaELABIDI/ferme-platform/internal/notification"
	apperrors "github.com/marwaELABIDI/ferme-platform/internal/pkg/errors"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/metrics"
)

// CreateProjectInput is the input for direct (administrator) project creation.
type CreateProjectInput struct {
	FieldID        string     `json:"field_id"`
	ClientID       string     `json:"client_id"`
	SupervisorID   string     `json:"supervisor_id"`
	ActivityTypeID string     `json:"activity_type_id,omitempty"`
	Surface        float64    `json:"surface"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Status         string     `json:"status,omitempty"`
	ProgressNotes  string     `json:"progress_notes,omitempty"`
	CreatedBy      string     `json:"-"`
}

// EditProjectSurfaceInput is the input for re-sizing an existing project.
type EditProjectSurfaceInput struct {
	ProjectID  string  `json:"-"`
	NewSurface float64 `json:"surface"`
	ActorID    string  `json:"-"`
}

// ChangeProjectStatusInput is the input for a lifecycle transition.
type ChangeProjectStatusInput struct {
	ProjectID string `json:"-"`
	NewStatus string `json:"status"`
	ActorID   string `json:"-"`
}

// UpdateProjectDetailsInput edits capacity-neutral project attributes.
type UpdateProjectDetailsInput struct {
	ProjectID      string     `json:"-"`
	SupervisorID   *string    `json:"supervisor_id,omitempty"`
	ActivityTypeID *string    `json:"activity_type_id,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	ProgressNotes  *string    `json:"progress_notes,omitempty"`
	ActorID        string     `json:"-"`
}

// ListProjectsFilter narrows project listings.
type ListProjectsFilter struct {
	FieldID      string
	ClientID     string
	SupervisorID string
	Status       string
}

// ProjectAllocation orchestrates project lifecycle operations. Every
// capacity-affecting method runs the ledger adjustment and the project
// write in one coordinator transaction, so a concurrent writer on the
// same field either sees the whole change or none of it.
type ProjectAllocation struct {
	coord    *Coordinator
	client   *ent.Client
	recorder *metrics.Recorder
	auditor  *audit.Logger
	triggers *notification.Triggers
}

// NewProjectAllocation creates a ProjectAllocation use case.
func NewProjectAllocation(coord *Coordinator, client *ent.Client, recorder *metrics.Recorder) *ProjectAllocation {
	return &ProjectAllocation{coord: coord, client: client, recorder: recorder}
}

// WithAuditLogger sets the audit logger (optional dependency).
func (p *ProjectAllocation) WithAuditLogger(al *audit.Logger) *ProjectAllocation {
	p.auditor = al
	return p
}

// WithTriggers sets the notification trigger service (optional dependency).
func (p *ProjectAllocation) WithTriggers(t *notification.Triggers) *ProjectAllocation {
	p.triggers = t
	return p
}

// Create registers a project directly, consuming capacity if the chosen
// status is a holding one. The field must exist and be ACTIVE.
func (p *ProjectAllocation) Create(ctx context.Context, input CreateProjectInput) (*ent.Project, error) {
	status := domain.ProjectALancer
	if input.Status != "" {
		status = domain.ProjectStatus(input.Status)
		if !status.Valid() {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest,
				"unknown project status: "+input.Status)
		}
	}
	if err := p.validateCreateInput(input); err != nil {
		return nil, err
	}

	var created *ent.Project
	err := p.coord.Run(ctx, func(ctx context.Context, tx *ent.Tx) error {
		if err := requireActiveField(ctx, tx, input.FieldID); err != nil {
			return err
		}

		if err := ledger.AdjustFreeCapacity(ctx, tx, input.FieldID,
			domain.CreationDelta(status, input.Surface)); err != nil {
			return err
		}

		builder := tx.Project.Create().
			SetID(newID()).
			SetFieldID(input.FieldID).
			SetClientID(input.ClientID).
			SetSupervisorID(input.SupervisorID).
			SetSurface(input.Surface).
			SetStartDate(input.StartDate).
			SetStatus(entproject.Status(status)).
			SetNillableEndDate(input.EndDate)
		if input.ActivityTypeID != "" {
			builder.SetActivityTypeID(input.ActivityTypeID)
		}
		if input.ProgressNotes != "" {
			builder.SetProgressNotes(input.ProgressNotes)
		}

		saved, err := builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		created = saved
		return nil
	})
	if err != nil {
		p.recordRejection(err)
		return nil, err
	}

	if status.Holding() {
		p.recorder.GrantCommitted("direct")
	}
	if p.auditor != nil {
		_ = p.auditor.LogProjectOperation(ctx, "create", created.ID, input.CreatedBy, map[string]interface{}{
			"field_id": input.FieldID,
			"surface":  input.Surface,
			"status":   string(status),
		})
	}
	if p.triggers != nil {
		p.triggers.OnProjectAssigned(ctx, created.ID, input.ClientID, input.SupervisorID)
	}

	logger.Info("project created",
		zap.String("project_id", created.ID),
		zap.String("field_id", input.FieldID),
		zap.Float64("surface", input.Surface),
		zap.String("status", string(status)),
	)
	return created, nil
}

// EditSurface re-sizes a project. While the project holds capacity the
// surface delta is applied to the field's free capacity; a grown surface
// that overdraws the field fails with CapacityExceeded and nothing
// changes. A FINALISE project re-sizes with no ledger effect.
func (p *ProjectAllocation) EditSurface(ctx context.Context, input EditProjectSurfaceInput) (*ent.Project, error) {
	if input.NewSurface <= 0 {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "surface must be positive")
	}

	var updated *ent.Project
	err := p.coord.Run(ctx, func(ctx context.Context, tx *ent.Tx) error {
		proj, err := tx.Project.Query().
			Where(entproject.IDEQ(input.ProjectID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return projectNotFound(input.ProjectID)
			}
			return fmt.Errorf("lock project %s: %w", input.ProjectID, err)
		}

		status := domain.ProjectStatus(proj.Status)
		if status.Holding() {
			delta := input.NewSurface - proj.Surface
			if delta > 0 {
				if err := requireActiveField(ctx, tx, proj.FieldID); err != nil {
					return err
				}
			}
			if err := ledger.AdjustFreeCapacity(ctx, tx, proj.FieldID, -delta); err != nil {
				return err
			}
		}

		updated, err = tx.Project.UpdateOneID(input.ProjectID).
			SetSurface(input.NewSurface).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update project surface: %w", err)
		}
		return nil
	})
	if err != nil {
		p.recordRejection(err)
		return nil, err
	}

	if p.auditor != nil {
		_ = p.auditor.LogProjectOperation(ctx, "resize", input.ProjectID, input.ActorID, map[string]interface{}{
			"surface": input.NewSurface,
		})
	}
	logger.Info("project surface updated",
		zap.String("project_id", input.ProjectID),
		zap.Float64("surface", input.NewSurface),
	)
	return updated, nil
}

// ChangeStatus moves a project through its lifecycle. Moves inside the
// holding group are capacity-neutral; crossing the FINALISE boundary
// releases or re-consumes the project's surface. Reactivation
// (FINALISE back to a holding status) is treated like a fresh grant:
// the field must be ACTIVE and the surface must still fit, since
// another project may have consumed the freed capacity meanwhile.
func (p *ProjectAllocation) ChangeStatus(ctx context.Context, input ChangeProjectStatusInput) (*ent.Project, error) {
	to := domain.ProjectStatus(input.NewStatus)
	if !to.Valid() {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest,
			"unknown project status: "+input.NewStatus)
	}

	var updated *ent.Project
	var from domain.ProjectStatus
	err := p.coord.Run(ctx, func(ctx context.Context, tx *ent.Tx) error {
		proj, err := tx.Project.Query().
			Where(entproject.IDEQ(input.ProjectID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return projectNotFound(input.ProjectID)
			}
			return fmt.Errorf("lock project %s: %w", input.ProjectID, err)
		}

		from = domain.ProjectStatus(proj.Status)
		if from == to {
			updated = proj
			return nil
		}

		if !from.Holding() && to.Holding() {
			if err := requireActiveField(ctx, tx, proj.FieldID); err != nil {
				return err
			}
		}

		if err := ledger.AdjustFreeCapacity(ctx, tx, proj.FieldID,
			domain.StatusDelta(from, to, proj.Surface)); err != nil {
			return err
		}

		updated, err = tx.Project.UpdateOneID(input.ProjectID).
			SetStatus(entproject.Status(to)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update project status: %w", err)
		}
		return nil
	})
	if err != nil {
		p.recordRejection(err)
		return nil, err
	}

	switch {
	case from.Holding() && !to.Holding():
		p.recorder.ReleaseCommitted()
	case !from.Holding() && to.Holding():
		p.recorder.GrantCommitted("reactivation")
	}
	if p.auditor != nil {
		_ = p.auditor.LogProjectOperation(ctx, "status."+strings.ToLower(string(to)), input.ProjectID, input.ActorID, map[string]interface{}{
			"from": string(from),
			"to":   string(to),
		})
	}
	if p.triggers != nil && from != to {
		p.triggers.OnProjectStatusChanged(ctx, updated.ID, updated.ClientID, string(to))
	}

	logger.Info("project status changed",
		zap.String("project_id", input.ProjectID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
	return updated, nil
}

// UpdateDetails edits capacity-neutral attributes. It never touches the
// ledger, so it runs outside the coordinator.
func (p *ProjectAllocation) UpdateDetails(ctx context.Context, input UpdateProjectDetailsInput) (*ent.Project, error) {
	builder := p.client.Project.UpdateOneID(input.ProjectID)
	if input.SupervisorID != nil {
		if strings.TrimSpace(*input.SupervisorID) == "" {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "supervisor id cannot be empty")
		}
		builder.SetSupervisorID(*input.SupervisorID)
	}
	if input.ActivityTypeID != nil {
		if *input.ActivityTypeID == "" {
			builder.ClearActivityTypeID()
		} else {
			builder.SetActivityTypeID(*input.ActivityTypeID)
		}
	}
	if input.StartDate != nil {
		builder.SetStartDate(*input.StartDate)
	}
	if input.EndDate != nil {
		builder.SetEndDate(*input.EndDate)
	}
	if input.ProgressNotes != nil {
		builder.SetProgressNotes(*input.ProgressNotes)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, projectNotFound(input.ProjectID)
		}
		return nil, fmt.Errorf("update project details: %w", err)
	}

	if p.auditor != nil {
		_ = p.auditor.LogProjectOperation(ctx, "update", input.ProjectID, input.ActorID, nil)
	}
	return updated, nil
}

// Delete removes a project. A holding project releases its surface back
// to the field in the same transaction; a FINALISE project holds nothing
// and just goes away.
func (p *ProjectAllocation) Delete(ctx context.Context, projectID, actorID string) error {
	var wasHolding bool
	err := p.coord.Run(ctx, func(ctx context.Context, tx *ent.Tx) error {
		proj, err := tx.Project.Query().
			Where(entproject.IDEQ(projectID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return projectNotFound(projectID)
			}
			return fmt.Errorf("lock project %s: %w", projectID, err)
		}

		status := domain.ProjectStatus(proj.Status)
		wasHolding = status.Holding()
		if err := ledger.AdjustFreeCapacity(ctx, tx, proj.FieldID,
			domain.DeletionDelta(status, proj.Surface)); err != nil {
			return err
		}

		if err := tx.Project.DeleteOneID(projectID).Exec(ctx); err != nil {
			return fmt.Errorf("delete project %s: %w", projectID, err)
		}
		return nil
	})
	if err != nil {
		p.recordRejection(err)
		return err
	}

	if wasHolding {
		p.recorder.ReleaseCommitted()
	}
	if p.auditor != nil {
		_ = p.auditor.LogProjectOperation(ctx, "delete", projectID, actorID, nil)
	}
	logger.Info("project deleted", zap.String("project_id", projectID))
	return nil
}

// Get fetches a single project by ID.
func (p *ProjectAllocation) Get(ctx context.Context, projectID string) (*ent.Project, error) {
	proj, err := p.client.Project.Query().
		Where(entproject.IDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, projectNotFound(projectID)
		}
		return nil, fmt.Errorf("get project %s: %w", projectID, err)
	}
	return proj, nil
}

// List returns projects matching the filter, newest first.
func (p *ProjectAllocation) List(ctx context.Context, filter ListProjectsFilter) ([]*ent.Project, error) {
	q := p.client.Project.Query()
	if filter.FieldID != "" {
		q = q.Where(entproject.FieldIDEQ(filter.FieldID))
	}
	if filter.ClientID != "" {
		q = q.Where(entproject.ClientIDEQ(filter.ClientID))
	}
	if filter.SupervisorID != "" {
		q = q.Where(entproject.SupervisorIDEQ(filter.SupervisorID))
	}
	if filter.Status != "" {
		status := domain.ProjectStatus(filter.Status)
		if !status.Valid() {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest,
				"unknown project status: "+filter.Status)
		}
		q = q.Where(entproject.StatusEQ(entproject.Status(status)))
	}

	projects, err := q.Order(ent.Desc(entproject.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (p *ProjectAllocation) validateCreateInput(input CreateProjectInput) error {
	switch {
	case strings.TrimSpace(input.FieldID) == "":
		return apperrors.BadRequest(apperrors.CodeInvalidRequest, "field id is required")
	case strings.TrimSpace(input.ClientID) == "":
		return apperrors.BadRequest(apperrors.CodeInvalidRequest, "client id is required")
	case strings.TrimSpace(input.SupervisorID) == "":
		return apperrors.BadRequest(apperrors.CodeInvalidRequest, "supervisor id is required")
	case input.Surface <= 0:
		return apperrors.BadRequest(apperrors.CodeInvalidRequest, "surface must be positive")
	case input.EndDate != nil && !input.EndDate.After(input.StartDate):
		return apperrors.BadRequest(apperrors.CodeInvalidRequest, "end date must be after start date")
	default:
		return nil
	}
}

func (p *ProjectAllocation) recordRejection(err error) {
	if appErr, ok := apperrors.IsAppError(err); ok {
		p.recorder.OperationRejected(appErr.Code)
	}
}

// requireActiveField locks the field row and rejects when the field is
// INACTIVE. Every path that acquires capacity goes through it, so a
// deactivated field can never gain a new holder.
func requireActiveField(ctx context.Context, tx *ent.Tx, fieldID string) error {
	f, err := tx.Field.Query().
		Where(entfield.IDEQ(fieldID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.FieldNotFound(fieldID)
		}
		return fmt.Errorf("lock field %s: %w", fieldID, err)
	}
	if f.Status == entfield.StatusINACTIVE {
		return apperrors.FieldInactive(fieldID)
	}
	return nil
}

func projectNotFound(projectID string) *apperrors.AppError {
	return apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found").
		WithParams(map[string]interface{}{"project_id": projectID})
}

// newID generates a unique UUID v7 (time-ordered, K-sortable).
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails (should never happen)
		return uuid.New().String()
	}
	return id.String()
}
