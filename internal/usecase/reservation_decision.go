package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entfield "github.com/marwaELABIDI/ferme-platform/ent/field"
	entproject "github.com/marwaELABIDI/ferme-platform/ent/project"
	entreservation "github.com/marwaELABIDI/ferme-platform/ent/reservation"
	"github.com/marwaELABIDI/ferme-platform/internal/domain"
	"github.com/marwaELABIDI/ferme-platform/internal/governance/audit"
	"github.com/marwaELABIDI/ferme-platform/internal/ledger"
	"github.com/marwaELABIDI/ferme-platform/internal/notification"
	apperrors "github.com/marwaELABIDI/ferme-platform/internal/pkg/errors"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/metrics"
)

// CreateReservationInput is the input for submitting a capacity request.
type CreateReservationInput struct {
	FieldID        string    `json:"field_id"`
	ClientID       string    `json:"-"`
	Surface        float64   `json:"surface_requested"`
	StartRequested time.Time `json:"start_requested"`
	EndRequested   time.Time `json:"end_requested"`
	Motivation     string    `json:"motivation,omitempty"`
}

// DecideReservationInput is the input for ruling on a pending reservation.
type DecideReservationInput struct {
	ReservationID string `json:"-"`
	Decision      string `json:"decision"`
	SupervisorID  string `json:"supervisor_id,omitempty"`
	InitialStatus string `json:"initial_status,omitempty"`
	DecidedBy     string `json:"-"`
}

// DecideReservationOutput reports a committed decision. ProjectID is set
// only when the decision was an approval.
type DecideReservationOutput struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`
	ProjectID     string `json:"project_id,omitempty"`
}

// ListReservationsFilter narrows reservation listings.
type ListReservationsFilter struct {
	FieldID  string
	ClientID string
	Status   string
}

// ReservationDecision orchestrates the reservation request/decision flow.
// A reservation never mutates capacity itself. The capacity check at
// submission is advisory; the binding check happens inside the approval
// transaction, where the reservation claim, the project creation and the
// ledger consumption commit or roll back as one unit.
type ReservationDecision struct {
	coord    *Coordinator
	client   *ent.Client
	recorder *metrics.Recorder
	auditor  *audit.Logger
	triggers *notification.Triggers
}

// NewReservationDecision creates a ReservationDecision use case.
func NewReservationDecision(coord *Coordinator, client *ent.Client, recorder *metrics.Recorder) *ReservationDecision {
	return &ReservationDecision{coord: coord, client: client, recorder: recorder}
}

// WithAuditLogger sets the audit logger (optional dependency).
func (r *ReservationDecision) WithAuditLogger(al *audit.Logger) *ReservationDecision {
	r.auditor = al
	return r
}

// WithTriggers sets the notification trigger service (optional dependency).
func (r *ReservationDecision) WithTriggers(t *notification.Triggers) *ReservationDecision {
	r.triggers = t
	return r
}

// Create submits a reservation for an ACTIVE field. The free-capacity
// check here is advisory only: it rejects requests that cannot possibly
// fit right now, but approval re-validates against live capacity.
func (r *ReservationDecision) Create(ctx context.Context, input CreateReservationInput) (*ent.Reservation, error) {
	if err := r.validateCreateInput(input); err != nil {
		return nil, err
	}

	f, err := r.client.Field.Query().
		Where(entfield.IDEQ(input.FieldID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.FieldNotFound(input.FieldID)
		}
		return nil, fmt.Errorf("get field %s: %w", input.FieldID, err)
	}
	if f.Status == entfield.StatusINACTIVE {
		return nil, apperrors.FieldInactive(input.FieldID)
	}
	if input.Surface > f.FreeCapacity {
		r.recorder.OperationRejected(apperrors.CodeCapacityExceeded)
		return nil, apperrors.CapacityExceeded(input.FieldID, input.Surface, f.FreeCapacity)
	}

	builder := r.client.Reservation.Create().
		SetID(newID()).
		SetFieldID(input.FieldID).
		SetClientID(input.ClientID).
		SetSurfaceRequested(input.Surface).
		SetStartRequested(input.StartRequested).
		SetEndRequested(input.EndRequested)
	if input.Motivation != "" {
		builder.SetMotivation(input.Motivation)
	}

	res, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	if r.auditor != nil {
		_ = r.auditor.LogReservationOperation(ctx, "submit", res.ID, input.ClientID, map[string]interface{}{
			"field_id":          input.FieldID,
			"surface_requested": input.Surface,
		})
	}
	if r.triggers != nil {
		r.triggers.OnReservationSubmitted(ctx, res.ID, input.ClientID, f.Name)
	}

	logger.Info("reservation submitted",
		zap.String("reservation_id", res.ID),
		zap.String("field_id", input.FieldID),
		zap.Float64("surface_requested", input.Surface),
	)
	return res, nil
}

// Decide rules on a pending reservation. The PENDING row is claimed with
// a conditional update so that of two concurrent deciders exactly one
// wins; the loser gets RESERVATION_NOT_PENDING and no capacity effect.
// Approval creates the capacity-holding project, consumes the surface
// and stamps the supervisor in the same transaction; a CapacityExceeded
// during consumption rolls the whole decision back and the reservation
// stays PENDING.
func (r *ReservationDecision) Decide(ctx context.Context, input DecideReservationInput) (*DecideReservationOutput, error) {
	decision := domain.Decision(input.Decision)
	if !decision.Valid() {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest,
			"decision must be APPROVED or REJECTED")
	}
	initialStatus := domain.ProjectALancer
	if decision == domain.DecisionApprove {
		if strings.TrimSpace(input.SupervisorID) == "" {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest,
				"supervisor id is required for approval")
		}
		if input.InitialStatus != "" {
			initialStatus = domain.ProjectStatus(input.InitialStatus)
			if !initialStatus.Holding() {
				return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest,
					"initial project status must be capacity-holding")
			}
		}
	}

	out := &DecideReservationOutput{
		ReservationID: input.ReservationID,
		Status:        string(decision),
	}
	var clientID string
	err := r.coord.Run(ctx, func(ctx context.Context, tx *ent.Tx) error {
		res, err := tx.Reservation.Query().
			Where(entreservation.IDEQ(input.ReservationID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return reservationNotFound(input.ReservationID)
			}
			return fmt.Errorf("lock reservation %s: %w", input.ReservationID, err)
		}
		if res.Status != entreservation.StatusPENDING {
			return apperrors.NotPending(res.ID, string(res.Status))
		}
		clientID = res.ClientID

		claim := tx.Reservation.Update().
			Where(
				entreservation.IDEQ(res.ID),
				entreservation.StatusEQ(entreservation.StatusPENDING),
			).
			SetStatus(entreservation.Status(decision)).
			SetDecisionDate(time.Now().UTC())
		if decision == domain.DecisionApprove {
			claim.SetSupervisorID(input.SupervisorID)
		}

		n, err := claim.Save(ctx)
		if err != nil {
			return fmt.Errorf("claim reservation %s: %w", res.ID, err)
		}
		if n == 0 {
			return apperrors.NotPending(res.ID, string(res.Status))
		}

		if decision == domain.DecisionReject {
			return nil
		}

		if err := ledger.AdjustFreeCapacity(ctx, tx, res.FieldID,
			domain.CreationDelta(initialStatus, res.SurfaceRequested)); err != nil {
			return err
		}

		proj, err := tx.Project.Create().
			SetID(newID()).
			SetFieldID(res.FieldID).
			SetClientID(res.ClientID).
			SetSupervisorID(input.SupervisorID).
			SetSurface(res.SurfaceRequested).
			SetStartDate(res.StartRequested).
			SetEndDate(res.EndRequested).
			SetStatus(entproject.Status(initialStatus)).
			SetReservationID(res.ID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create project from reservation %s: %w", res.ID, err)
		}
		out.ProjectID = proj.ID
		return nil
	})
	if err != nil {
		if appErr, ok := apperrors.IsAppError(err); ok {
			r.recorder.OperationRejected(appErr.Code)
		}
		return nil, err
	}

	r.recorder.DecisionCommitted(string(decision))
	if decision == domain.DecisionApprove {
		r.recorder.GrantCommitted("approval")
	}
	if r.auditor != nil {
		_ = r.auditor.LogReservationOperation(ctx, strings.ToLower(string(decision)), input.ReservationID, input.DecidedBy, map[string]interface{}{
			"project_id": out.ProjectID,
		})
	}
	if r.triggers != nil {
		switch decision {
		case domain.DecisionApprove:
			r.triggers.OnReservationApproved(ctx, input.ReservationID, clientID, input.DecidedBy)
			if out.ProjectID != "" {
				r.triggers.OnProjectAssigned(ctx, out.ProjectID, clientID, input.SupervisorID)
			}
		case domain.DecisionReject:
			r.triggers.OnReservationRejected(ctx, input.ReservationID, clientID, input.DecidedBy)
		}
	}

	logger.Info("reservation decided",
		zap.String("reservation_id", input.ReservationID),
		zap.String("decision", string(decision)),
		zap.String("project_id", out.ProjectID),
	)
	return out, nil
}

// Delete removes a reservation. Only PENDING reservations may be
// deleted; decided ones are part of the auditable history.
func (r *ReservationDecision) Delete(ctx context.Context, reservationID, actorID string) error {
	res, err := r.client.Reservation.Query().
		Where(entreservation.IDEQ(reservationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return reservationNotFound(reservationID)
		}
		return fmt.Errorf("get reservation %s: %w", reservationID, err)
	}
	if res.Status != entreservation.StatusPENDING {
		return apperrors.CannotDelete("reservation", reservationID,
			"only pending reservations can be deleted")
	}

	n, err := r.client.Reservation.Delete().
		Where(
			entreservation.IDEQ(reservationID),
			entreservation.StatusEQ(entreservation.StatusPENDING),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete reservation %s: %w", reservationID, err)
	}
	if n == 0 {
		return apperrors.CannotDelete("reservation", reservationID,
			"only pending reservations can be deleted")
	}

	if r.auditor != nil {
		_ = r.auditor.LogReservationOperation(ctx, "delete", reservationID, actorID, nil)
	}
	logger.Info("reservation deleted", zap.String("reservation_id", reservationID))
	return nil
}

// Get fetches a single reservation by ID.
func (r *ReservationDecision) Get(ctx context.Context, reservationID string) (*ent.Reservation, error) {
	res, err := r.client.Reservation.Query().
		Where(entreservation.IDEQ(reservationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, reservationNotFound(reservationID)
		}
		return nil, fmt.Errorf("get reservation %s: %w", reservationID, err)
	}
	return res, nil
}

// List returns reservations matching the filter, newest first.
func (r *ReservationDecision) List(ctx context.Context, filter ListReservationsFilter) ([]*ent.Reservation, error) {
	q := r.client.Reservation.Query()
	if filter.FieldID != "" {
		q = q.Where(entreservation.FieldIDEQ(filter.FieldID))
	}
	if filter.ClientID != "" {
		q = q.Where(entreservation.ClientIDEQ(filter.ClientID))
	}
	if filter.Status != "" {
		status := domain.ReservationStatus(filter.Status)
		if !status.Valid() {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest,
				"unknown reservation status: "+filter.Status)
		}
		q = q.Where(entreservation.StatusEQ(entreservation.Status(status)))
	}

	reservations, err := q.Order(ent.Desc(entreservation.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, nil
}

func (r *ReservationDecision) validateCreateInput(input CreateReservationInput) error {
	switch {
	case strings.TrimSpace(input.FieldID) == "":
		return apperrors.BadRequest(apperrors.CodeInvalidRequest, "field id is required")
	case strings.TrimSpace(input.ClientID) == "":
		return apperrors.BadRequest(apperrors.CodeInvalidRequest, "client id is required")
	case input.Surface <= 0:
		return apperrors.BadRequest(apperrors.CodeInvalidRequest, "surface must be positive")
	case !input.EndRequested.After(input.StartRequested):
		return apperrors.BadRequest(apperrors.CodeInvalidRequest, "end date must be after start date")
	default:
		return nil
	}
}

func reservationNotFound(reservationID string) *apperrors.AppError {
	return apperrors.NotFound(apperrors.CodeReservationNotFound, "reservation not found").
		WithParams(map[string]interface{}{"reservation_id": reservationID})
}
