package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marwaELABIDI/ferme-platform/internal/api/middleware"
	"github.com/marwaELABIDI/ferme-platform/internal/domain"
	"github.com/marwaELABIDI/ferme-platform/internal/usecase"
)

// CreateReservationRequest is the POST /reservations body. The client ID
// comes from the authenticated context, never from the body.
type CreateReservationRequest struct {
	FieldID        string    `json:"field_id" binding:"required"`
	Surface        float64   `json:"surface_requested" binding:"required,gt=0"`
	StartRequested time.Time `json:"start_requested" binding:"required"`
	EndRequested   time.Time `json:"end_requested" binding:"required"`
	Motivation     string    `json:"motivation"`
}

// DecideReservationRequest is the POST /reservations/:reservation_id/decision body.
type DecideReservationRequest struct {
	Decision      string `json:"decision" binding:"required"`
	SupervisorID  string `json:"supervisor_id"`
	InitialStatus string `json:"initial_status"`
}

// CreateReservation handles POST /reservations (CLIENT).
func (s *Server) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	res, err := s.reservations.Create(c.Request.Context(), usecase.CreateReservationInput{
		FieldID:        req.FieldID,
		ClientID:       actorFromCtx(c),
		Surface:        req.Surface,
		StartRequested: req.StartRequested,
		EndRequested:   req.EndRequested,
		Motivation:     req.Motivation,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, reservationToAPI(res))
}

// ListReservations handles GET /reservations. Clients see only their
// own; supervisors and admins see everything, optionally filtered.
func (s *Server) ListReservations(c *gin.Context) {
	filter := usecase.ListReservationsFilter{
		FieldID: c.Query("field_id"),
		Status:  c.Query("status"),
	}
	if domain.Role(middleware.GetRole(c.Request.Context())) == domain.RoleClient {
		filter.ClientID = actorFromCtx(c)
	} else {
		filter.ClientID = c.Query("client_id")
	}

	reservations, err := s.reservations.List(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, reservationToAPI(r))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetReservation handles GET /reservations/:reservation_id.
func (s *Server) GetReservation(c *gin.Context) {
	res, err := s.reservations.Get(c.Request.Context(), c.Param("reservation_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	// A client may only read their own reservations.
	if domain.Role(middleware.GetRole(c.Request.Context())) == domain.RoleClient &&
		res.ClientID != actorFromCtx(c) {
		c.JSON(http.StatusForbidden, ErrorResponse{Code: "FORBIDDEN"})
		return
	}
	c.JSON(http.StatusOK, reservationToAPI(res))
}

// DecideReservation handles POST /reservations/:reservation_id/decision (ADMIN).
func (s *Server) DecideReservation(c *gin.Context) {
	var req DecideReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	out, err := s.reservations.Decide(c.Request.Context(), usecase.DecideReservationInput{
		ReservationID: c.Param("reservation_id"),
		Decision:      req.Decision,
		SupervisorID:  req.SupervisorID,
		InitialStatus: req.InitialStatus,
		DecidedBy:     actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DeleteReservation handles DELETE /reservations/:reservation_id.
// Only PENDING reservations may be deleted; a client may only delete
// their own.
func (s *Server) DeleteReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")

	if domain.Role(middleware.GetRole(c.Request.Context())) == domain.RoleClient {
		res, err := s.reservations.Get(c.Request.Context(), reservationID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if res.ClientID != actorFromCtx(c) {
			c.JSON(http.StatusForbidden, ErrorResponse{Code: "FORBIDDEN"})
			return
		}
	}

	if err := s.reservations.Delete(c.Request.Context(), reservationID, actorFromCtx(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
