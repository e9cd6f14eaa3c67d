package handlers

import (
	"time"

	"github.com/marwaELABIDI/ferme-platform/ent"
)

// API response shapes. Kept separate from ent entities so schema changes
// never leak into the wire format unreviewed.

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

// Pagination describes a paged listing.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// FieldResponse is the API view of a field.
type FieldResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location,omitempty"`
	TotalCapacity float64   `json:"total_capacity"`
	FreeCapacity  float64   `json:"free_capacity"`
	Status        string    `json:"status"`
	SoilType      string    `json:"soil_type,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReservationResponse is the API view of a reservation.
type ReservationResponse struct {
	ID               string     `json:"id"`
	FieldID          string     `json:"field_id"`
	ClientID         string     `json:"client_id"`
	SupervisorID     string     `json:"supervisor_id,omitempty"`
	SurfaceRequested float64    `json:"surface_requested"`
	StartRequested   time.Time  `json:"start_requested"`
	EndRequested     time.Time  `json:"end_requested"`
	Status           string     `json:"status"`
	DecisionDate     *time.Time `json:"decision_date,omitempty"`
	Motivation       string     `json:"motivation,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ProjectResponse is the API view of a project.
type ProjectResponse struct {
	ID             string     `json:"id"`
	FieldID        string     `json:"field_id"`
	ClientID       string     `json:"client_id"`
	SupervisorID   string     `json:"supervisor_id"`
	ActivityTypeID string     `json:"activity_type_id,omitempty"`
	Surface        float64    `json:"surface"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Status         string     `json:"status"`
	ProgressNotes  string     `json:"progress_notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NotificationResponse is the API view of an inbox notification.
type NotificationResponse struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	Read         bool       `json:"read"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
	ResourceType string     `json:"resource_type,omitempty"`
	ResourceID   string     `json:"resource_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func fieldToAPI(f *ent.Field) FieldResponse {
	return FieldResponse{
		ID:            f.ID,
		Name:          f.Name,
		Location:      f.Location,
		TotalCapacity: f.TotalCapacity,
		FreeCapacity:  f.FreeCapacity,
		Status:        f.Status.String(),
		SoilType:      f.SoilType,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func reservationToAPI(r *ent.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:               r.ID,
		FieldID:          r.FieldID,
		ClientID:         r.ClientID,
		SupervisorID:     r.SupervisorID,
		SurfaceRequested: r.SurfaceRequested,
		StartRequested:   r.StartRequested,
		EndRequested:     r.EndRequested,
		Status:           r.Status.String(),
		DecisionDate:     r.DecisionDate,
		Motivation:       r.Motivation,
		CreatedAt:        r.CreatedAt,
	}
}

func projectToAPI(p *ent.Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		FieldID:        p.FieldID,
		ClientID:       p.ClientID,
		SupervisorID:   p.SupervisorID,
		ActivityTypeID: p.ActivityTypeID,
		Surface:        p.Surface,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Status:         p.Status.String(),
		ProgressNotes:  p.ProgressNotes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func notificationToAPI(n *ent.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           n.ID,
		Type:         n.Type.String(),
		Title:        n.Title,
		Message:      n.Message,
		Read:         n.Read,
		ReadAt:       n.ReadAt,
		ResourceType: n.ResourceType,
		ResourceID:   n.ResourceID,
		CreatedAt:    n.CreatedAt,
	}
}

// defaultPagination clamps page/per_page query values to sane bounds.
func defaultPagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}
