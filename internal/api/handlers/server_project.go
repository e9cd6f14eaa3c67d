package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marwaELABIDI/ferme-platform/internal/api/middleware"
	"github.com/marwaELABIDI/ferme-platform/internal/domain"
	"github.com/marwaELABIDI/ferme-platform/internal/usecase"
)

// CreateProjectRequest is the POST /projects body (ADMIN).
type CreateProjectRequest struct {
	FieldID        string     `json:"field_id" binding:"required"`
	ClientID       string     `json:"client_id" binding:"required"`
	SupervisorID   string     `json:"supervisor_id" binding:"required"`
	ActivityTypeID string     `json:"activity_type_id"`
	Surface        float64    `json:"surface" binding:"required,gt=0"`
	StartDate      time.Time  `json:"start_date" binding:"required"`
	EndDate        *time.Time `json:"end_date"`
	Status         string     `json:"status"`
	ProgressNotes  string     `json:"progress_notes"`
}

// EditProjectSurfaceRequest is the PUT /projects/:project_id/surface body.
type EditProjectSurfaceRequest struct {
	Surface float64 `json:"surface" binding:"required,gt=0"`
}

// ChangeProjectStatusRequest is the PUT /projects/:project_id/status body.
type ChangeProjectStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateProjectRequest is the PATCH /projects/:project_id body.
type UpdateProjectRequest struct {
	SupervisorID   *string    `json:"supervisor_id"`
	ActivityTypeID *string    `json:"activity_type_id"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	ProgressNotes  *string    `json:"progress_notes"`
}

// CreateProject handles POST /projects (ADMIN only).
func (s *Server) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	proj, err := s.projects.Create(c.Request.Context(), usecase.CreateProjectInput{
		FieldID:        req.FieldID,
		ClientID:       req.ClientID,
		SupervisorID:   req.SupervisorID,
		ActivityTypeID: req.ActivityTypeID,
		Surface:        req.Surface,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         req.Status,
		ProgressNotes:  req.ProgressNotes,
		CreatedBy:      actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, projectToAPI(proj))
}

// ListProjects handles GET /projects. Clients see only their own
// projects; supervisors see the projects they supervise unless they
// filter otherwise; admins see everything.
func (s *Server) ListProjects(c *gin.Context) {
	filter := usecase.ListProjectsFilter{
		FieldID: c.Query("field_id"),
		Status:  c.Query("status"),
	}
	switch domain.Role(middleware.GetRole(c.Request.Context())) {
	case domain.RoleClient:
		filter.ClientID = actorFromCtx(c)
	case domain.RoleSupervisor:
		filter.ClientID = c.Query("client_id")
		filter.SupervisorID = actorFromCtx(c)
	default:
		filter.ClientID = c.Query("client_id")
		filter.SupervisorID = c.Query("supervisor_id")
	}

	projects, err := s.projects.List(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, projectToAPI(p))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetProject handles GET /projects/:project_id.
func (s *Server) GetProject(c *gin.Context) {
	proj, err := s.projects.Get(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if domain.Role(middleware.GetRole(c.Request.Context())) == domain.RoleClient &&
		proj.ClientID != actorFromCtx(c) {
		c.JSON(http.StatusForbidden, ErrorResponse{Code: "FORBIDDEN"})
		return
	}
	c.JSON(http.StatusOK, projectToAPI(proj))
}

// EditProjectSurface handles PUT /projects/:project_id/surface.
func (s *Server) EditProjectSurface(c *gin.Context) {
	var req EditProjectSurfaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	proj, err := s.projects.EditSurface(c.Request.Context(), usecase.EditProjectSurfaceInput{
		ProjectID:  c.Param("project_id"),
		NewSurface: req.Surface,
		ActorID:    actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projectToAPI(proj))
}

// ChangeProjectStatus handles PUT /projects/:project_id/status.
func (s *Server) ChangeProjectStatus(c *gin.Context) {
	var req ChangeProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	proj, err := s.projects.ChangeStatus(c.Request.Context(), usecase.ChangeProjectStatusInput{
		ProjectID: c.Param("project_id"),
		NewStatus: req.Status,
		ActorID:   actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projectToAPI(proj))
}

// UpdateProject handles PATCH /projects/:project_id.
func (s *Server) UpdateProject(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	proj, err := s.projects.UpdateDetails(c.Request.Context(), usecase.UpdateProjectDetailsInput{
		ProjectID:      c.Param("project_id"),
		SupervisorID:   req.SupervisorID,
		ActivityTypeID: req.ActivityTypeID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		ProgressNotes:  req.ProgressNotes,
		ActorID:        actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projectToAPI(proj))
}

// DeleteProject handles DELETE /projects/:project_id (ADMIN only).
func (s *Server) DeleteProject(c *gin.Context) {
	if err := s.projects.Delete(c.Request.Context(), c.Param("project_id"), actorFromCtx(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
