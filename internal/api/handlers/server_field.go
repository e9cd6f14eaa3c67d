package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marwaELABIDI/ferme-platform/internal/usecase"
)

// CreateFieldRequest is the POST /fields body.
type CreateFieldRequest struct {
	Name          string  `json:"name" binding:"required"`
	Location      string  `json:"location"`
	TotalCapacity float64 `json:"total_capacity" binding:"required,gt=0"`
	SoilType      string  `json:"soil_type"`
}

// UpdateFieldRequest is the PATCH /fields/:field_id body. Absent keys
// leave the attribute untouched.
type UpdateFieldRequest struct {
	Name          *string  `json:"name"`
	Location      *string  `json:"location"`
	SoilType      *string  `json:"soil_type"`
	TotalCapacity *float64 `json:"total_capacity"`
	Status        *string  `json:"status"`
}

// ListFields handles GET /fields.
func (s *Server) ListFields(c *gin.Context) {
	fields, err := s.fieldAdmin.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]FieldResponse, 0, len(fields))
	for _, f := range fields {
		items = append(items, fieldToAPI(f))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetField handles GET /fields/:field_id.
func (s *Server) GetField(c *gin.Context) {
	f, err := s.fieldAdmin.Get(c.Request.Context(), c.Param("field_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, fieldToAPI(f))
}

// CreateField handles POST /fields (ADMIN only).
func (s *Server) CreateField(c *gin.Context) {
	var req CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	f, err := s.fieldAdmin.Create(c.Request.Context(), usecase.CreateFieldInput{
		Name:          req.Name,
		Location:      req.Location,
		TotalCapacity: req.TotalCapacity,
		SoilType:      req.SoilType,
		CreatedBy:     actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, fieldToAPI(f))
}

// UpdateField handles PATCH /fields/:field_id (ADMIN only).
func (s *Server) UpdateField(c *gin.Context) {
	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	f, err := s.fieldAdmin.Update(c.Request.Context(), usecase.UpdateFieldInput{
		FieldID:       c.Param("field_id"),
		Name:          req.Name,
		Location:      req.Location,
		SoilType:      req.SoilType,
		TotalCapacity: req.TotalCapacity,
		Status:        req.Status,
		ActorID:       actorFromCtx(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, fieldToAPI(f))
}

// DeleteField handles DELETE /fields/:field_id (ADMIN only).
func (s *Server) DeleteField(c *gin.Context) {
	if err := s.fieldAdmin.Delete(c.Request.Context(), c.Param("field_id"), actorFromCtx(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
