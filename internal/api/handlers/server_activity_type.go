package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entactivitytype "github.com/marwaELABIDI/ferme-platform/ent/activitytype"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
)

// CreateActivityTypeRequest is the POST /activity-types body.
type CreateActivityTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ActivityTypeResponse is the API view of an activity type.
type ActivityTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListActivityTypes handles GET /activity-types.
func (s *Server) ListActivityTypes(c *gin.Context) {
	types, err := s.client.ActivityType.Query().
		Order(ent.Asc(entactivitytype.FieldName)).
		All(c.Request.Context())
	if err != nil {
		logger.Error("failed to list activity types", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	items := make([]ActivityTypeResponse, 0, len(types))
	for _, t := range types {
		items = append(items, ActivityTypeResponse{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateActivityType handles POST /activity-types (ADMIN only).
func (s *Server) CreateActivityType(c *gin.Context) {
	var req CreateActivityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	builder := s.client.ActivityType.Create().
		SetID(GenerateUserID()).
		SetName(req.Name)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}

	t, err := builder.Save(c.Request.Context())
	if err != nil {
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusConflict, ErrorResponse{Code: "ACTIVITY_TYPE_EXISTS"})
			return
		}
		logger.Error("failed to create activity type", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusCreated, ActivityTypeResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
	})
}
