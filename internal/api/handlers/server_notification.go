package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marwaELABIDI/ferme-platform/ent"
	entnotification "github.com/marwaELABIDI/ferme-platform/ent/notification"
	entuser "github.com/marwaELABIDI/ferme-platform/ent/user"
	"github.com/marwaELABIDI/ferme-platform/internal/api/middleware"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
)

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED"})
		return
	}

	query := s.client.Notification.Query().
		Where(entnotification.HasUserWith(entuser.IDEQ(userID)))

	if c.Query("unread_only") == "true" {
		query = query.Where(entnotification.ReadEQ(false))
	}

	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	page, perPage = defaultPagination(page, perPage)
	offset := (page - 1) * perPage

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	notifications, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(entnotification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list notifications", zap.Error(err), zap.Int("page", page))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	items := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, notificationToAPI(n))
	}

	totalPages := (total + perPage - 1) / perPage
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"pagination": Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED"})
		return
	}

	count, err := s.client.Notification.Query().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(userID)),
			entnotification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		logger.Error("failed to count unread notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /notifications/:notification_id/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED"})
		return
	}

	notificationID := c.Param("notification_id")

	// Verify notification exists and belongs to user.
	n, err := s.client.Notification.Query().
		Where(
			entnotification.IDEQ(notificationID),
			entnotification.HasUserWith(entuser.IDEQ(userID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Code: "NOTIFICATION_NOT_FOUND"})
			return
		}
		logger.Error("failed to get notification", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	if !n.Read {
		now := time.Now()
		if _, err := s.client.Notification.UpdateOneID(notificationID).
			SetRead(true).
			SetReadAt(now).
			Save(ctx); err != nil {
			logger.Error("failed to mark notification read", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED"})
		return
	}

	now := time.Now()
	_, err := s.client.Notification.Update().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(userID)),
			entnotification.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(now).
		Save(ctx)
	if err != nil {
		logger.Error("failed to mark all notifications read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	c.Status(http.StatusNoContent)
}
