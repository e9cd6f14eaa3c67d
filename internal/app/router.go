package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/marwaELABIDI/ferme-platform/internal/api/handlers"
	"github.com/marwaELABIDI/ferme-platform/internal/api/middleware"
	"github.com/marwaELABIDI/ferme-platform/internal/config"
	"github.com/marwaELABIDI/ferme-platform/internal/domain"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/metrics"
)

func newRouter(cfg *config.Config, server *handlers.Server, recorder *metrics.Recorder, signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")

	// Public routes.
	api.POST("/auth/login", server.Login)
	api.GET("/health/live", server.GetLiveness)
	api.GET("/health/ready", server.GetReadiness)
	api.GET("/metrics", gin.WrapH(recorder.Handler()))

	// Authenticated routes.
	auth := api.Group("", middleware.JWTAuth(signingKey))

	auth.GET("/auth/me", server.GetCurrentUser)
	auth.POST("/auth/change-password", server.ChangePassword)

	auth.GET("/fields", server.ListFields)
	auth.GET("/fields/:field_id", server.GetField)
	auth.POST("/fields", middleware.RequireAdmin(), server.CreateField)
	auth.PATCH("/fields/:field_id", middleware.RequireAdmin(), server.UpdateField)
	auth.DELETE("/fields/:field_id", middleware.RequireAdmin(), server.DeleteField)

	auth.POST("/reservations", server.CreateReservation)
	auth.GET("/reservations", server.ListReservations)
	auth.GET("/reservations/:reservation_id", server.GetReservation)
	auth.POST("/reservations/:reservation_id/decision", middleware.RequireAdmin(), server.DecideReservation)
	auth.DELETE("/reservations/:reservation_id", server.DeleteReservation)

	auth.POST("/projects", middleware.RequireAdmin(), server.CreateProject)
	auth.GET("/projects", server.ListProjects)
	auth.GET("/projects/:project_id", server.GetProject)
	auth.PUT("/projects/:project_id/surface", middleware.RequireRole(domain.RoleSupervisor), server.EditProjectSurface)
	auth.PUT("/projects/:project_id/status", middleware.RequireRole(domain.RoleSupervisor), server.ChangeProjectStatus)
	auth.PATCH("/projects/:project_id", middleware.RequireRole(domain.RoleSupervisor), server.UpdateProject)
	auth.DELETE("/projects/:project_id", middleware.RequireAdmin(), server.DeleteProject)

	auth.GET("/activity-types", server.ListActivityTypes)
	auth.POST("/activity-types", middleware.RequireAdmin(), server.CreateActivityType)

	auth.GET("/notifications", server.ListNotifications)
	auth.GET("/notifications/unread-count", server.GetUnreadCount)
	auth.POST("/notifications/:notification_id/read", server.MarkNotificationRead)
	auth.POST("/notifications/read-all", server.MarkAllNotificationsRead)

	return router
}
