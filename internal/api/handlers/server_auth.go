package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	entuser "github.com/marwaELABIDI/ferme-platform/ent/user"
	"github.com/marwaELABIDI/ferme-platform/internal/api/middleware"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
)

const passwordHashCost = 12

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserInfo is the API view of an account.
type UserInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// ChangePasswordRequest is the POST /auth/change-password body.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// Login handles POST /auth/login.
func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_REQUEST"})
		return
	}

	user, err := s.client.User.Query().
		Where(entuser.EmailEQ(req.Email)).
		Where(entuser.EnabledEQ(true)).
		Only(c.Request.Context())
	if err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "INVALID_CREDENTIALS"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "INVALID_CREDENTIALS"})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, user.ID, user.Email, user.Role.String())
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	now := time.Now()
	if err := s.client.User.UpdateOneID(user.ID).SetLastLoginAt(now).Exec(c.Request.Context()); err != nil {
		logger.Warn("failed to update last_login_at", zap.Error(err), zap.String("user_id", user.ID))
	}

	if s.audit != nil {
		if err := s.audit.LogAction(c.Request.Context(), "user.login", "user", user.ID, user.ID, nil); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("action", "user.login"),
				zap.String("user_id", user.ID),
			)
		}
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// GetCurrentUser handles GET /auth/me.
func (s *Server) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED"})
		return
	}

	user, err := s.client.User.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Code: "USER_NOT_FOUND"})
		return
	}

	c.JSON(http.StatusOK, UserInfo{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role.String(),
	})
}

// ChangePassword handles POST /auth/change-password.
func (s *Server) ChangePassword(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_REQUEST"})
		return
	}

	user, err := s.client.User.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Code: "USER_NOT_FOUND"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_CURRENT_PASSWORD"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), passwordHashCost)
	if err != nil {
		logger.Error("failed to hash new password", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	err = s.client.User.UpdateOneID(userID).
		SetPasswordHash(string(hash)).
		Exec(c.Request.Context())
	if err != nil {
		logger.Error("failed to update password", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	if s.audit != nil {
		if err := s.audit.LogAction(c.Request.Context(), "user.password_change", "user", userID, userID,
			map[string]interface{}{
				"reason": "user_initiated",
				"email":  middleware.GetEmail(c.Request.Context()),
			}); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("action", "user.password_change"),
				zap.String("user_id", userID),
			)
		}
	}

	c.Status(http.StatusNoContent)
}

// HashPassword hashes a password using bcrypt (used by seed command).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GenerateUserID creates a new user ID.
func GenerateUserID() string {
	id, _ := uuid.NewV7()
	return id.String()
}
