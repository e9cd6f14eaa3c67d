package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/marwaELABIDI/ferme-platform/internal/pkg/errors"
	"github.com/marwaELABIDI/ferme-platform/internal/pkg/logger"
)

func errorRouter(err error) *gin.Engine {
	_ = logger.Init("error", "json")
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})
	return r
}

func TestErrorHandler_AppError(t *testing.T) {
	appErr := apperrors.CapacityExceeded("f1", 80, 30)

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	errorRouter(appErr).ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), apperrors.CodeCapacityExceeded)
	assert.Contains(t, rec.Body.String(), "params")
	assert.Contains(t, rec.Body.String(), "field_id")
}

func TestErrorHandler_AppErrorWithoutParams(t *testing.T) {
	appErr := apperrors.BadRequest(apperrors.CodeInvalidRequest, "surface must be positive")

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	errorRouter(appErr).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apperrors.CodeInvalidRequest)
	assert.NotContains(t, rec.Body.String(), "params")
}

func TestErrorHandler_GenericError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	errorRouter(errors.New("pq: connection reset")).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestErrorHandler_NoError(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
