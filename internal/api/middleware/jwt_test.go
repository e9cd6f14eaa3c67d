package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testJWTConfig = JWTConfig{
	SigningKey: []byte("test-signing-key-1234567890123456"),
	Issuer:     "ferme-platform",
	ExpiresIn:  time.Hour,
}

func authRouter(signingKey []byte) *gin.Engine {
	r := gin.New()
	r.GET("/protected", JWTAuth(signingKey), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c.Request.Context()),
			"email":   GetEmail(c.Request.Context()),
			"role":    GetRole(c.Request.Context()),
		})
	})
	return r
}

func TestJWTAuth_ValidToken(t *testing.T) {
	token, expiresAt, err := GenerateToken(testJWTConfig, "u-1", "alice@localhost", "ADMIN")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	authRouter(testJWTConfig.SigningKey).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":"u-1"`)
	assert.Contains(t, rec.Body.String(), `"email":"alice@localhost"`)
	assert.Contains(t, rec.Body.String(), `"role":"ADMIN"`)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	authRouter(testJWTConfig.SigningKey).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing authorization header")
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	authRouter(testJWTConfig.SigningKey).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid authorization header format")
}

func TestJWTAuth_WrongKey(t *testing.T) {
	token, _, err := GenerateToken(testJWTConfig, "u-1", "alice@localhost", "CLIENT")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	authRouter([]byte("a-different-signing-key-0987654321")).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expired := testJWTConfig
	expired.ExpiresIn = -time.Hour
	token, _, err := GenerateToken(expired, "u-1", "alice@localhost", "CLIENT")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	authRouter(testJWTConfig.SigningKey).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token expired")
}

func TestJWTAuth_RejectsNoneSigningMethod(t *testing.T) {
	now := time.Now()
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ferme-platform",
			Subject:   "u-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	authRouter(testJWTConfig.SigningKey).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
