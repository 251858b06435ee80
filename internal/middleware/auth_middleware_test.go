package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventlodge/room-assignment-backend/pkg/jwt"
)

func setupTestJWTService() *jwt.Service {
	return jwt.NewService("test-secret-key-123456789", time.Hour)
}

func setupTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func setupProtectedRouter(jwtService *jwt.Service, apiKeyHash string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtService, apiKeyHash, setupTestLogger()), func(c *gin.Context) {
		operator, exists := GetOperatorContext(c)
		if !exists {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"operator": operator.Name})
	})
	return router
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := setupTestJWTService()
	router := setupProtectedRouter(jwtService, "")

	token, err := jwtService.GenerateToken("op-1", "Jordan", []string{"operator"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jordan")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := setupProtectedRouter(setupTestJWTService(), "")

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_AUTH_HEADER")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := setupProtectedRouter(setupTestJWTService(), "")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_AUTH_FORMAT")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := setupProtectedRouter(setupTestJWTService(), "")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_APIKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-api-key"), bcrypt.MinCost)
	require.NoError(t, err)
	router := setupProtectedRouter(setupTestJWTService(), string(hash))

	t.Run("Valid Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("X-API-Key", "secret-api-key")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Wrong Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("X-API-Key", "wrong-key")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_API_KEY")
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := setupTestJWTService()

	router := gin.New()
	router.GET("/admin",
		AuthMiddleware(jwtService, "", setupTestLogger()),
		RequireRole("admin"),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

	t.Run("Has Role", func(t *testing.T) {
		token, err := jwtService.GenerateToken("op-1", "Jordan", []string{"operator", "admin"})
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing Role", func(t *testing.T) {
		token, err := jwtService.GenerateToken("op-2", "Sam", []string{"operator"})
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "INSUFFICIENT_ROLE")
	})
}
