package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-selling-service/internal/config"
	"car-selling-service/internal/logger"
	"car-selling-service/pkg/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Init("development"); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

const testSecret = "auth-test-secret"

func protectedRouter() *gin.Engine {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret, ExpiryHours: 24}}

	router := gin.New()
	router.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no user bound"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID.String()})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec := doRequest(protectedRouter(), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"No authentication token found"}`, rec.Body.String())
}

func TestAuthMiddleware_EmptyBearer(t *testing.T) {
	rec := doRequest(protectedRouter(), "Bearer ")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"No authentication token found"}`, rec.Body.String())
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	for _, header := range []string{
		"Bearer not-a-jwt",
		"Bearer aaaa.bbbb.cccc",
	} {
		rec := doRequest(protectedRouter(), header)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
		assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken(uuid.NewString(), []byte(testSecret), -time.Minute)
	require.NoError(t, err)

	rec := doRequest(protectedRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
}

func TestAuthMiddleware_WrongKeyToken(t *testing.T) {
	token, err := utils.GenerateToken(uuid.NewString(), []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	rec := doRequest(protectedRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
}

func TestAuthMiddleware_ValidTokenBindsUserID(t *testing.T) {
	userID := uuid.New()
	token, err := utils.GenerateToken(userID.String(), []byte(testSecret), time.Hour)
	require.NoError(t, err)

	rec := doRequest(protectedRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":"`+userID.String()+`"}`, rec.Body.String())
}
