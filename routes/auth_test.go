package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmarket-server/config"
	"taskmarket-server/utils"
)

func postRefresh(t *testing.T, router *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(gin.H{"refresh_token": token})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	config.Load()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/refresh", refreshToken)

	access, err := utils.GenerateToken(1, "customer")
	require.NoError(t, err)
	w := postRefresh(t, router, access)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	refresh, err := utils.GenerateRefreshToken(1, "customer")
	require.NoError(t, err)
	w = postRefresh(t, router, refresh)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")
}
