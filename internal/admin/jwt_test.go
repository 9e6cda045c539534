package admin_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixhub/internal/admin"
)

func testTokens() admin.TokenService {
	return admin.TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "fixhub-test",
		Duration: time.Hour,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tokens := testTokens()
	u := &admin.User{ID: "u1", Username: "ops", TokenVersion: 3}

	signed, exp, err := tokens.Sign(u)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "ops", claims.Username)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.Equal(t, "fixhub-test", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signed, _, err := testTokens().Sign(&admin.User{ID: "u1", Username: "ops"})
	require.NoError(t, err)

	other := admin.TokenService{Secret: []byte("different"), Issuer: "fixhub-test", Duration: time.Hour}
	_, err = other.Parse(signed)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	tokens := testTokens()

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.GET("/protected", admin.AuthMiddleware(tokens, nil), func(c *gin.Context) {
			claims := admin.MustGetClaims(c)
			c.JSON(http.StatusOK, gin.H{"username": claims.Username})
		})
		return router
	}

	t.Run("valid token passes and exposes claims", func(t *testing.T) {
		t.Parallel()

		signed, _, err := tokens.Sign(&admin.User{ID: "u1", Username: "ops"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ops")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
