package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cookhub/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func signToken(t *testing.T, userID uint, email string, expiry time.Duration, key string) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func newProtectedEcho() *echo.Echo {
	e := echo.New()
	g := e.Group("", JWTAuthMiddleware(secret))
	g.GET("/whoami", func(c echo.Context) error {
		claims := c.Get("user").(*models.JwtCustomClaims)
		return c.JSON(http.StatusOK, echo.Map{"user_id": claims.UserID})
	})
	return e
}

func TestJWTAuthMiddleware(t *testing.T) {
	e := newProtectedEcho()

	do := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if authHeader != "" {
			req.Header.Set(echo.HeaderAuthorization, authHeader)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("ValidToken", func(t *testing.T) {
		token := signToken(t, 7, "a@x.com", time.Hour, secret)
		rec := do("Bearer " + token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user_id":7`)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		rec := do("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_FAILED")
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		rec := do("Token abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_FAILED")
	})

	t.Run("WrongKey", func(t *testing.T) {
		token := signToken(t, 7, "a@x.com", time.Hour, "other-secret")
		rec := do("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_FAILED")
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		token := signToken(t, 7, "a@x.com", -time.Hour, secret)
		rec := do("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_FAILED")
	})
}
