package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/cookhub/backend/internal/apperrors"
	"github.com/cookhub/backend/internal/models"
	"github.com/cookhub/backend/internal/repositories"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	jwtSecret      string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		jwtSecret:      jwtSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(public, protected *echo.Group) {
	public.POST("/auth/login", h.Login)
	protected.GET("/auth/validate", h.ValidateSession)
}

// Login authenticates by email and password and issues a signed token.
// Unknown email and wrong password produce the same AUTH_FAILED response
// so callers cannot probe which addresses are registered.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ToHTTP(apperrors.AuthFailed())
		}
		return apperrors.ToHTTP(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return apperrors.ToHTTP(apperrors.AuthFailed())
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "AUTH_SUCCESSFUL",
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"token":   token,
	})
}

// ValidateSession echoes back the verified claims the JWT middleware
// attached to the request
func (h *AuthHandler) ValidateSession(c echo.Context) error {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return apperrors.ToHTTP(apperrors.AuthFailed())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": claims.UserID,
		"email":   claims.Email,
	})
}

// generateJWT generates a JWT token for a given user
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)), // Token expires in 72 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
