package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cookhub/backend/internal/apperrors"
	"github.com/cookhub/backend/internal/models"
	"github.com/cookhub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
	recipeRepository repositories.RecipeRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository, recipeRepo repositories.RecipeRepository) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
		recipeRepository: recipeRepo,
	}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(public, protected *echo.Group) {
	public.GET("/users", h.ListUsers)
	public.GET("/users/search/:name", h.SearchUsers)
	public.GET("/users/:id", h.GetUser)
	public.POST("/users", h.CreateUser)
	protected.PUT("/users/:id", h.UpdateUser)
	protected.DELETE("/users/:id", h.DeleteUser)
}

// ListUsers returns the account directory. An empty directory is a 404,
// not an empty-list success.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userRepository.GetUsers()
	if err != nil {
		return apperrors.ToHTTP(err)
	}
	if len(users) == 0 {
		return apperrors.ToHTTP(apperrors.NotFound("no users found"))
	}
	return c.JSON(http.StatusOK, users)
}

// SearchUsers returns users whose name starts with the given prefix
func (h *UserHandler) SearchUsers(c echo.Context) error {
	users, err := h.userRepository.SearchUsersByNamePrefix(c.Param("name"))
	if err != nil {
		return apperrors.ToHTTP(err)
	}
	if len(users) == 0 {
		return apperrors.ToHTTP(apperrors.NotFound("no users found"))
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser returns a user profile merged with follow counts and the average
// grade across all reviews of the user's recipes
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userRepository.GetUserByID(uint(id))
	if err != nil {
		return apperrors.ToHTTP(err)
	}

	following, err := h.followRepository.GetFollowingCount(user.ID)
	if err != nil {
		return apperrors.ToHTTP(err)
	}
	followers, err := h.followRepository.GetFollowersCount(user.ID)
	if err != nil {
		return apperrors.ToHTTP(err)
	}
	average, err := h.recipeRepository.AverageRatingForUser(user.ID)
	if err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusOK, models.Profile{
		User:      *user,
		Following: following,
		Followers: followers,
		Average:   average,
	})
}

// CreateUser registers a new account
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.ToHTTP(err)
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		ImagePath: req.ImagePath,
	}

	if err := h.userRepository.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ToHTTP(apperrors.Validation("email already registered"))
		}
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "User created", "user": user})
}

// UpdateUser applies a partial update. A supplied password is re-hashed
// before persisting.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(uint(id))
	if err != nil {
		return apperrors.ToHTTP(err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.ImagePath != "" {
		user.ImagePath = req.ImagePath
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperrors.ToHTTP(err)
		}
		user.Password = string(hashedPassword)
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ToHTTP(apperrors.Validation("email already registered"))
		}
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User updated", "user": user})
}

// DeleteUser removes a user and all dependent rows in one transaction
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.userRepository.DeleteUser(uint(id)); err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted"})
}
