package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cookhub/backend/internal/apperrors"
	"github.com/cookhub/backend/internal/models"
	"github.com/cookhub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository) *FollowHandler {
	return &FollowHandler{followRepository: followRepo}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(public, protected *echo.Group) {
	protected.POST("/users/:id/follow/:target_id", h.FollowUser)
	protected.DELETE("/users/:id/follow/:target_id", h.UnfollowUser)
	public.GET("/users/:id/follow/:target_id", h.IsFollowing)
	public.GET("/users/:id/following", h.GetFollowing)
	public.GET("/users/:id/followers", h.GetFollowers)
}

// FollowUser inserts a follow edge
func (h *FollowHandler) FollowUser(c echo.Context) error {
	userID, targetID, err := followParams(c)
	if err != nil {
		return err
	}

	if userID == targetID {
		return apperrors.ToHTTP(apperrors.Validation("cannot follow yourself"))
	}

	follow := &models.Follow{
		FollowerID:  userID,
		FollowingID: targetID,
	}

	if err := h.followRepository.CreateFollow(follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ToHTTP(apperrors.Conflict("already following this user"))
		}
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Relation created"})
}

// UnfollowUser deletes a follow edge. Removing an absent edge still
// succeeds.
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	userID, targetID, err := followParams(c)
	if err != nil {
		return err
	}

	if err := h.followRepository.DeleteFollow(userID, targetID); err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Relation deleted"})
}

// IsFollowing reports whether the edge exists
func (h *FollowHandler) IsFollowing(c echo.Context) error {
	userID, targetID, err := followParams(c)
	if err != nil {
		return err
	}

	following, err := h.followRepository.IsFollowing(userID, targetID)
	if err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"follow": following})
}

// GetFollowing lists the users the given user follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.followRepository.GetFollowing(uint(id))
	if err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusOK, users)
}

// GetFollowers lists the users following the given user
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.followRepository.GetFollowers(uint(id))
	if err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusOK, users)
}

func followParams(c echo.Context) (uint, uint, error) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	targetID, err := strconv.ParseUint(c.Param("target_id"), 10, 32)
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid target user ID")
	}
	return uint(userID), uint(targetID), nil
}
