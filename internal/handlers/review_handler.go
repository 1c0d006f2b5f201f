package handlers

import (
	"net/http"
	"strconv"

	"github.com/cookhub/backend/internal/apperrors"
	"github.com/cookhub/backend/internal/models"
	"github.com/cookhub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ReviewHandler handles HTTP requests related to recipe reviews
type ReviewHandler struct {
	reviewRepository repositories.ReviewRepository
	recipeRepository repositories.RecipeRepository
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewRepo repositories.ReviewRepository, recipeRepo repositories.RecipeRepository) *ReviewHandler {
	return &ReviewHandler{
		reviewRepository: reviewRepo,
		recipeRepository: recipeRepo,
	}
}

// RegisterReviewRoutes registers review-related routes
func (h *ReviewHandler) RegisterReviewRoutes(public, protected *echo.Group) {
	public.GET("/recipes/:id/reviews", h.GetReviewsByRecipe)
	protected.POST("/recipes/:id/reviews", h.CreateReview)
}

// CreateReview adds a graded review to a recipe
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return apperrors.ToHTTP(apperrors.AuthFailed())
	}

	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}

	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Verify recipe exists
	if _, err := h.recipeRepository.GetRecipeByID(uint(recipeID)); err != nil {
		return apperrors.ToHTTP(err)
	}

	review := &models.Review{
		UserID:   userID,
		RecipeID: uint(recipeID),
		Grade:    req.Grade,
		Comment:  req.Comment,
	}

	if err := h.reviewRepository.CreateReview(review); err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusCreated, review)
}

// GetReviewsByRecipe lists the reviews of a recipe
func (h *ReviewHandler) GetReviewsByRecipe(c echo.Context) error {
	recipeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}

	reviews, err := h.reviewRepository.GetReviewsByRecipeID(uint(recipeID))
	if err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusOK, reviews)
}
