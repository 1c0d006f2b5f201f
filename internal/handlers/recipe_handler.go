package handlers

import (
	"net/http"
	"strconv"

	"github.com/cookhub/backend/internal/apperrors"
	"github.com/cookhub/backend/internal/models"
	"github.com/cookhub/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// RecipeHandler handles HTTP requests related to recipes
type RecipeHandler struct {
	recipeRepository repositories.RecipeRepository
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeRepo repositories.RecipeRepository) *RecipeHandler {
	return &RecipeHandler{recipeRepository: recipeRepo}
}

// RegisterRecipeRoutes registers recipe-related routes
func (h *RecipeHandler) RegisterRecipeRoutes(public, protected *echo.Group) {
	public.GET("/recipes/:id", h.GetRecipe)
	public.GET("/users/:id/recipes", h.GetRecipesByUser)
	protected.POST("/recipes", h.CreateRecipe)
	protected.DELETE("/recipes/:id", h.DeleteRecipe)
}

// CreateRecipe creates a recipe owned by the authenticated user
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return apperrors.ToHTTP(apperrors.AuthFailed())
	}

	var req models.CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	recipe := &models.Recipe{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := h.recipeRepository.CreateRecipe(recipe); err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusCreated, recipe)
}

// GetRecipe returns a recipe with its reviews
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}

	recipe, err := h.recipeRepository.GetRecipeByID(uint(id))
	if err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusOK, recipe)
}

// GetRecipesByUser lists the recipes owned by a user
func (h *RecipeHandler) GetRecipesByUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	recipes, err := h.recipeRepository.GetRecipesByUserID(uint(id))
	if err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusOK, recipes)
}

// DeleteRecipe removes a recipe and its reviews. Only the owner may delete.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return apperrors.ToHTTP(apperrors.AuthFailed())
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipe ID")
	}

	recipe, err := h.recipeRepository.GetRecipeByID(uint(id))
	if err != nil {
		return apperrors.ToHTTP(err)
	}

	if recipe.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this recipe")
	}

	if err := h.recipeRepository.DeleteRecipe(uint(id)); err != nil {
		return apperrors.ToHTTP(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Recipe deleted"})
}
