package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/cookhub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeEndpoints(t *testing.T) {
	env := newTestEnv(t)
	ann := env.seedUser(t, "Ann", "a@x.com", "pw")
	bob := env.seedUser(t, "Bob", "b@x.com", "pw")

	var recipeID string

	t.Run("CreateOwnedByTokenUser", func(t *testing.T) {
		c, rec := env.newContext(t, http.MethodPost, models.CreateRecipeRequest{Title: "Carbonara"})
		withClaims(c, ann.ID, ann.Email)
		require.NoError(t, env.recipes.CreateRecipe(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.EqualValues(t, ann.ID, body["user_id"])
		recipeID = strconv.Itoa(int(body["id"].(float64)))
	})

	t.Run("CreateWithoutSessionIs401", func(t *testing.T) {
		c, _ := env.newContext(t, http.MethodPost, models.CreateRecipeRequest{Title: "Ragu"})
		he := httpError(t, env.recipes.CreateRecipe(c))
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("ReviewAndFetch", func(t *testing.T) {
		c, rec := env.newContext(t, http.MethodPost, models.CreateReviewRequest{Grade: 5, Comment: "great"}, "id", recipeID)
		withClaims(c, bob.ID, bob.Email)
		require.NoError(t, env.reviews.CreateReview(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		c, rec = env.newContext(t, http.MethodGet, nil, "id", recipeID)
		require.NoError(t, env.recipes.GetRecipe(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "great")
	})

	t.Run("GradeOutOfRangeRejected", func(t *testing.T) {
		c, _ := env.newContext(t, http.MethodPost, models.CreateReviewRequest{Grade: 6}, "id", recipeID)
		withClaims(c, bob.ID, bob.Email)
		he := httpError(t, env.reviews.CreateReview(c))
		assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
	})

	t.Run("ReviewOnMissingRecipeIs404", func(t *testing.T) {
		c, _ := env.newContext(t, http.MethodPost, models.CreateReviewRequest{Grade: 3}, "id", "9999")
		withClaims(c, bob.ID, bob.Email)
		he := httpError(t, env.reviews.CreateReview(c))
		assert.Equal(t, http.StatusNotFound, he.Code)
	})

	t.Run("DeleteByNonOwnerIs403", func(t *testing.T) {
		c, _ := env.newContext(t, http.MethodDelete, nil, "id", recipeID)
		withClaims(c, bob.ID, bob.Email)
		he := httpError(t, env.recipes.DeleteRecipe(c))
		assert.Equal(t, http.StatusForbidden, he.Code)
	})

	t.Run("DeleteByOwner", func(t *testing.T) {
		c, rec := env.newContext(t, http.MethodDelete, nil, "id", recipeID)
		withClaims(c, ann.ID, ann.Email)
		require.NoError(t, env.recipes.DeleteRecipe(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var count int64
		env.db.Model(&models.Review{}).Count(&count)
		assert.Zero(t, count, "reviews go with the recipe")
	})

	t.Run("ListByUserMayBeEmpty", func(t *testing.T) {
		c, rec := env.newContext(t, http.MethodGet, nil, "id", strconv.Itoa(int(bob.ID)))
		require.NoError(t, env.recipes.GetRecipesByUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}
