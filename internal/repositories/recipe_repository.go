package repositories

import (
	"database/sql"
	"math"

	"github.com/cookhub/backend/internal/models"
	"gorm.io/gorm"
)

// RecipeRepository defines the interface for recipe data operations
type RecipeRepository interface {
	CreateRecipe(recipe *models.Recipe) error
	GetRecipeByID(id uint) (*models.Recipe, error)
	GetRecipesByUserID(userID uint) ([]models.Recipe, error)
	DeleteRecipe(id uint) error
	AverageRatingForUser(userID uint) (float64, error)
	CountRecipesByUserID(userID uint) (int64, error)
}

// GormRecipeRepository implements RecipeRepository on a GORM connection
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GormRecipeRepository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

func (r *GormRecipeRepository) CreateRecipe(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *GormRecipeRepository) GetRecipeByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.Preload("Reviews").First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *GormRecipeRepository) GetRecipesByUserID(userID uint) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := r.db.Where("user_id = ?", userID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// DeleteRecipe removes a recipe together with its reviews.
func (r *GormRecipeRepository) DeleteRecipe(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

func (r *GormRecipeRepository) CountRecipesByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// AverageRatingForUser computes the average grade across all reviews of all
// recipes owned by the user in a single aggregate query. Recipes without
// reviews contribute no rows. Returns -1 when the user owns no recipes and
// 0 when the recipes carry no reviews at all. The result is rounded to two
// decimal places.
func (r *GormRecipeRepository) AverageRatingForUser(userID uint) (float64, error) {
	count, err := r.CountRecipesByUserID(userID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return -1, nil
	}

	var avg sql.NullFloat64
	err = r.db.Model(&models.Review{}).
		Select("AVG(reviews.grade)").
		Joins("JOIN recipes ON recipes.id = reviews.recipe_id").
		Where("recipes.user_id = ?", userID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return math.Round(avg.Float64*100) / 100, nil
}
