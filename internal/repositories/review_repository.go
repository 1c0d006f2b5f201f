package repositories

import (
	"github.com/cookhub/backend/internal/models"
	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	CreateReview(review *models.Review) error
	GetReviewsByRecipeID(recipeID uint) ([]models.Review, error)
}

// GormReviewRepository implements ReviewRepository on a GORM connection
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) CreateReview(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *GormReviewRepository) GetReviewsByRecipeID(recipeID uint) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	if err := r.db.Where("recipe_id = ?", recipeID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
