package repositories

import (
	"github.com/cookhub/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUsers() ([]models.UserSummary, error)
	SearchUsersByNamePrefix(prefix string) ([]models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
}

// GormUserRepository implements UserRepository on a GORM connection
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// CreateUser creates a new user
func (r *GormUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID
func (r *GormUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *GormUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsers retrieves the account directory: id, name, email, created_at only
func (r *GormUserRepository) GetUsers() ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := r.db.Model(&models.User{}).
		Select("id, name, email, created_at").
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// SearchUsersByNamePrefix retrieves users whose name starts with prefix
func (r *GormUserRepository) SearchUsersByNamePrefix(prefix string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("name LIKE ?", prefix+"%").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser updates an existing user
func (r *GormUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteUser removes a user and every dependent row in one transaction:
// reviews the user wrote or that sit on the user's recipes, the user's
// recipes, follow edges in both directions, then the user row itself.
// Any failing step rolls back the whole cascade.
func (r *GormUserRepository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ownedRecipes := tx.Model(&models.Recipe{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("user_id = ? OR recipe_id IN (?)", id, ownedRecipes).
			Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Recipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR following_id = ?", id, id).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
