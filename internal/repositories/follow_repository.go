package repositories

import (
	"github.com/cookhub/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	DeleteFollow(followerID, followingID uint) error
	IsFollowing(followerID, followingID uint) (bool, error)
	GetFollowing(userID uint) ([]models.UserSummary, error)
	GetFollowers(userID uint) ([]models.UserSummary, error)
	GetFollowingCount(userID uint) (int64, error)
	GetFollowersCount(userID uint) (int64, error)
}

// GormFollowRepository implements FollowRepository on a GORM connection
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a new GormFollowRepository
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

func (r *GormFollowRepository) CreateFollow(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

// DeleteFollow removes the edge if present. Deleting an absent edge is a
// no-op, which keeps unfollow idempotent.
func (r *GormFollowRepository) DeleteFollow(followerID, followingID uint) error {
	return r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
}

func (r *GormFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowing fetches the edge set first, then the referenced users in a
// single batched lookup.
func (r *GormFollowRepository) GetFollowing(userID uint) ([]models.UserSummary, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return r.usersByIDs(ids)
}

// GetFollowers fetches the edge set first, then the referenced users in a
// single batched lookup.
func (r *GormFollowRepository) GetFollowers(userID uint) ([]models.UserSummary, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return r.usersByIDs(ids)
}

func (r *GormFollowRepository) usersByIDs(ids []uint) ([]models.UserSummary, error) {
	users := make([]models.UserSummary, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Model(&models.User{}).
		Select("id, name, email, image_path").
		Where("id IN ?", ids).
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormFollowRepository) GetFollowingCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *GormFollowRepository) GetFollowersCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}
