package repositories

import (
	"github.com/scribehq/scribe/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	DeleteFollow(userID, authorID uint) error
	IsFollowing(userID, authorID uint) (bool, error)
	CountFollows() (int64, error)
	GetFollowedAuthors(userID uint) ([]models.User, error)
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

// DeleteFollow removes the edge if present. A missing edge is not an
// error: unfollow is a no-op on a pair that was never followed.
func (r *GormFollowRepository) DeleteFollow(userID, authorID uint) error {
	return r.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
}

func (r *GormFollowRepository) IsFollowing(userID, authorID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormFollowRepository) CountFollows() (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Count(&count).Error
	return count, err
}

func (r *GormFollowRepository) GetFollowedAuthors(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("author_id").Where("user_id = ?", userID),
	).Find(&users).Error
	return users, err
}
