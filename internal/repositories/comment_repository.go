package repositories

import (
	"github.com/scribehq/scribe/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	ListCommentsByPost(postID uint) ([]models.Comment, error)
	CountCommentsByPost(postID uint) (int64, error)
}

// GormCommentRepository implements CommentRepository on a GORM connection
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListCommentsByPost returns a post's comments newest-first.
func (r *GormCommentRepository) ListCommentsByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Where("post_id = ?", postID).
		Order(feedOrder).
		Find(&comments).Error
	return comments, err
}

func (r *GormCommentRepository) CountCommentsByPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
