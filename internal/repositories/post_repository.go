package repositories

import (
	"errors"

	"github.com/scribehq/scribe/internal/models"
	"gorm.io/gorm"
)

// Every feed shares the same ordering: newest first, id as a tiebreaker
// within a timestamp tick.
const feedOrder = "created_at DESC, id DESC"

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error

	ListAllPosts(limit, offset int) ([]models.Post, error)
	CountAllPosts() (int64, error)
	ListPostsByGroup(groupID uint, limit, offset int) ([]models.Post, error)
	CountPostsByGroup(groupID uint) (int64, error)
	ListPostsByAuthor(authorID uint, limit, offset int) ([]models.Post, error)
	CountPostsByAuthor(authorID uint) (int64, error)
	ListPostsByFollowed(userID uint, limit, offset int) ([]models.Post, error)
	CountPostsByFollowed(userID uint) (int64, error)
}

// GormPostRepository implements PostRepository on a GORM connection
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post with its author and group loaded.
func (r *GormPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// UpdatePost saves the mutable fields of an existing post. CreatedAt is
// immutable once set and is never written here.
func (r *GormPostRepository) UpdatePost(post *models.Post) error {
	res := r.db.Model(&models.Post{ID: post.ID}).
		Select("text", "image", "group_id").
		Updates(map[string]interface{}{
			"text":     post.Text,
			"image":    post.Image,
			"group_id": post.GroupID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormPostRepository) DeletePost(id uint) error {
	res := r.db.Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormPostRepository) ListAllPosts(limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.feedQuery().Limit(limit).Offset(offset).Find(&posts).Error
	return posts, err
}

func (r *GormPostRepository) CountAllPosts() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

func (r *GormPostRepository) ListPostsByGroup(groupID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.feedQuery().Where("group_id = ?", groupID).
		Limit(limit).Offset(offset).Find(&posts).Error
	return posts, err
}

func (r *GormPostRepository) CountPostsByGroup(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

func (r *GormPostRepository) ListPostsByAuthor(authorID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.feedQuery().Where("author_id = ?", authorID).
		Limit(limit).Offset(offset).Find(&posts).Error
	return posts, err
}

func (r *GormPostRepository) CountPostsByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// ListPostsByFollowed returns one merged chronological feed of posts by
// every author the user follows.
func (r *GormPostRepository) ListPostsByFollowed(userID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.feedQuery().Where("author_id IN (?)", r.followedAuthorIDs(userID)).
		Limit(limit).Offset(offset).Find(&posts).Error
	return posts, err
}

func (r *GormPostRepository) CountPostsByFollowed(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).
		Where("author_id IN (?)", r.followedAuthorIDs(userID)).
		Count(&count).Error
	return count, err
}

func (r *GormPostRepository) feedQuery() *gorm.DB {
	return r.db.Model(&models.Post{}).
		Preload("Author").Preload("Group").
		Order(feedOrder)
}

func (r *GormPostRepository) followedAuthorIDs(userID uint) *gorm.DB {
	return r.db.Table("follows").Select("author_id").Where("user_id = ?", userID)
}
