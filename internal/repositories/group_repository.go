package repositories

import (
	"errors"

	"github.com/scribehq/scribe/internal/models"
	"gorm.io/gorm"
)

// GroupRepository defines the interface for group data operations
type GroupRepository interface {
	CreateGroup(group *models.Group) error
	GetGroupBySlug(slug string) (*models.Group, error)
	ListGroups() ([]models.Group, error)
}

// GormGroupRepository implements GroupRepository on a GORM connection
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a new GormGroupRepository
func NewGormGroupRepository(db *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: db}
}

func (r *GormGroupRepository) CreateGroup(group *models.Group) error {
	return r.db.Create(group).Error
}

func (r *GormGroupRepository) GetGroupBySlug(slug string) (*models.Group, error) {
	var group models.Group
	if err := r.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

func (r *GormGroupRepository) ListGroups() ([]models.Group, error) {
	var groups []models.Group
	err := r.db.Order("title").Find(&groups).Error
	return groups, err
}
