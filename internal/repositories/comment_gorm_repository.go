package repositories

import (
	"fmt"

	"shareit/internal/models"

	"gorm.io/gorm"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{
		db: db,
	}
}

// Create stores a new comment.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetByItemIDs retrieves every comment left on any of the given items.
func (r *GORMCommentRepository) GetByItemIDs(itemIDs []int64) ([]models.Comment, error) {
	comments := []models.Comment{}
	if len(itemIDs) == 0 {
		return comments, nil
	}
	if err := r.db.Where("item_id IN ?", itemIDs).Order("created, id").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to get comments of %d items: %w", len(itemIDs), err)
	}
	return comments, nil
}
