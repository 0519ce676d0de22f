package repositories

import "shareit/internal/models"

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	// GetByItemIDs returns the comments of all given items, oldest first.
	GetByItemIDs(itemIDs []int64) ([]models.Comment, error)
}
