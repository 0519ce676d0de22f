package repositories

import "shareit/internal/models"

// ItemRepository defines the interface for item data access.
type ItemRepository interface {
	Create(item *models.Item) error
	GetByID(id int64) (*models.Item, error)
	GetByIDs(ids []int64) ([]models.Item, error)
	GetByOwner(ownerID int64) ([]models.Item, error)
	GetByRequestIDs(requestIDs []int64) ([]models.Item, error)
	Search(text string) ([]models.Item, error)
	Update(item *models.Item) error
}
