package repositories

import (
	"errors"
	"fmt"
	"strings"

	"shareit/internal/models"

	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// Create creates a new item in the database.
func (r *GORMItemRepository) Create(item *models.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// GetByID retrieves a single item by its ID from the database.
func (r *GORMItemRepository) GetByID(id int64) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item with id %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get item by id %d: %w", id, err)
	}
	return &item, nil
}

// GetByIDs retrieves every item whose id is in ids.
func (r *GORMItemRepository) GetByIDs(ids []int64) ([]models.Item, error) {
	var items []models.Item
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get items by ids: %w", err)
	}
	return items, nil
}

// GetByOwner retrieves the items of one owner ordered by id.
func (r *GORMItemRepository) GetByOwner(ownerID int64) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Where("owner_id = ?", ownerID).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get items of owner %d: %w", ownerID, err)
	}
	return items, nil
}

// GetByRequestIDs retrieves the items listed against any of the given requests.
func (r *GORMItemRepository) GetByRequestIDs(requestIDs []int64) ([]models.Item, error) {
	var items []models.Item
	if len(requestIDs) == 0 {
		return items, nil
	}
	if err := r.db.Where("request_id IN ?", requestIDs).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get items by request ids: %w", err)
	}
	return items, nil
}

// Search matches text case-insensitively against name or description of available items.
func (r *GORMItemRepository) Search(text string) ([]models.Item, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	var items []models.Item
	err := r.db.
		Where("is_available = ?", true).
		Where(searchCondition(r.db.Dialector.Name()), pattern, pattern).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search items by %q: %w", text, err)
	}
	return items, nil
}

// Update saves all fields of an existing item.
func (r *GORMItemRepository) Update(item *models.Item) error {
	res := r.db.Save(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update item %d: %w", item.ID, res.Error)
	}
	return nil
}

// searchCondition matches a lowercased pattern against name or description
// with Unicode case folding on every supported dialect.
func searchCondition(dialect string) string {
	switch dialect {
	case "postgres":
		return "name ILIKE ? OR description ILIKE ?"
	case "sqlite":
		return "unicode_lower(name) LIKE ? OR unicode_lower(description) LIKE ?"
	default:
		return "LOWER(name) LIKE ? OR LOWER(description) LIKE ?"
	}
}
