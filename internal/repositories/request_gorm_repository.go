package repositories

import (
	"errors"
	"fmt"

	"shareit/internal/models"

	"gorm.io/gorm"
)

// GORMRequestRepository is a GORM implementation of RequestRepository.
type GORMRequestRepository struct {
	db *gorm.DB
}

// NewGORMRequestRepository creates a new instance of GORMRequestRepository.
func NewGORMRequestRepository(db *gorm.DB) *GORMRequestRepository {
	return &GORMRequestRepository{
		db: db,
	}
}

// Create stores a new item request.
func (r *GORMRequestRepository) Create(request *models.ItemRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create item request: %w", err)
	}
	return nil
}

// GetByID retrieves a single item request.
func (r *GORMRequestRepository) GetByID(id int64) (*models.ItemRequest, error) {
	var request models.ItemRequest
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item request with id %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get item request %d: %w", id, err)
	}
	return &request, nil
}

// GetByRequestor retrieves the requests of one user, oldest first.
func (r *GORMRequestRepository) GetByRequestor(requestorID int64) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.Where("requestor_id = ?", requestorID).Order("created ASC").Order("id").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get item requests of user %d: %w", requestorID, err)
	}
	return requests, nil
}

// GetOthers retrieves one page of requests created by anyone but userID, oldest first.
func (r *GORMRequestRepository) GetOthers(userID int64, page, size int) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.
		Where("requestor_id <> ?", userID).
		Order("created ASC").
		Order("id").
		Limit(size).
		Offset(page * size).
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get item requests of others for user %d: %w", userID, err)
	}
	return requests, nil
}
