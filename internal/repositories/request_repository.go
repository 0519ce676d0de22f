package repositories

import "shareit/internal/models"

// RequestRepository defines the interface for item request data access.
type RequestRepository interface {
	Create(request *models.ItemRequest) error
	GetByID(id int64) (*models.ItemRequest, error)
	GetByRequestor(requestorID int64) ([]models.ItemRequest, error)
	// GetOthers pages through requests not created by userID, oldest first.
	GetOthers(userID int64, page, size int) ([]models.ItemRequest, error)
}
