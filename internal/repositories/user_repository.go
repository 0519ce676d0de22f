package repositories

import "shareit/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []int64) ([]models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id int64) error
}
