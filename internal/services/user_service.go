package services

import (
	"errors"

	"shareit/internal/models"
	"shareit/internal/repositories"
)

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// CreateUser registers a new user. The email must not be taken.
func (s *UserService) CreateUser(dto models.UserDto) (*models.User, error) {
	if err := s.ensureEmailFree(dto.Email, 0); err != nil {
		return nil, err
	}

	user := &models.User{Name: dto.Name, Email: dto.Email}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, conflict("user with email %s already exists", dto.Email)
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser applies the non-nil fields of patch to user id.
func (s *UserService) UpdateUser(id int64, patch models.UserPatch) (*models.User, error) {
	user, err := findUser(s.repo, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil && *patch.Email != user.Email {
		if err := s.ensureEmailFree(*patch.Email, id); err != nil {
			return nil, err
		}
		user.Email = *patch.Email
	}

	if err := s.repo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, conflict("user with email %s already exists", user.Email)
		}
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a single user.
func (s *UserService) GetUser(id int64) (*models.User, error) {
	return findUser(s.repo, id)
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// DeleteUser removes a user. Removing an unknown user succeeds.
func (s *UserService) DeleteUser(id int64) error {
	return s.repo.Delete(id)
}

// ensureEmailFree fails when email belongs to a user other than ownerID.
func (s *UserService) ensureEmailFree(email string, ownerID int64) error {
	existing, err := s.repo.GetByEmail(email)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing != nil && existing.ID != ownerID:
		return conflict("user with email %s already exists", email)
	}
	return nil
}
