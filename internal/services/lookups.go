package services

import (
	"errors"

	"shareit/internal/models"
	"shareit/internal/repositories"
)

func findUser(repo repositories.UserRepository, id int64) (*models.User, error) {
	user, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("user with id %d not found", id)
		}
		return nil, err
	}
	return user, nil
}

func findItem(repo repositories.ItemRepository, id int64) (*models.Item, error) {
	item, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("item with id %d not found", id)
		}
		return nil, err
	}
	return item, nil
}

func findRequest(repo repositories.RequestRepository, id int64) (*models.ItemRequest, error) {
	request, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("item request with id %d not found", id)
		}
		return nil, err
	}
	return request, nil
}

func findBooking(repo repositories.BookingRepository, id int64) (*models.Booking, error) {
	booking, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("booking with id %d not found", id)
		}
		return nil, err
	}
	return booking, nil
}

// pageIndex maps an offset-style window onto a page number. The mapping is
// coarse: from=15,size=10 lands on page 1 just like from=10.
func pageIndex(from, size int) (int, error) {
	if from < 0 {
		return 0, badRequest("minimum value for from param is 0")
	}
	if size < 1 {
		return 0, badRequest("minimum value for size param is 1")
	}
	return from / size, nil
}
