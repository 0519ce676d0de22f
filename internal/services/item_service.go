package services

import (
	"strings"
	"time"

	"shareit/internal/models"
	"shareit/internal/repositories"
)

// ItemService handles business logic related to the item catalog.
type ItemService struct {
	itemRepo    repositories.ItemRepository
	userRepo    repositories.UserRepository
	requestRepo repositories.RequestRepository
	bookingRepo repositories.BookingRepository
	comments    *CommentService
	now         func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(
	itemRepo repositories.ItemRepository,
	userRepo repositories.UserRepository,
	requestRepo repositories.RequestRepository,
	bookingRepo repositories.BookingRepository,
	comments *CommentService,
) *ItemService {
	return &ItemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		bookingRepo: bookingRepo,
		comments:    comments,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for last/next booking lookups.
func (s *ItemService) WithClock(now func() time.Time) *ItemService {
	s.now = now
	return s
}

// CreateItem lists a new item for ownerID, optionally against an item request.
func (s *ItemService) CreateItem(ownerID int64, dto models.ItemDto) (*models.Item, error) {
	if _, err := findUser(s.userRepo, ownerID); err != nil {
		return nil, err
	}
	if dto.RequestID != nil {
		if _, err := findRequest(s.requestRepo, *dto.RequestID); err != nil {
			return nil, err
		}
	}

	item := &models.Item{
		Name:        dto.Name,
		Description: dto.Description,
		Available:   true,
		OwnerID:     ownerID,
		RequestID:   dto.RequestID,
	}
	if dto.Available != nil {
		item.Available = *dto.Available
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem applies the non-nil fields of patch. Only the owner may update;
// anyone else gets not found.
func (s *ItemService) UpdateItem(itemID, ownerID int64, patch models.ItemPatch) (*models.Item, error) {
	item, err := findItem(s.itemRepo, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, notFound("item with id %d not found from user id %d", itemID, ownerID)
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem returns an item with its comments. The owner also sees the last
// and next approved bookings.
func (s *ItemService) GetItem(itemID, viewerID int64) (*models.ItemDetails, error) {
	item, err := findItem(s.itemRepo, itemID)
	if err != nil {
		return nil, err
	}
	details, err := s.decorate([]models.Item{*item}, item.OwnerID == viewerID)
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// GetOwnerItems lists the items of ownerID ordered by id, fully decorated.
func (s *ItemService) GetOwnerItems(ownerID int64) ([]models.ItemDetails, error) {
	items, err := s.itemRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return s.decorate(items, true)
}

// SearchItems finds available items whose name or description contains text.
// A blank query matches nothing.
func (s *ItemService) SearchItems(text string) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}
	return s.itemRepo.Search(text)
}

// decorate attaches comments and, when withBookings is set, the last and
// next approved bookings, using one lookup per concern for all items.
func (s *ItemService) decorate(items []models.Item, withBookings bool) ([]models.ItemDetails, error) {
	result := make([]models.ItemDetails, 0, len(items))
	if len(items) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	comments, err := s.comments.GetItemsComments(ids)
	if err != nil {
		return nil, err
	}

	var last, next map[int64]models.Booking
	if withBookings {
		now := s.now().UTC()
		if last, err = s.bookingRepo.LastApprovedByItems(ids, now); err != nil {
			return nil, err
		}
		if next, err = s.bookingRepo.NextApprovedByItems(ids, now); err != nil {
			return nil, err
		}
	}

	for _, item := range items {
		result = append(result, models.ItemDetails{
			Item:        item,
			Comments:    comments[item.ID],
			LastBooking: shortBooking(last, item.ID),
			NextBooking: shortBooking(next, item.ID),
		})
	}
	return result, nil
}

func shortBooking(byItem map[int64]models.Booking, itemID int64) *models.BookingShort {
	b, ok := byItem[itemID]
	if !ok {
		return nil
	}
	return &models.BookingShort{ID: b.ID, BookerID: b.BookerID}
}
