package services

import (
	"errors"
	"time"

	"shareit/internal/models"
	"shareit/internal/repositories"
)

// BookingService handles business logic related to bookings.
type BookingService struct {
	bookingRepo repositories.BookingRepository
	userRepo    repositories.UserRepository
	itemRepo    repositories.ItemRepository
	publisher   BookingEventPublisher
	now         func() time.Time
}

// NewBookingService creates a new BookingService. publisher may be nil.
func NewBookingService(
	bookingRepo repositories.BookingRepository,
	userRepo repositories.UserRepository,
	itemRepo repositories.ItemRepository,
	publisher BookingEventPublisher,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for state filters.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

// CreateBooking books an available item for bookerID. Owners cannot book
// their own items; that attempt is reported as not found.
func (s *BookingService) CreateBooking(bookerID int64, dto models.BookingDto) (*models.BookingDetails, error) {
	if dto.Start == nil || dto.End == nil {
		return nil, badRequest("start and end of booking are required")
	}
	if !dto.Start.Before(*dto.End) {
		return nil, badRequest("start booking must be before end booking")
	}

	if _, err := findUser(s.userRepo, bookerID); err != nil {
		return nil, err
	}
	item, err := findItem(s.itemRepo, dto.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, badRequest("item with id %d is not available", item.ID)
	}
	if item.OwnerID == bookerID {
		return nil, notFound("impossible to book item with id %d", item.ID)
	}

	booking := &models.Booking{
		Start:    dto.Start.UTC(),
		End:      dto.End.UTC(),
		Status:   models.StatusWaiting,
		BookerID: bookerID,
		ItemID:   item.ID,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}

	s.publish(models.EventBookingCreated, *booking, *item)
	details := models.NewBookingDetails(*booking, *item)
	return &details, nil
}

// ApproveBooking lets the item owner approve or reject a waiting booking.
// The decision is final.
func (s *BookingService) ApproveBooking(bookingID, ownerID int64, approved bool) (*models.BookingDetails, error) {
	booking, err := findBooking(s.bookingRepo, bookingID)
	if err != nil {
		return nil, err
	}
	item, err := findItem(s.itemRepo, booking.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, notFound("booking with id %d not found from user id %d", bookingID, ownerID)
	}
	if booking.Status.Decided() {
		return nil, badRequest("impossible to change booking with id %d", bookingID)
	}

	status := models.StatusRejected
	eventType := models.EventBookingRejected
	if approved {
		status = models.StatusApproved
		eventType = models.EventBookingApproved
	}
	if err := s.bookingRepo.Decide(bookingID, status); err != nil {
		if errors.Is(err, repositories.ErrBookingDecided) {
			return nil, badRequest("impossible to change booking with id %d", bookingID)
		}
		return nil, err
	}
	booking.Status = status

	s.publish(eventType, *booking, *item)
	details := models.NewBookingDetails(*booking, *item)
	return &details, nil
}

// GetBooking returns a booking to its booker or to the item owner.
func (s *BookingService) GetBooking(bookingID, userID int64) (*models.BookingDetails, error) {
	booking, err := findBooking(s.bookingRepo, bookingID)
	if err != nil {
		return nil, err
	}
	item, err := findItem(s.itemRepo, booking.ItemID)
	if err != nil {
		return nil, err
	}
	if booking.BookerID != userID && item.OwnerID != userID {
		return nil, notFound("booking with id %d not found from user id %d", bookingID, userID)
	}

	details := models.NewBookingDetails(*booking, *item)
	return &details, nil
}

// GetBookerBookings lists the bookings made by bookerID.
func (s *BookingService) GetBookerBookings(bookerID int64, state string, from, size int) ([]models.BookingDetails, error) {
	return s.list(repositories.RoleBooker, bookerID, state, from, size)
}

// GetOwnerBookings lists the bookings of items owned by ownerID.
func (s *BookingService) GetOwnerBookings(ownerID int64, state string, from, size int) ([]models.BookingDetails, error) {
	return s.list(repositories.RoleOwner, ownerID, state, from, size)
}

func (s *BookingService) list(role repositories.BookingRole, userID int64, rawState string, from, size int) ([]models.BookingDetails, error) {
	if _, err := findUser(s.userRepo, userID); err != nil {
		return nil, err
	}
	state, ok := models.ParseBookingState(rawState)
	if !ok {
		return nil, badRequest("Unknown state: %s", rawState)
	}
	page, err := pageIndex(from, size)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.Find(repositories.BookingFilter{
		Role:   role,
		UserID: userID,
		State:  state,
		Now:    s.now().UTC(),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return nil, err
	}
	return s.withItems(bookings)
}

// withItems resolves the booked items with one lookup for the whole page.
func (s *BookingService) withItems(bookings []models.Booking) ([]models.BookingDetails, error) {
	result := make([]models.BookingDetails, 0, len(bookings))
	if len(bookings) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(bookings))
	seen := make(map[int64]bool, len(bookings))
	for _, b := range bookings {
		if !seen[b.ItemID] {
			seen[b.ItemID] = true
			ids = append(ids, b.ItemID)
		}
	}
	items, err := s.itemRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]models.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	for _, b := range bookings {
		result = append(result, models.NewBookingDetails(b, byID[b.ItemID]))
	}
	return result, nil
}

func (s *BookingService) publish(eventType string, booking models.Booking, item models.Item) {
	publishBookingEvent(s.publisher, models.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		ItemID:     item.ID,
		BookerID:   booking.BookerID,
		OwnerID:    item.OwnerID,
		Status:     booking.Status,
		Start:      booking.Start,
		End:        booking.End,
		OccurredAt: s.now().UTC(),
	})
}
