package repositories

import (
	"errors"
	"fmt"
	"time"

	"shareit/internal/models"

	"gorm.io/gorm"
)

// statePredicates narrows a booking query to one BookingState.
var statePredicates = map[models.BookingState]func(tx *gorm.DB, now time.Time) *gorm.DB{
	models.StateAll: func(tx *gorm.DB, _ time.Time) *gorm.DB {
		return tx
	},
	models.StateCurrent: func(tx *gorm.DB, now time.Time) *gorm.DB {
		return tx.Where("bookings.start_date <= ? AND bookings.end_date > ?", now, now)
	},
	models.StatePast: func(tx *gorm.DB, now time.Time) *gorm.DB {
		return tx.Where("bookings.end_date < ?", now)
	},
	models.StateFuture: func(tx *gorm.DB, now time.Time) *gorm.DB {
		return tx.Where("bookings.start_date > ?", now)
	},
	models.StateWaiting: func(tx *gorm.DB, _ time.Time) *gorm.DB {
		return tx.Where("bookings.status = ?", models.StatusWaiting)
	},
	models.StateRejected: func(tx *gorm.DB, _ time.Time) *gorm.DB {
		return tx.Where("bookings.status = ?", models.StatusRejected)
	},
}

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{
		db: db,
	}
}

// Create stores a new booking.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a single booking.
func (r *GORMBookingRepository) GetByID(id int64) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking with id %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking %d: %w", id, err)
	}
	return &booking, nil
}

// Decide updates the status only while the row is still WAITING, so two
// concurrent decisions cannot both succeed.
func (r *GORMBookingRepository) Decide(id int64, status models.BookingStatus) error {
	res := r.db.Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, models.StatusWaiting).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status of booking %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking with id %d: %w", id, ErrBookingDecided)
	}
	return nil
}

// Find lists one page of bookings for a booker or an owner.
func (r *GORMBookingRepository) Find(filter BookingFilter) ([]models.Booking, error) {
	predicate, ok := statePredicates[filter.State]
	if !ok {
		return nil, fmt.Errorf("unsupported booking state %q", filter.State)
	}

	tx := r.db.Model(&models.Booking{}).Select("bookings.*")
	switch filter.Role {
	case RoleOwner:
		tx = tx.Joins("JOIN items ON items.id = bookings.item_id").Where("items.owner_id = ?", filter.UserID)
	default:
		tx = tx.Where("bookings.booker_id = ?", filter.UserID)
	}

	var bookings []models.Booking
	err := predicate(tx, filter.Now).
		Order("bookings.start_date DESC").
		Limit(filter.Size).
		Offset(filter.Page * filter.Size).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find %s bookings of user %d: %w", filter.State, filter.UserID, err)
	}
	return bookings, nil
}

// LastApprovedByItems picks, per item, the latest approved booking that started before now.
func (r *GORMBookingRepository) LastApprovedByItems(itemIDs []int64, now time.Time) (map[int64]models.Booking, error) {
	return r.firstApprovedByItems(r.db.Where("start_date < ?", now).Order("start_date DESC"), itemIDs)
}

// NextApprovedByItems picks, per item, the earliest approved booking that starts after now.
func (r *GORMBookingRepository) NextApprovedByItems(itemIDs []int64, now time.Time) (map[int64]models.Booking, error) {
	return r.firstApprovedByItems(r.db.Where("start_date > ?", now).Order("start_date ASC"), itemIDs)
}

// firstApprovedByItems runs one ordered query for all items and keeps the
// first row seen for each of them.
func (r *GORMBookingRepository) firstApprovedByItems(tx *gorm.DB, itemIDs []int64) (map[int64]models.Booking, error) {
	result := make(map[int64]models.Booking, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}

	var bookings []models.Booking
	err := tx.Where("item_id IN ? AND status = ?", itemIDs, models.StatusApproved).
		Order("id").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get approved bookings of %d items: %w", len(itemIDs), err)
	}
	for _, b := range bookings {
		if _, ok := result[b.ItemID]; !ok {
			result[b.ItemID] = b
		}
	}
	return result, nil
}

// HasFinishedApproved reports whether bookerID rented itemID and the rental is over.
func (r *GORMBookingRepository) HasFinishedApproved(bookerID, itemID int64, now time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("booker_id = ? AND item_id = ? AND status = ? AND end_date < ?",
			bookerID, itemID, models.StatusApproved, now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count finished bookings of user %d: %w", bookerID, err)
	}
	return count > 0, nil
}
