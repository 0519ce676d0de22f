package repositories

import (
	"time"

	"shareit/internal/models"
)

// BookingRole selects whose bookings a filter lists.
type BookingRole int

const (
	// RoleBooker lists bookings made by the user.
	RoleBooker BookingRole = iota
	// RoleOwner lists bookings of items owned by the user.
	RoleOwner
)

// BookingFilter describes one page of a booking listing.
type BookingFilter struct {
	Role   BookingRole
	UserID int64
	State  models.BookingState
	Now    time.Time
	Page   int
	Size   int
}

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id int64) (*models.Booking, error)
	// Decide moves a WAITING booking to status. It returns ErrBookingDecided
	// when the booking has already left WAITING.
	Decide(id int64, status models.BookingStatus) error
	// Find returns bookings matching the filter, latest start first.
	Find(filter BookingFilter) ([]models.Booking, error)
	// LastApprovedByItems maps each item to its approved booking with the
	// latest start before now. Items without one are absent.
	LastApprovedByItems(itemIDs []int64, now time.Time) (map[int64]models.Booking, error)
	// NextApprovedByItems maps each item to its approved booking with the
	// earliest start after now. Items without one are absent.
	NextApprovedByItems(itemIDs []int64, now time.Time) (map[int64]models.Booking, error)
	// HasFinishedApproved reports whether the booker has an approved booking
	// of the item that ended before now.
	HasFinishedApproved(bookerID, itemID int64, now time.Time) (bool, error)
}
