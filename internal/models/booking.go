package models

import (
	"strings"
	"time"
)

// BookingStatus is the persisted lifecycle status of a booking.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	// StatusCanceled is part of the data model but no operation moves a booking into it.
	StatusCanceled BookingStatus = "CANCELED"
)

// Decided reports whether the owner has already approved or rejected the booking.
func (s BookingStatus) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

// BookingState filters booking lists relative to the current time and status.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

var bookingStates = map[BookingState]struct{}{
	StateAll: {}, StateCurrent: {}, StatePast: {}, StateFuture: {}, StateWaiting: {}, StateRejected: {},
}

// ParseBookingState parses a state name case-insensitively.
func ParseBookingState(raw string) (BookingState, bool) {
	state := BookingState(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := bookingStates[state]
	return state, ok
}

// Booking reserves an item for the half-open window [Start, End).
type Booking struct {
	ID       int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	Start    time.Time     `json:"start" gorm:"column:start_date;not null;index"`
	End      time.Time     `json:"end" gorm:"column:end_date;not null"`
	Status   BookingStatus `json:"status" gorm:"type:varchar(16);not null;index"`
	BookerID int64         `json:"bookerId" gorm:"index;not null"`
	ItemID   int64         `json:"itemId" gorm:"index;not null"`
}

// BookingDto is the request body for a new booking.
type BookingDto struct {
	ItemID int64      `json:"itemId" validate:"required,gt=0"`
	Start  *time.Time `json:"start" validate:"required"`
	End    *time.Time `json:"end" validate:"required"`
}

// BookerRef identifies the booker on a booking view.
type BookerRef struct {
	ID int64 `json:"id"`
}

// ItemRef identifies the booked item on a booking view.
type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingDetails is the response shape of a booking.
type BookingDetails struct {
	ID     int64         `json:"id"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status BookingStatus `json:"status"`
	Booker BookerRef     `json:"booker"`
	Item   ItemRef       `json:"item"`
}

// NewBookingDetails joins a booking with the booked item.
func NewBookingDetails(b Booking, item Item) BookingDetails {
	return BookingDetails{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Booker: BookerRef{ID: b.BookerID},
		Item:   ItemRef{ID: item.ID, Name: item.Name},
	}
}

// Booking event types published on the message broker.
const (
	EventBookingCreated  = "booking.created"
	EventBookingApproved = "booking.approved"
	EventBookingRejected = "booking.rejected"
)

// BookingEvent describes a booking lifecycle change.
type BookingEvent struct {
	Type       string        `json:"type"`
	BookingID  int64         `json:"bookingId"`
	ItemID     int64         `json:"itemId"`
	BookerID   int64         `json:"bookerId"`
	OwnerID    int64         `json:"ownerId"`
	Status     BookingStatus `json:"status"`
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
	OccurredAt time.Time     `json:"occurredAt"`
}
