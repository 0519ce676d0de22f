package services

import (
	"log"

	"shareit/internal/models"
)

// BookingEventPublisher delivers booking lifecycle events to interested consumers.
type BookingEventPublisher interface {
	PublishBookingEvent(event models.BookingEvent) error
}

// publishBookingEvent never fails the calling operation; delivery errors are logged.
func publishBookingEvent(publisher BookingEventPublisher, event models.BookingEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishBookingEvent(event); err != nil {
		log.Printf("Warning: failed to publish %s event for booking %d: %v", event.Type, event.BookingID, err)
		return
	}
	log.Printf("Published %s event for booking %d", event.Type, event.BookingID)
}
