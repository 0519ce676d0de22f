package models

import "time"

// ItemRequest is a user's posted need for an item that is not listed yet.
type ItemRequest struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Description string    `json:"description" gorm:"type:varchar(1000);not null"`
	RequestorID int64     `json:"requestorId" gorm:"index;not null"`
	Created     time.Time `json:"created" gorm:"not null;index"`
}

// ItemRequestDto is the request body for posting a request.
type ItemRequestDto struct {
	Description string `json:"description" validate:"notblank"`
}

// RequestDetails is a request together with the items listed against it.
type RequestDetails struct {
	ItemRequest
	Items []Item `json:"items"`
}
