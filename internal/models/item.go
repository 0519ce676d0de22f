package models

// Item is a thing an owner offers for rent.
type Item struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:varchar(1000);not null"`
	Available   bool   `json:"available" gorm:"column:is_available;not null"`
	OwnerID     int64  `json:"ownerId" gorm:"index;not null"`
	RequestID   *int64 `json:"requestId" gorm:"index"`
}

// ItemDto is the request body for listing a new item.
type ItemDto struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

// ItemPatch carries a partial item update. Nil fields are left untouched.
type ItemPatch struct {
	Name        *string `json:"name" validate:"omitempty,notblank"`
	Description *string `json:"description" validate:"omitempty,notblank"`
	Available   *bool   `json:"available"`
}

// BookingShort summarises a booking on an item view.
type BookingShort struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// ItemDetails is an item decorated with its comments and, for the owner,
// the nearest past and future approved bookings.
type ItemDetails struct {
	Item
	LastBooking *BookingShort    `json:"lastBooking"`
	NextBooking *BookingShort    `json:"nextBooking"`
	Comments    []CommentDetails `json:"comments"`
}
