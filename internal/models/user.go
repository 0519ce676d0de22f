package models

// User represents a ShareIt member. Email is unique across all users.
type User struct {
	ID    int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"type:varchar(255);not null"`
	Email string `json:"email" gorm:"uniqueIndex;type:varchar(512);not null"`
}

// UserDto is the request body for user signup.
type UserDto struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,email"`
}

// UserPatch carries a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Name  *string `json:"name" validate:"omitempty,notblank"`
	Email *string `json:"email" validate:"omitempty,email"`
}
