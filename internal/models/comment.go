package models

import "time"

// Comment is left by a past renter on an item. Immutable once created.
type Comment struct {
	ID       int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Text     string    `json:"text" gorm:"type:varchar(2000);not null"`
	ItemID   int64     `json:"itemId" gorm:"index;not null"`
	AuthorID int64     `json:"authorId" gorm:"index;not null"`
	Created  time.Time `json:"created" gorm:"not null"`
}

// CommentDto is the request body for a new comment.
type CommentDto struct {
	Text string `json:"text" validate:"notblank"`
}

// CommentDetails is the response shape of a comment.
type CommentDetails struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// NewCommentDetails joins a comment with its author.
func NewCommentDetails(c Comment, author User) CommentDetails {
	return CommentDetails{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: author.Name,
		Created:    c.Created,
	}
}
