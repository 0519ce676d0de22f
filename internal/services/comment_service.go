package services

import (
	"time"

	"shareit/internal/models"
	"shareit/internal/repositories"
)

// CommentService handles comments left by past renters.
type CommentService struct {
	commentRepo repositories.CommentRepository
	userRepo    repositories.UserRepository
	itemRepo    repositories.ItemRepository
	bookingRepo repositories.BookingRepository
	now         func() time.Time
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
	itemRepo repositories.ItemRepository,
	bookingRepo repositories.BookingRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for eligibility and timestamps.
func (s *CommentService) WithClock(now func() time.Time) *CommentService {
	s.now = now
	return s
}

// AddComment stores a comment from authorID on itemID. The author must have
// an approved booking of the item that has already ended.
func (s *CommentService) AddComment(itemID, authorID int64, dto models.CommentDto) (*models.CommentDetails, error) {
	author, err := findUser(s.userRepo, authorID)
	if err != nil {
		return nil, err
	}
	item, err := findItem(s.itemRepo, itemID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	rented, err := s.bookingRepo.HasFinishedApproved(author.ID, item.ID, now)
	if err != nil {
		return nil, err
	}
	if !rented {
		return nil, badRequest("item with id %d was not booked by user %d", itemID, authorID)
	}

	comment := &models.Comment{
		Text:     dto.Text,
		ItemID:   item.ID,
		AuthorID: author.ID,
		Created:  now,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	details := models.NewCommentDetails(*comment, *author)
	return &details, nil
}

// GetItemsComments groups the comments of the given items by item id, with
// author names resolved in one lookup. Every requested item gets a non-nil slice.
func (s *CommentService) GetItemsComments(itemIDs []int64) (map[int64][]models.CommentDetails, error) {
	result := make(map[int64][]models.CommentDetails, len(itemIDs))
	for _, id := range itemIDs {
		result[id] = []models.CommentDetails{}
	}
	if len(itemIDs) == 0 {
		return result, nil
	}

	comments, err := s.commentRepo.GetByItemIDs(itemIDs)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(comments))
	seen := make(map[int64]bool, len(comments))
	for _, c := range comments {
		if !seen[c.AuthorID] {
			seen[c.AuthorID] = true
			ids = append(ids, c.AuthorID)
		}
	}
	authors, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]models.User, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}

	for _, c := range comments {
		result[c.ItemID] = append(result[c.ItemID], models.NewCommentDetails(c, byID[c.AuthorID]))
	}
	return result, nil
}
