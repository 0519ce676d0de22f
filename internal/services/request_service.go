package services

import (
	"time"

	"shareit/internal/models"
	"shareit/internal/repositories"
)

// RequestService handles the request board.
type RequestService struct {
	requestRepo repositories.RequestRepository
	userRepo    repositories.UserRepository
	itemRepo    repositories.ItemRepository
	now         func() time.Time
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requestRepo repositories.RequestRepository,
	userRepo repositories.UserRepository,
	itemRepo repositories.ItemRepository,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
		now:         time.Now,
	}
}

// WithClock replaces the time source used to stamp new requests.
func (s *RequestService) WithClock(now func() time.Time) *RequestService {
	s.now = now
	return s
}

// CreateRequest posts a new request on behalf of requestorID.
func (s *RequestService) CreateRequest(requestorID int64, dto models.ItemRequestDto) (*models.RequestDetails, error) {
	if _, err := findUser(s.userRepo, requestorID); err != nil {
		return nil, err
	}

	request := &models.ItemRequest{
		Description: dto.Description,
		RequestorID: requestorID,
		Created:     s.now().UTC(),
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}
	return &models.RequestDetails{ItemRequest: *request, Items: []models.Item{}}, nil
}

// GetRequest returns one request with the items listed against it.
func (s *RequestService) GetRequest(requestID, viewerID int64) (*models.RequestDetails, error) {
	if _, err := findUser(s.userRepo, viewerID); err != nil {
		return nil, err
	}
	request, err := findRequest(s.requestRepo, requestID)
	if err != nil {
		return nil, err
	}

	details, err := s.withItems([]models.ItemRequest{*request})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// GetOwnRequests lists the requests of requestorID, oldest first.
func (s *RequestService) GetOwnRequests(requestorID int64) ([]models.RequestDetails, error) {
	if _, err := findUser(s.userRepo, requestorID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.GetByRequestor(requestorID)
	if err != nil {
		return nil, err
	}
	return s.withItems(requests)
}

// GetOtherRequests pages through the requests of everyone but viewerID, oldest first.
func (s *RequestService) GetOtherRequests(viewerID int64, from, size int) ([]models.RequestDetails, error) {
	if _, err := findUser(s.userRepo, viewerID); err != nil {
		return nil, err
	}
	page, err := pageIndex(from, size)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.GetOthers(viewerID, page, size)
	if err != nil {
		return nil, err
	}
	return s.withItems(requests)
}

func (s *RequestService) withItems(requests []models.ItemRequest) ([]models.RequestDetails, error) {
	result := make([]models.RequestDetails, 0, len(requests))
	if len(requests) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}
	items, err := s.itemRepo.GetByRequestIDs(ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[int64][]models.Item, len(requests))
	for _, item := range items {
		if item.RequestID != nil {
			byRequest[*item.RequestID] = append(byRequest[*item.RequestID], item)
		}
	}

	for _, r := range requests {
		items := byRequest[r.ID]
		if items == nil {
			items = []models.Item{}
		}
		result = append(result, models.RequestDetails{ItemRequest: r, Items: items})
	}
	return result, nil
}
