package services_test

import (
	"time"

	"shareit/internal/models"
	"shareit/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id int64) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ids []int64) ([]models.User, error) {
	args := m.Called(ids)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockItemRepository is a mock implementation of repositories.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(item *models.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemRepository) GetByID(id int64) (*models.Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) GetByIDs(ids []int64) ([]models.Item, error) {
	args := m.Called(ids)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) GetByOwner(ownerID int64) ([]models.Item, error) {
	args := m.Called(ownerID)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) GetByRequestIDs(requestIDs []int64) ([]models.Item, error) {
	args := m.Called(requestIDs)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) Search(text string) ([]models.Item, error) {
	args := m.Called(text)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepository) Update(item *models.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

// MockRequestRepository is a mock implementation of repositories.RequestRepository
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(request *models.ItemRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(id int64) (*models.ItemRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemRequest), args.Error(1)
}

func (m *MockRequestRepository) GetByRequestor(requestorID int64) ([]models.ItemRequest, error) {
	args := m.Called(requestorID)
	return args.Get(0).([]models.ItemRequest), args.Error(1)
}

func (m *MockRequestRepository) GetOthers(userID int64, page, size int) ([]models.ItemRequest, error) {
	args := m.Called(userID, page, size)
	return args.Get(0).([]models.ItemRequest), args.Error(1)
}

// MockCommentRepository is a mock implementation of repositories.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByItemIDs(itemIDs []int64) ([]models.Comment, error) {
	args := m.Called(itemIDs)
	return args.Get(0).([]models.Comment), args.Error(1)
}

// MockBookingRepository is a mock implementation of repositories.BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(booking *models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(id int64) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Decide(id int64, status models.BookingStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Find(filter repositories.BookingFilter) ([]models.Booking, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) LastApprovedByItems(itemIDs []int64, now time.Time) (map[int64]models.Booking, error) {
	args := m.Called(itemIDs, now)
	return args.Get(0).(map[int64]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) NextApprovedByItems(itemIDs []int64, now time.Time) (map[int64]models.Booking, error) {
	args := m.Called(itemIDs, now)
	return args.Get(0).(map[int64]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) HasFinishedApproved(bookerID, itemID int64, now time.Time) (bool, error) {
	args := m.Called(bookerID, itemID, now)
	return args.Bool(0), args.Error(1)
}

// MockPublisher records published booking events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishBookingEvent(event models.BookingEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

var fixedNow = time.Date(2030, time.January, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func ptr[T any](v T) *T { return &v }
