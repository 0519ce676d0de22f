package services_test

import (
	"testing"
	"time"

	"shareit/internal/models"
	"shareit/internal/repositories"
	"shareit/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type itemFixture struct {
	items    *MockItemRepository
	users    *MockUserRepository
	requests *MockRequestRepository
	bookings *MockBookingRepository
	comments *MockCommentRepository
	service  *services.ItemService
}

func newItemFixture() *itemFixture {
	f := &itemFixture{
		items:    new(MockItemRepository),
		users:    new(MockUserRepository),
		requests: new(MockRequestRepository),
		bookings: new(MockBookingRepository),
		comments: new(MockCommentRepository),
	}
	commentService := services.NewCommentService(f.comments, f.users, f.items, f.bookings).WithClock(clock)
	f.service = services.NewItemService(f.items, f.users, f.requests, f.bookings, commentService).WithClock(clock)
	return f
}

func TestItemService_CreateItem(t *testing.T) {
	f := newItemFixture()
	f.users.On("GetByID", int64(1)).Return(&models.User{ID: 1}, nil)
	f.requests.On("GetByID", int64(4)).Return(&models.ItemRequest{ID: 4}, nil)
	f.items.On("Create", mock.AnythingOfType("*models.Item")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Item).ID = 10
	}).Return(nil)

	item, err := f.service.CreateItem(1, models.ItemDto{
		Name: "Drill", Description: "Cordless", Available: ptr(false), RequestID: ptr(int64(4)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), item.ID)
	assert.Equal(t, int64(1), item.OwnerID)
	assert.False(t, item.Available)
	assert.Equal(t, int64(4), *item.RequestID)
}

func TestItemService_CreateItem_UnknownRequest(t *testing.T) {
	f := newItemFixture()
	f.users.On("GetByID", int64(1)).Return(&models.User{ID: 1}, nil)
	f.requests.On("GetByID", int64(4)).Return(nil, repositories.ErrNotFound)

	_, err := f.service.CreateItem(1, models.ItemDto{Name: "Drill", Description: "d", Available: ptr(true), RequestID: ptr(int64(4))})
	var notFoundErr *services.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	f.items.AssertNotCalled(t, "Create", mock.Anything)
}

func TestItemService_UpdateItem(t *testing.T) {
	f := newItemFixture()
	f.items.On("GetByID", int64(10)).Return(&models.Item{ID: 10, Name: "Drill", Description: "Cordless", Available: true, OwnerID: 1}, nil)
	f.items.On("Update", mock.Anything).Return(nil)

	item, err := f.service.UpdateItem(10, 1, models.ItemPatch{Available: ptr(false)})
	require.NoError(t, err)
	assert.False(t, item.Available)
	assert.Equal(t, "Drill", item.Name)
	assert.Equal(t, "Cordless", item.Description)

	_, err = f.service.UpdateItem(10, 2, models.ItemPatch{Name: ptr("Saw")})
	var notFoundErr *services.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "item with id 10 not found from user id 2", err.Error())
	f.items.AssertNumberOfCalls(t, "Update", 1)
}

func TestItemService_GetItem_OwnerSeesBookings(t *testing.T) {
	f := newItemFixture()
	f.items.On("GetByID", int64(10)).Return(&models.Item{ID: 10, OwnerID: 1}, nil)
	f.comments.On("GetByItemIDs", []int64{10}).Return([]models.Comment{
		{ID: 3, Text: "Great", ItemID: 10, AuthorID: 2, Created: fixedNow.Add(-time.Hour)},
	}, nil)
	f.users.On("GetByIDs", []int64{2}).Return([]models.User{{ID: 2, Name: "Bob"}}, nil)
	f.bookings.On("LastApprovedByItems", []int64{10}, fixedNow).Return(map[int64]models.Booking{10: {ID: 5, BookerID: 2}}, nil)
	f.bookings.On("NextApprovedByItems", []int64{10}, fixedNow).Return(map[int64]models.Booking{}, nil)

	details, err := f.service.GetItem(10, 1)
	require.NoError(t, err)
	assert.Equal(t, &models.BookingShort{ID: 5, BookerID: 2}, details.LastBooking)
	assert.Nil(t, details.NextBooking)
	require.Len(t, details.Comments, 1)
	assert.Equal(t, "Bob", details.Comments[0].AuthorName)
}

func TestItemService_GetItem_OthersSeeNoBookings(t *testing.T) {
	f := newItemFixture()
	f.items.On("GetByID", int64(10)).Return(&models.Item{ID: 10, OwnerID: 1}, nil)
	f.comments.On("GetByItemIDs", []int64{10}).Return([]models.Comment{}, nil)

	details, err := f.service.GetItem(10, 2)
	require.NoError(t, err)
	assert.Nil(t, details.LastBooking)
	assert.Nil(t, details.NextBooking)
	assert.NotNil(t, details.Comments)
	f.bookings.AssertNotCalled(t, "LastApprovedByItems", mock.Anything, mock.Anything)
	f.bookings.AssertNotCalled(t, "NextApprovedByItems", mock.Anything, mock.Anything)
}

func TestItemService_GetOwnerItems(t *testing.T) {
	f := newItemFixture()
	f.items.On("GetByOwner", int64(1)).Return([]models.Item{{ID: 10, OwnerID: 1}, {ID: 11, OwnerID: 1}, {ID: 12, OwnerID: 1}}, nil)
	f.comments.On("GetByItemIDs", []int64{10, 11, 12}).Return([]models.Comment{
		{ID: 1, Text: "Loud", ItemID: 10, AuthorID: 2},
		{ID: 2, Text: "Sharp", ItemID: 12, AuthorID: 3},
		{ID: 3, Text: "Still sharp", ItemID: 12, AuthorID: 2},
	}, nil)
	f.users.On("GetByIDs", []int64{2, 3}).Return([]models.User{{ID: 2, Name: "Bob"}, {ID: 3, Name: "Eve"}}, nil)
	f.bookings.On("LastApprovedByItems", []int64{10, 11, 12}, fixedNow).Return(map[int64]models.Booking{11: {ID: 6, BookerID: 2}}, nil)
	f.bookings.On("NextApprovedByItems", []int64{10, 11, 12}, fixedNow).Return(map[int64]models.Booking{10: {ID: 8, BookerID: 3}}, nil)

	list, err := f.service.GetOwnerItems(1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(8), list[0].NextBooking.ID)
	assert.Nil(t, list[0].LastBooking)
	assert.Equal(t, int64(6), list[1].LastBooking.ID)
	assert.Nil(t, list[1].NextBooking)
	assert.Len(t, list[0].Comments, 1)
	assert.NotNil(t, list[1].Comments)
	assert.Empty(t, list[1].Comments)
	require.Len(t, list[2].Comments, 2)
	assert.Equal(t, "Eve", list[2].Comments[0].AuthorName)

	// One lookup per concern regardless of how many items the owner has.
	f.comments.AssertNumberOfCalls(t, "GetByItemIDs", 1)
	f.users.AssertNumberOfCalls(t, "GetByIDs", 1)
	f.bookings.AssertNumberOfCalls(t, "LastApprovedByItems", 1)
	f.bookings.AssertNumberOfCalls(t, "NextApprovedByItems", 1)
}

func TestItemService_GetOwnerItems_Empty(t *testing.T) {
	f := newItemFixture()
	f.items.On("GetByOwner", int64(1)).Return([]models.Item{}, nil)

	list, err := f.service.GetOwnerItems(1)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	f.comments.AssertNotCalled(t, "GetByItemIDs", mock.Anything)
}

func TestItemService_SearchItems(t *testing.T) {
	f := newItemFixture()

	list, err := f.service.SearchItems("   ")
	assert.NoError(t, err)
	assert.Empty(t, list)
	f.items.AssertNotCalled(t, "Search", mock.Anything)

	f.items.On("Search", "dRiLl").Return([]models.Item{{ID: 10, Name: "Drill"}}, nil).Once()
	list, err = f.service.SearchItems("dRiLl")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}
