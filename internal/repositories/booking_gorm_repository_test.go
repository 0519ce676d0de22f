package repositories_test

import (
	"regexp"
	"testing"
	"time"

	"shareit/internal/models"
	"shareit/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type bookingWorld struct {
	db      *gorm.DB
	repo    *repositories.GORMBookingRepository
	owner   *models.User
	booker  *models.User
	item    *models.Item
	past    *models.Booking
	current *models.Booking
	future  *models.Booking
	waiting *models.Booking
}

// newBookingWorld seeds one item with a past, a current and a future approved
// booking plus a future waiting one, all by the same booker.
func newBookingWorld(t *testing.T) *bookingWorld {
	t.Helper()
	db := newTestDB(t)
	users := repositories.NewGORMUserRepository(db)
	items := repositories.NewGORMItemRepository(db)
	w := &bookingWorld{db: db, repo: repositories.NewGORMBookingRepository(db)}

	w.owner = createUser(t, users, "owner")
	w.booker = createUser(t, users, "booker")
	w.item = createItem(t, items, w.owner.ID, "Drill", true)

	book := func(start, end time.Time, status models.BookingStatus) *models.Booking {
		b := &models.Booking{Start: start, End: end, Status: status, BookerID: w.booker.ID, ItemID: w.item.ID}
		require.NoError(t, w.repo.Create(b))
		return b
	}
	day := 24 * time.Hour
	w.past = book(now.Add(-3*day), now.Add(-2*day), models.StatusApproved)
	w.current = book(now.Add(-time.Hour), now.Add(time.Hour), models.StatusApproved)
	w.future = book(now.Add(2*day), now.Add(3*day), models.StatusApproved)
	w.waiting = book(now.Add(4*day), now.Add(5*day), models.StatusWaiting)
	return w
}

func ids(bookings []models.Booking) []int64 {
	out := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}

func TestGORMBookingRepository_FindByState(t *testing.T) {
	w := newBookingWorld(t)

	tests := []struct {
		state models.BookingState
		want  []int64
	}{
		{models.StateAll, []int64{w.waiting.ID, w.future.ID, w.current.ID, w.past.ID}},
		{models.StateCurrent, []int64{w.current.ID}},
		{models.StatePast, []int64{w.past.ID}},
		{models.StateFuture, []int64{w.waiting.ID, w.future.ID}},
		{models.StateWaiting, []int64{w.waiting.ID}},
		{models.StateRejected, []int64{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			for _, filter := range []repositories.BookingFilter{
				{Role: repositories.RoleBooker, UserID: w.booker.ID, State: tt.state, Now: now, Size: 10},
				{Role: repositories.RoleOwner, UserID: w.owner.ID, State: tt.state, Now: now, Size: 10},
			} {
				got, err := w.repo.Find(filter)
				require.NoError(t, err)
				assert.Equal(t, tt.want, ids(got))
			}
		})
	}

	t.Run("roles do not mix", func(t *testing.T) {
		got, err := w.repo.Find(repositories.BookingFilter{Role: repositories.RoleOwner, UserID: w.booker.ID, State: models.StateAll, Now: now, Size: 10})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("paging", func(t *testing.T) {
		got, err := w.repo.Find(repositories.BookingFilter{Role: repositories.RoleBooker, UserID: w.booker.ID, State: models.StateAll, Now: now, Page: 1, Size: 3})
		require.NoError(t, err)
		assert.Equal(t, []int64{w.past.ID}, ids(got))
	})
}

func TestGORMBookingRepository_Decide(t *testing.T) {
	w := newBookingWorld(t)

	require.NoError(t, w.repo.Decide(w.waiting.ID, models.StatusRejected))
	got, err := w.repo.GetByID(w.waiting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, got.Status)

	err = w.repo.Decide(w.waiting.ID, models.StatusApproved)
	assert.ErrorIs(t, err, repositories.ErrBookingDecided)

	_, err = w.repo.GetByID(999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMBookingRepository_LastNextAndFinished(t *testing.T) {
	w := newBookingWorld(t)

	last, err := w.repo.LastApprovedByItems([]int64{w.item.ID}, now)
	require.NoError(t, err)
	require.Contains(t, last, w.item.ID)
	assert.Equal(t, w.current.ID, last[w.item.ID].ID)

	// The waiting booking starts later but is not approved.
	next, err := w.repo.NextApprovedByItems([]int64{w.item.ID}, now)
	require.NoError(t, err)
	require.Contains(t, next, w.item.ID)
	assert.Equal(t, w.future.ID, next[w.item.ID].ID)

	next, err = w.repo.NextApprovedByItems([]int64{w.item.ID}, now.Add(10*24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, next)

	finished, err := w.repo.HasFinishedApproved(w.booker.ID, w.item.ID, now)
	require.NoError(t, err)
	assert.True(t, finished)

	finished, err = w.repo.HasFinishedApproved(w.booker.ID, w.item.ID, now.Add(-3*24*time.Hour))
	require.NoError(t, err)
	assert.False(t, finished)

	finished, err = w.repo.HasFinishedApproved(w.owner.ID, w.item.ID, now)
	require.NoError(t, err)
	assert.False(t, finished)
}

func TestGORMBookingRepository_LastNextAcrossItems(t *testing.T) {
	w := newBookingWorld(t)
	items := repositories.NewGORMItemRepository(w.db)
	saw := createItem(t, items, w.owner.ID, "Saw", true)
	idle := createItem(t, items, w.owner.ID, "Ladder", true)

	day := 24 * time.Hour
	sawPast := &models.Booking{Start: now.Add(-5 * day), End: now.Add(-4 * day), Status: models.StatusApproved, BookerID: w.booker.ID, ItemID: saw.ID}
	sawRejected := &models.Booking{Start: now.Add(-2 * day), End: now.Add(-day), Status: models.StatusRejected, BookerID: w.booker.ID, ItemID: saw.ID}
	require.NoError(t, w.repo.Create(sawPast))
	require.NoError(t, w.repo.Create(sawRejected))

	itemIDs := []int64{w.item.ID, saw.ID, idle.ID}

	last, err := w.repo.LastApprovedByItems(itemIDs, now)
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, w.current.ID, last[w.item.ID].ID)
	assert.Equal(t, sawPast.ID, last[saw.ID].ID)
	assert.NotContains(t, last, idle.ID)

	next, err := w.repo.NextApprovedByItems(itemIDs, now)
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, w.future.ID, next[w.item.ID].ID)

	empty, err := w.repo.LastApprovedByItems(nil, now)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGORMBookingRepository_PostgresPagingQuery(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	repo := repositories.NewGORMBookingRepository(db)

	// from=15,size=10 is page 1, so the offset is 10 rather than 15.
	rows := sqlmock.NewRows([]string{"id", "start_date", "end_date", "status", "booker_id", "item_id"}).
		AddRow(7, now.Add(time.Hour), now.Add(2*time.Hour), "WAITING", 2, 10)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT bookings.* FROM "bookings" JOIN items ON items.id = bookings.item_id WHERE items.owner_id = $1 AND bookings.status = $2 ORDER BY bookings.start_date DESC LIMIT $3 OFFSET $4`)).
		WithArgs(int64(1), models.StatusWaiting, 10, 10).
		WillReturnRows(rows)

	got, err := repo.Find(repositories.BookingFilter{
		Role: repositories.RoleOwner, UserID: 1, State: models.StateWaiting, Now: now, Page: 1, Size: 10,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
