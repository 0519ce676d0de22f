package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"shareit/internal/models"
	"shareit/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var now = time.Date(2030, time.January, 10, 12, 0, 0, 0, time.UTC)

// newTestDB opens a private in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repositories.OpenDatabase("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, repo repositories.UserRepository, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@example.com"}
	require.NoError(t, repo.Create(user))
	return user
}

func createItem(t *testing.T, repo repositories.ItemRepository, ownerID int64, name string, available bool) *models.Item {
	t.Helper()
	item := &models.Item{Name: name, Description: name + " for rent", Available: available, OwnerID: ownerID}
	require.NoError(t, repo.Create(item))
	return item
}
