package repositories

import (
	"testing"
	"time"

	"gin-todo/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupItemRepository(t *testing.T) IItemRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))
	return NewItemRepository(db)
}

func newItem(t *testing.T, repo IItemRepository, name string, userID string) *models.Item {
	t.Helper()
	now := time.Now()
	item := &models.Item{
		ID:        uuid.NewString(),
		Name:      name,
		Completed: false,
		UserID:    &userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(item))
	return item
}

func TestFindByUserScoping(t *testing.T) {
	repo := setupItemRepository(t)

	itemA := newItem(t, repo, "buy milk", "user-a")
	newItem(t, repo, "walk dog", "user-b")

	items, err := repo.FindByUser("user-a")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, itemA.ID, items[0].ID)

	items, err = repo.FindByUser("user-c")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateScopedToOwner(t *testing.T) {
	repo := setupItemRepository(t)
	item := newItem(t, repo, "buy milk", "user-a")

	// 他人のアイテムは更新できない
	err := repo.Update(item.ID, "user-b", map[string]interface{}{"completed": true})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	unchanged, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.False(t, unchanged.Completed)

	err = repo.Update(item.ID, "user-a", map[string]interface{}{
		"name":      "buy oat milk",
		"completed": true,
	})
	require.NoError(t, err)

	updated, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", updated.Name)
	assert.True(t, updated.Completed)
}

func TestDeleteScopedToOwner(t *testing.T) {
	repo := setupItemRepository(t)
	item := newItem(t, repo, "buy milk", "user-a")

	err := repo.Delete(item.ID, "user-b")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindByID(item.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(item.ID, "user-a"))

	_, err = repo.FindByID(item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMissingItem(t *testing.T) {
	repo := setupItemRepository(t)

	err := repo.Delete(uuid.NewString(), "user-a")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
