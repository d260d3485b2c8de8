package services

import (
	"testing"
	"time"

	"github.com/sankalpa008/lost-and-found/apperrors"
	"github.com/sankalpa008/lost-and-found/dto"
	"github.com/sankalpa008/lost-and-found/models"
	"github.com/sankalpa008/lost-and-found/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newItemService(db *gorm.DB) IItemService {
	return NewItemService(repositories.NewItemRepository(db), nil)
}

func createTestItem(t *testing.T, service IItemService, owner *models.User) *models.Item {
	t.Helper()

	item, err := service.Create(dto.CreateItemInput{
		Title:         "Water bottle",
		Description:   "Blue steel bottle with stickers",
		Category:      models.CategoryOther,
		Status:        models.StatusLost,
		Location:      "Lecture hall B",
		ContactNumber: "555-0101",
	}, owner.ID)
	require.NoError(t, err)
	return item
}

func TestItemCreateIsOwnedByCreator(t *testing.T) {
	db := setupTestDB(t)
	service := newItemService(db)
	owner := createTestUser(t, db, "owner@example.edu", models.RoleStudent)

	item := createTestItem(t, service, owner)

	assert.Equal(t, owner.ID, item.UserID)
	assert.False(t, item.IsResolved)
}

func TestItemUpdateByOwner(t *testing.T) {
	db := setupTestDB(t)
	service := newItemService(db)
	owner := createTestUser(t, db, "owner@example.edu", models.RoleStudent)
	item := createTestItem(t, service, owner)

	newTitle := "Blue water bottle"
	newStatus := models.StatusFound
	updated, err := service.Update(item.ID, owner, dto.UpdateItemInput{
		Title:  &newTitle,
		Status: &newStatus,
	})
	require.NoError(t, err)

	assert.Equal(t, "Blue water bottle", updated.Title)
	assert.Equal(t, models.StatusFound, updated.Status)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Lecture hall B", updated.Location)
}

func TestItemMutationsByNonOwnerFailUnmodified(t *testing.T) {
	db := setupTestDB(t)
	service := newItemService(db)
	owner := createTestUser(t, db, "owner@example.edu", models.RoleStudent)
	stranger := createTestUser(t, db, "stranger@example.edu", models.RoleStudent)
	item := createTestItem(t, service, owner)

	newTitle := "Hijacked"
	_, err := service.Update(item.ID, stranger, dto.UpdateItemInput{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	err = service.Delete(item.ID, stranger)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = service.SetResolved(item.ID, stranger, true)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// The record is untouched by any of the rejected mutations.
	fresh, err := service.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Water bottle", fresh.Title)
	assert.False(t, fresh.IsResolved)
}

func TestItemMutationsByAdminSucceed(t *testing.T) {
	db := setupTestDB(t)
	service := newItemService(db)
	owner := createTestUser(t, db, "owner@example.edu", models.RoleStudent)
	admin := createTestUser(t, db, "admin@example.edu", models.RoleAdmin)
	item := createTestItem(t, service, owner)

	newTitle := "Relabeled by staff"
	updated, err := service.Update(item.ID, admin, dto.UpdateItemInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Relabeled by staff", updated.Title)

	resolved, err := service.SetResolved(item.ID, admin, true)
	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)

	require.NoError(t, service.Delete(item.ID, admin))

	_, err = service.FindByID(item.ID)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
}

func TestItemResolveIsIndependentOfStatus(t *testing.T) {
	db := setupTestDB(t)
	service := newItemService(db)
	owner := createTestUser(t, db, "owner@example.edu", models.RoleStudent)
	item := createTestItem(t, service, owner)

	resolved, err := service.SetResolved(item.ID, owner, true)
	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)
	assert.Equal(t, models.StatusLost, resolved.Status)

	unresolved, err := service.SetResolved(item.ID, owner, false)
	require.NoError(t, err)
	assert.False(t, unresolved.IsResolved)
}

func TestItemMutationOnMissingItemIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newItemService(db)
	user := createTestUser(t, db, "owner@example.edu", models.RoleStudent)

	// Not-found is reported before the ownership check; a vanished
	// row never surfaces as an internal fault.
	newTitle := "Nothing"
	_, err := service.Update(999, user, dto.UpdateItemInput{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)

	err = service.Delete(999, user)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)

	_, err = service.SetResolved(999, user, true)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
}

func TestItemSearchOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repository := repositories.NewItemRepository(db)
	service := NewItemService(repository, nil)
	owner := createTestUser(t, db, "owner@example.edu", models.RoleStudent)

	now := time.Now()
	older := models.Item{Title: "Older", Description: "d", Category: models.CategoryOther, Status: models.StatusLost, Location: "l", ContactNumber: "c", UserID: owner.ID}
	older.CreatedAt = now.Add(-time.Hour)
	newer := models.Item{Title: "Newer", Description: "d", Category: models.CategoryOther, Status: models.StatusLost, Location: "l", ContactNumber: "c", UserID: owner.ID}
	newer.CreatedAt = now
	require.NoError(t, repository.Create(&older))
	require.NoError(t, repository.Create(&newer))

	items, err := service.Search(dto.ItemFilter{})
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Newer", items[0].Title)
	assert.Equal(t, "Older", items[1].Title)
}

// Scenario: student A owns an item, student C cannot delete it, admin
// B can.
func TestItemLifecycleScenario(t *testing.T) {
	db := setupTestDB(t)
	service := newItemService(db)
	userA := createTestUser(t, db, "a@example.edu", models.RoleStudent)
	adminB := createTestUser(t, db, "b@example.edu", models.RoleAdmin)
	userC := createTestUser(t, db, "c@example.edu", models.RoleStudent)

	itemX := createTestItem(t, service, userA)
	assert.Equal(t, models.StatusLost, itemX.Status)
	assert.False(t, itemX.IsResolved)

	resolved, err := service.SetResolved(itemX.ID, userA, true)
	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)

	err = service.Delete(itemX.ID, userC)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	_, err = service.FindByID(itemX.ID)
	require.NoError(t, err)

	require.NoError(t, service.Delete(itemX.ID, adminB))
	_, err = service.FindByID(itemX.ID)
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
}
