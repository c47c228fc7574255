package cuisine

import (
	"context"
	"testing"

	"cooktok/entities"
	"cooktok/pkg/watch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCuisineTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Cuisine{}))
	return db
}

func TestCuisineAddUpdateDelete(t *testing.T) {
	db := setupCuisineTestDB(t)
	service := NewCuisineService(NewCuisineRepository(db, watch.NewNotifier()))
	ctx := context.Background()

	require.NoError(t, service.AddCuisine(ctx, "Italian"))
	cuisines := service.Cuisines()
	require.Len(t, cuisines, 1)
	assert.Equal(t, uint(1), cuisines[0].ID)
	assert.Equal(t, "Italian", cuisines[0].Name)

	updated := cuisines[0]
	updated.Name = "Italian Classic"
	require.NoError(t, service.UpdateCuisine(ctx, updated))
	cuisines = service.Cuisines()
	require.Len(t, cuisines, 1)
	assert.Equal(t, uint(1), cuisines[0].ID)
	assert.Equal(t, "Italian Classic", cuisines[0].Name)

	require.NoError(t, service.DeleteCuisine(ctx, cuisines[0]))
	assert.Empty(t, service.Cuisines())
}

func TestCuisineUpdateAbsentIDIsSilent(t *testing.T) {
	db := setupCuisineTestDB(t)
	repo := NewCuisineRepository(db, watch.NewNotifier())
	ctx := context.Background()

	err := repo.UpdateCuisine(ctx, &entities.Cuisine{ID: 99, Name: "Ghost"})
	assert.NoError(t, err)

	cuisines, err := repo.GetAllCuisines(ctx)
	require.NoError(t, err)
	assert.Empty(t, cuisines)
}

func TestCuisineNamesNotUnique(t *testing.T) {
	db := setupCuisineTestDB(t)
	service := NewCuisineService(NewCuisineRepository(db, watch.NewNotifier()))
	ctx := context.Background()

	require.NoError(t, service.AddCuisine(ctx, "Thai"))
	require.NoError(t, service.AddCuisine(ctx, "Thai"))
	assert.Len(t, service.Cuisines(), 2)
}

func TestCuisineMutationPublishesChange(t *testing.T) {
	db := setupCuisineTestDB(t)
	notifier := watch.NewNotifier()
	repo := NewCuisineRepository(db, notifier)

	sub := notifier.Subscribe("cuisines")
	defer sub.Close()

	require.NoError(t, repo.InsertCuisine(context.Background(), &entities.Cuisine{Name: "Greek"}))
	assert.Len(t, sub.C, 1)
}
