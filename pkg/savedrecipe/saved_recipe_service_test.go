package savedrecipe

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

func setupSavedRecipeTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Recipe{}, &entities.SavedRecipe{}))
	return db
}

func seedUserAndRecipe(t *testing.T, db *gorm.DB, title string) (uint, uint) {
	user := entities.User{DisplayName: "Ann", Email: "ann@x.com", Password: "pw"}
	require.NoError(t, db.Create(&user).Error)
	recipe := entities.Recipe{UserID: user.ID, Title: title}
	require.NoError(t, db.Create(&recipe).Error)
	return user.ID, recipe.ID
}

func TestSaveThenUnsaveRecipe(t *testing.T) {
	db := setupSavedRecipeTestDB(t)
	notifier := watch.NewNotifier()
	service := NewSavedRecipeService(NewSavedRecipeRepository(db, notifier), notifier)
	ctx := context.Background()

	userID, recipeID := seedUserAndRecipe(t, db, "Pancakes")

	require.NoError(t, service.SaveRecipe(ctx, userID, recipeID))
	require.NoError(t, service.LoadSavedRecipes(ctx, userID))
	saved := service.SavedRecipes()
	require.Len(t, saved, 1)
	assert.Equal(t, recipeID, saved[0].ID)

	require.NoError(t, service.UnsaveRecipe(ctx, userID, recipeID))
	require.NoError(t, service.LoadSavedRecipes(ctx, userID))
	assert.Empty(t, service.SavedRecipes())
}

func TestDuplicateSavesStack(t *testing.T) {
	db := setupSavedRecipeTestDB(t)
	notifier := watch.NewNotifier()
	service := NewSavedRecipeService(NewSavedRecipeRepository(db, notifier), notifier)
	ctx := context.Background()

	userID, recipeID := seedUserAndRecipe(t, db, "Pancakes")

	require.NoError(t, service.SaveRecipe(ctx, userID, recipeID))
	require.NoError(t, service.SaveRecipe(ctx, userID, recipeID))

	require.NoError(t, service.LoadSavedRecipes(ctx, userID))
	assert.Len(t, service.SavedRecipes(), 2)

	// One unsave removes one of the duplicates, not both.
	require.NoError(t, service.UnsaveRecipe(ctx, userID, recipeID))
	require.NoError(t, service.LoadSavedRecipes(ctx, userID))
	assert.Len(t, service.SavedRecipes(), 1)
}

func TestUnsaveMissingPairIsNoop(t *testing.T) {
	db := setupSavedRecipeTestDB(t)
	notifier := watch.NewNotifier()
	service := NewSavedRecipeService(NewSavedRecipeRepository(db, notifier), notifier)

	assert.NoError(t, service.UnsaveRecipe(context.Background(), 1, 99))
}

func TestSavedRecipesForBypassesSharedSnapshot(t *testing.T) {
	db := setupSavedRecipeTestDB(t)
	notifier := watch.NewNotifier()
	service := NewSavedRecipeService(NewSavedRecipeRepository(db, notifier), notifier)
	ctx := context.Background()

	annID, annRecipeID := seedUserAndRecipe(t, db, "Pancakes")
	bob := entities.User{DisplayName: "Bob", Email: "bob@x.com", Password: "pw"}
	require.NoError(t, db.Create(&bob).Error)
	bobRecipe := entities.Recipe{UserID: bob.ID, Title: "Stew"}
	require.NoError(t, db.Create(&bobRecipe).Error)

	require.NoError(t, service.SaveRecipe(ctx, annID, annRecipeID))
	require.NoError(t, service.SaveRecipe(ctx, bob.ID, bobRecipe.ID))

	// Another caller loading Bob's snapshot must not leak into Ann's
	// per-user read.
	require.NoError(t, service.LoadSavedRecipes(ctx, bob.ID))
	annSaved, err := service.SavedRecipesFor(ctx, annID)
	require.NoError(t, err)
	require.Len(t, annSaved, 1)
	assert.Equal(t, annRecipeID, annSaved[0].ID)
	assert.Equal(t, "Pancakes", annSaved[0].Title)
}

func TestSavedListScopedToUser(t *testing.T) {
	db := setupSavedRecipeTestDB(t)
	notifier := watch.NewNotifier()
	repo := NewSavedRecipeRepository(db, notifier)
	ctx := context.Background()

	annID, recipeID := seedUserAndRecipe(t, db, "Pancakes")
	bob := entities.User{DisplayName: "Bob", Email: "bob@x.com", Password: "pw"}
	require.NoError(t, db.Create(&bob).Error)

	require.NoError(t, repo.SaveRecipe(ctx, annID, recipeID))

	saved, err := repo.GetSavedRecipes(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestWatchSignalsOnSaveAndOnRecipeChange(t *testing.T) {
	db := setupSavedRecipeTestDB(t)
	notifier := watch.NewNotifier()
	service := NewSavedRecipeService(NewSavedRecipeRepository(db, notifier), notifier)
	ctx := context.Background()

	userID, recipeID := seedUserAndRecipe(t, db, "Pancakes")

	sub := service.Watch()
	defer sub.Close()

	require.NoError(t, service.SaveRecipe(ctx, userID, recipeID))
	assert.Len(t, sub.C, 1)
	<-sub.C

	// An edit to the underlying recipe table re-signals the join watcher.
	notifier.Publish("recipes")
	assert.Len(t, sub.C, 1)
}
