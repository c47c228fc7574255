package recipe

import (
	"context"
	"testing"

	"cooktok/domain"
	"cooktok/entities"
	"cooktok/pkg/watch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRecipeTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Recipe{}))
	return db
}

func newTestRecipe(userID uint, title string) entities.Recipe {
	return entities.Recipe{
		UserID:      userID,
		Title:       title,
		Description: "a description",
		CookingTime: 25,
		Difficulty:  domain.DifficultyEasy,
		Ingredients: "flour\neggs",
		Steps:       "mix\nbake",
		Tags:        "quick,veggie",
	}
}

func TestAddRecipeAppearsInList(t *testing.T) {
	db := setupRecipeTestDB(t)
	notifier := watch.NewNotifier()
	service := NewRecipeService(NewRecipeRepository(db, notifier), notifier)
	ctx := context.Background()

	sub := service.Watch()
	defer sub.Close()

	id, err := service.AddRecipe(ctx, newTestRecipe(1, "Pancakes"))
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	// The live query signalled; a re-read sees the new row.
	require.Len(t, sub.C, 1)
	<-sub.C
	require.NoError(t, service.LoadRecipes(ctx))
	recipes := service.Recipes()
	require.Len(t, recipes, 1)
	assert.Equal(t, id, recipes[0].ID)
	assert.Equal(t, "Pancakes", recipes[0].Title)

	state := service.State()
	assert.True(t, state.AddRecipeSuccess)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.ErrorMessage)
}

func TestAddRecipeGeneratesDistinctIDs(t *testing.T) {
	db := setupRecipeTestDB(t)
	notifier := watch.NewNotifier()
	service := NewRecipeService(NewRecipeRepository(db, notifier), notifier)
	ctx := context.Background()

	first, err := service.AddRecipe(ctx, newTestRecipe(1, "Pancakes"))
	require.NoError(t, err)
	second, err := service.AddRecipe(ctx, newTestRecipe(1, "Waffles"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestResetAddRecipeState(t *testing.T) {
	db := setupRecipeTestDB(t)
	notifier := watch.NewNotifier()
	service := NewRecipeService(NewRecipeRepository(db, notifier), notifier)

	_, err := service.AddRecipe(context.Background(), newTestRecipe(1, "Soup"))
	require.NoError(t, err)
	require.True(t, service.State().AddRecipeSuccess)

	service.ResetAddRecipeState()
	assert.False(t, service.State().AddRecipeSuccess)
}

func TestLoadRecipesFailureSetsError(t *testing.T) {
	// No migration: the recipes table is missing, so reads fail.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	notifier := watch.NewNotifier()
	service := NewRecipeService(NewRecipeRepository(db, notifier), notifier)

	err = service.LoadRecipes(context.Background())
	require.Error(t, err)

	state := service.State()
	assert.NotEmpty(t, state.ErrorMessage)
	assert.False(t, state.IsLoading)
}

func TestUpdateRecipeFailureSetsError(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	notifier := watch.NewNotifier()
	service := NewRecipeService(NewRecipeRepository(db, notifier), notifier)

	ghost := newTestRecipe(1, "Ghost")
	ghost.ID = 1
	require.Error(t, service.UpdateRecipe(context.Background(), ghost))
	assert.NotEmpty(t, service.State().ErrorMessage)
}

func TestUpdateRecipeAbsentIDIsSilent(t *testing.T) {
	db := setupRecipeTestDB(t)
	notifier := watch.NewNotifier()
	service := NewRecipeService(NewRecipeRepository(db, notifier), notifier)
	ctx := context.Background()

	ghost := newTestRecipe(1, "Ghost")
	ghost.ID = 123
	assert.NoError(t, service.UpdateRecipe(ctx, ghost))

	require.NoError(t, service.LoadRecipes(ctx))
	assert.Empty(t, service.Recipes())
}

func TestDeleteRecipeRemovesRow(t *testing.T) {
	db := setupRecipeTestDB(t)
	notifier := watch.NewNotifier()
	service := NewRecipeService(NewRecipeRepository(db, notifier), notifier)
	ctx := context.Background()

	id, err := service.AddRecipe(ctx, newTestRecipe(1, "Stew"))
	require.NoError(t, err)

	require.NoError(t, service.DeleteRecipe(ctx, entities.Recipe{ID: id}))
	require.NoError(t, service.LoadRecipes(ctx))
	assert.Empty(t, service.Recipes())
}

func TestGetRecipeByIDAbsentIsNil(t *testing.T) {
	db := setupRecipeTestDB(t)
	notifier := watch.NewNotifier()
	repo := NewRecipeRepository(db, notifier)

	recipe, err := repo.GetRecipeByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, recipe)
}

func TestGetRecipesByCuisine(t *testing.T) {
	db := setupRecipeTestDB(t)
	notifier := watch.NewNotifier()
	repo := NewRecipeRepository(db, notifier)
	ctx := context.Background()

	italian := uint(1)
	withCuisine := newTestRecipe(1, "Carbonara")
	withCuisine.CuisineID = &italian
	_, err := repo.InsertRecipe(ctx, &withCuisine)
	require.NoError(t, err)

	plain := newTestRecipe(1, "Toast")
	_, err = repo.InsertRecipe(ctx, &plain)
	require.NoError(t, err)

	recipes, err := repo.GetRecipesByCuisine(ctx, italian)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Carbonara", recipes[0].Title)
}

func TestGetRecipesByUser(t *testing.T) {
	db := setupRecipeTestDB(t)
	notifier := watch.NewNotifier()
	repo := NewRecipeRepository(db, notifier)
	ctx := context.Background()

	_, err := repo.InsertRecipe(ctx, &entities.Recipe{UserID: 1, Title: "Mine"})
	require.NoError(t, err)
	_, err = repo.InsertRecipe(ctx, &entities.Recipe{UserID: 2, Title: "Theirs"})
	require.NoError(t, err)

	recipes, err := repo.GetRecipesByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Mine", recipes[0].Title)
}
