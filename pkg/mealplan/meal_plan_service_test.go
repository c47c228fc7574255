package mealplan

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

func setupMealPlanTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.MealPlan{}))
	return db
}

func newMealPlanService(t *testing.T) MealPlanService {
	notifier := watch.NewNotifier()
	return NewMealPlanService(NewMealPlanRepository(setupMealPlanTestDB(t), notifier), notifier)
}

func TestInsertThenQueryByDate(t *testing.T) {
	service := newMealPlanService(t)
	ctx := context.Background()

	id, err := service.InsertMealPlan(ctx, entities.MealPlan{
		UserID:   1,
		Date:     "2026-08-24",
		MealType: domain.MealTypeDinner,
		RecipeID: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	plans, err := service.MealPlansForDate(ctx, "2026-08-24", 1)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, id, plans[0].ID)
	assert.Equal(t, domain.MealTypeDinner, plans[0].MealType)
	assert.Equal(t, uint(7), plans[0].RecipeID)

	// Other dates and other users see nothing.
	plans, err = service.MealPlansForDate(ctx, "2026-08-25", 1)
	require.NoError(t, err)
	assert.Empty(t, plans)
	plans, err = service.MealPlansForDate(ctx, "2026-08-24", 2)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestSameSlotStacksRows(t *testing.T) {
	service := newMealPlanService(t)
	ctx := context.Background()

	_, err := service.InsertMealPlan(ctx, entities.MealPlan{UserID: 1, Date: "2026-08-24", MealType: domain.MealTypeLunch, RecipeID: 1})
	require.NoError(t, err)
	_, err = service.InsertMealPlan(ctx, entities.MealPlan{UserID: 1, Date: "2026-08-24", MealType: domain.MealTypeLunch, RecipeID: 2})
	require.NoError(t, err)

	// No uniqueness on (userId, date, mealType): both rows survive.
	plans, err := service.MealPlansForDate(ctx, "2026-08-24", 1)
	require.NoError(t, err)
	assert.Len(t, plans, 2)
}

func TestAllMealPlansOrderedByDate(t *testing.T) {
	service := newMealPlanService(t)
	ctx := context.Background()

	_, err := service.InsertMealPlan(ctx, entities.MealPlan{UserID: 1, Date: "2026-08-26", MealType: domain.MealTypeDinner, RecipeID: 1})
	require.NoError(t, err)
	_, err = service.InsertMealPlan(ctx, entities.MealPlan{UserID: 1, Date: "2026-08-24", MealType: domain.MealTypeBreakfast, RecipeID: 2})
	require.NoError(t, err)

	plans, err := service.AllMealPlans(ctx, 1)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "2026-08-24", plans[0].Date)
	assert.Equal(t, "2026-08-26", plans[1].Date)
}

func TestUpdateAbsentIDIsSilent(t *testing.T) {
	service := newMealPlanService(t)
	ctx := context.Background()

	err := service.UpdateMealPlan(ctx, entities.MealPlan{ID: 9, UserID: 1, Date: "2026-08-24", MealType: domain.MealTypeSnack, RecipeID: 3})
	assert.NoError(t, err)

	plans, err := service.AllMealPlans(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestDeleteMealPlan(t *testing.T) {
	service := newMealPlanService(t)
	ctx := context.Background()

	id, err := service.InsertMealPlan(ctx, entities.MealPlan{UserID: 1, Date: "2026-08-24", MealType: domain.MealTypeDinner, RecipeID: 1})
	require.NoError(t, err)

	require.NoError(t, service.DeleteMealPlan(ctx, entities.MealPlan{ID: id}))
	plans, err := service.AllMealPlans(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestInsertRejectsMalformedDate(t *testing.T) {
	service := newMealPlanService(t)

	_, err := service.InsertMealPlan(context.Background(), entities.MealPlan{UserID: 1, Date: "24/08/2026", MealType: domain.MealTypeDinner, RecipeID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestWeekPlanGroupsByDayAndMealType(t *testing.T) {
	service := newMealPlanService(t)
	ctx := context.Background()

	// 2026-08-26 is a Wednesday; its week runs Mon 24th through Sun 30th.
	_, err := service.InsertMealPlan(ctx, entities.MealPlan{UserID: 1, Date: "2026-08-24", MealType: domain.MealTypeBreakfast, RecipeID: 1})
	require.NoError(t, err)
	_, err = service.InsertMealPlan(ctx, entities.MealPlan{UserID: 1, Date: "2026-08-24", MealType: domain.MealTypeDinner, RecipeID: 2})
	require.NoError(t, err)
	_, err = service.InsertMealPlan(ctx, entities.MealPlan{UserID: 1, Date: "2026-08-30", MealType: domain.MealTypeSnack, RecipeID: 3})
	require.NoError(t, err)
	// Outside the week, must not appear.
	_, err = service.InsertMealPlan(ctx, entities.MealPlan{UserID: 1, Date: "2026-08-31", MealType: domain.MealTypeLunch, RecipeID: 4})
	require.NoError(t, err)

	week, err := service.WeekPlan(ctx, 1, "2026-08-26")
	require.NoError(t, err)
	require.Len(t, week.Days, 7)
	assert.Equal(t, "2026-08-24", week.Days[0].Date)
	assert.Equal(t, "2026-08-30", week.Days[6].Date)

	monday := week.Days[0]
	require.Len(t, monday.Slots[domain.MealTypeBreakfast], 1)
	assert.Equal(t, uint(1), monday.Slots[domain.MealTypeBreakfast][0].RecipeID)
	require.Len(t, monday.Slots[domain.MealTypeDinner], 1)
	assert.Equal(t, uint(2), monday.Slots[domain.MealTypeDinner][0].RecipeID)
	assert.Empty(t, monday.Slots[domain.MealTypeLunch])

	sunday := week.Days[6]
	require.Len(t, sunday.Slots[domain.MealTypeSnack], 1)
	assert.Equal(t, uint(3), sunday.Slots[domain.MealTypeSnack][0].RecipeID)

	for _, dayPlan := range week.Days[1:6] {
		for _, mealType := range domain.MealTypes {
			assert.Empty(t, dayPlan.Slots[mealType])
		}
	}
}

func TestWatchSignalsOnMutation(t *testing.T) {
	notifier := watch.NewNotifier()
	service := NewMealPlanService(NewMealPlanRepository(setupMealPlanTestDB(t), notifier), notifier)

	sub := service.Watch()
	defer sub.Close()

	_, err := service.InsertMealPlan(context.Background(), entities.MealPlan{UserID: 1, Date: "2026-08-24", MealType: domain.MealTypeDinner, RecipeID: 1})
	require.NoError(t, err)
	assert.Len(t, sub.C, 1)
}
