package domain

import "errors"

var (
	MessageSuccessGetMealPlans   = "success get meal plans"
	MessageSuccessAddMealPlan    = "meal plan added successfully"
	MessageSuccessUpdateMealPlan = "meal plan updated successfully"
	MessageSuccessDeleteMealPlan = "meal plan deleted successfully"
	MessageSuccessGetWeekPlan    = "success get week plan"

	MessageFailedGetMealPlans   = "failed to get meal plans"
	MessageFailedAddMealPlan    = "failed to add meal plan"
	MessageFailedUpdateMealPlan = "failed to update meal plan"
	MessageFailedDeleteMealPlan = "failed to delete meal plan"
	MessageFailedGetWeekPlan    = "failed to get week plan"

	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

const (
	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeDinner    = "Dinner"
	MealTypeSnack     = "Snack"
)

// MealTypes in display order, matching the planner's slot layout.
var MealTypes = []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

type (
	AddMealPlanRequest struct {
		Date     string `json:"date" validate:"required"`
		MealType string `json:"meal_type" validate:"required,oneof=Breakfast Lunch Dinner Snack"`
		RecipeID uint   `json:"recipe_id" validate:"required"`
	}

	UpdateMealPlanRequest struct {
		Date     string `json:"date" validate:"required"`
		MealType string `json:"meal_type" validate:"required,oneof=Breakfast Lunch Dinner Snack"`
		RecipeID uint   `json:"recipe_id" validate:"required"`
	}

	MealPlanResponse struct {
		ID       uint   `json:"id"`
		UserID   uint   `json:"user_id"`
		Date     string `json:"date"`
		MealType string `json:"meal_type"`
		RecipeID uint   `json:"recipe_id"`
	}

	// WeekDayPlan groups one day's assignments by meal type. Slots with no
	// assignment map to an empty list.
	WeekDayPlan struct {
		Date  string                        `json:"date"`
		Slots map[string][]MealPlanResponse `json:"slots"`
	}

	WeekPlanResponse struct {
		Days []WeekDayPlan `json:"days"`
	}
)
