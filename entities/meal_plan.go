package entities

// MealPlan assigns a recipe to a (date, mealType) slot for a user. Date is
// stored as "2006-01-02" text. No uniqueness constraint exists on
// (userId, date, mealType), so a slot can hold multiple rows.
type MealPlan struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint   `gorm:"index" json:"user_id"`
	Date     string `json:"date"`
	MealType string `json:"meal_type"`
	RecipeID uint   `json:"recipe_id"`

	Timestamp
}
