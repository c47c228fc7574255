package entities

// SavedRecipe is a join row between User and Recipe. Unlike the other
// tables it does get cascade-delete foreign keys. (userId, recipeId) is
// not unique, so repeated saves produce duplicate rows.
type SavedRecipe struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint `gorm:"index" json:"user_id"`
	RecipeID uint `gorm:"index" json:"recipe_id"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`

	Timestamp
}
