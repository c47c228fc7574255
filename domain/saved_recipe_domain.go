package domain

var (
	MessageSuccessGetSavedRecipes = "success get saved recipes"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessUnsaveRecipe    = "recipe removed from saved"

	MessageFailedGetSavedRecipes = "failed to get saved recipes"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedUnsaveRecipe    = "failed to remove saved recipe"
)

type (
	SaveRecipeRequest struct {
		RecipeID uint `json:"recipe_id" validate:"required"`
	}
)
