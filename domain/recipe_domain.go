package domain

import "errors"

var (
	MessageSuccessGetRecipes   = "success get recipes"
	MessageSuccessGetRecipe    = "success get recipe detail"
	MessageSuccessAddRecipe    = "recipe added successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"
	MessageSuccessUploadImage  = "image uploaded successfully"

	MessageFailedGetRecipes   = "failed to get recipes"
	MessageFailedGetRecipe    = "failed to get recipe detail"
	MessageFailedAddRecipe    = "failed to add recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedUploadImage  = "failed to upload image"

	ErrRecipeNotFound = errors.New("recipe not found")
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

type (
	AddRecipeRequest struct {
		Title       string  `json:"title" validate:"required"`
		Description string  `json:"description"`
		ImageURI    *string `json:"image_uri,omitempty"`
		CookingTime int     `json:"cooking_time" validate:"min=0"`
		Difficulty  string  `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
		CuisineID   *uint   `json:"cuisine_id,omitempty"`
		Ingredients string  `json:"ingredients"`
		Steps       string  `json:"steps"`
		Tags        string  `json:"tags"`
	}

	UpdateRecipeRequest struct {
		Title       string  `json:"title" validate:"required"`
		Description string  `json:"description"`
		ImageURI    *string `json:"image_uri,omitempty"`
		CookingTime int     `json:"cooking_time" validate:"min=0"`
		Difficulty  string  `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
		CuisineID   *uint   `json:"cuisine_id,omitempty"`
		Ingredients string  `json:"ingredients"`
		Steps       string  `json:"steps"`
		Tags        string  `json:"tags"`
	}

	RecipeResponse struct {
		ID          uint    `json:"id"`
		UserID      uint    `json:"user_id"`
		ImageURI    *string `json:"image_uri,omitempty"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		CookingTime int     `json:"cooking_time"`
		Difficulty  string  `json:"difficulty"`
		CuisineID   *uint   `json:"cuisine_id,omitempty"`
		Ingredients string  `json:"ingredients"`
		Steps       string  `json:"steps"`
		Tags        string  `json:"tags"`
	}

	UploadImageResponse struct {
		ImageURI string `json:"image_uri"`
	}
)
