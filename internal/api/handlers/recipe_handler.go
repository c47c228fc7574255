package handlers

import (
	"path/filepath"
	"strconv"

	"cooktok/domain"
	"cooktok/entities"
	"cooktok/internal/api/presenters"
	"cooktok/internal/utils/storage"
	"cooktok/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		mediaStorage  storage.MediaStorage
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, mediaStorage storage.MediaStorage, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		mediaStorage:  mediaStorage,
		validator:     validator,
	}
}

func recipeToResponse(r entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ImageURI:    r.ImageURI,
		Title:       r.Title,
		Description: r.Description,
		CookingTime: r.CookingTime,
		Difficulty:  r.Difficulty,
		CuisineID:   r.CuisineID,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		Tags:        r.Tags,
	}
}

// GetRecipes returns every recipe, or the subset for a cuisine or user
// when the matching query parameter is present.
func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	var (
		recipes []entities.Recipe
		err     error
	)

	switch {
	case c.Query("cuisine_id") != "":
		var cuisineID uint64
		cuisineID, err = strconv.ParseUint(c.Query("cuisine_id"), 10, 32)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
		}
		recipes, err = h.recipeService.GetRecipesByCuisine(c.Context(), uint(cuisineID))
	case c.Query("user_id") != "":
		var userID uint64
		userID, err = strconv.ParseUint(c.Query("user_id"), 10, 32)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
		}
		recipes, err = h.recipeService.GetRecipesByUser(c.Context(), uint(userID))
	default:
		if err = h.recipeService.LoadRecipes(c.Context()); err == nil {
			recipes = h.recipeService.Recipes()
		}
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, recipeToResponse(r))
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, err)
	}

	found, err := h.recipeService.GetRecipeByID(c.Context(), uint(id))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipe, err)
	}
	if found == nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipe, domain.ErrRecipeNotFound)
	}

	return presenters.SuccessResponse(c, recipeToResponse(*found), fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *recipeHandler) AddRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	req := new(domain.AddRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipe, err)
	}

	newRecipe := entities.Recipe{
		UserID:      userID,
		ImageURI:    req.ImageURI,
		Title:       req.Title,
		Description: req.Description,
		CookingTime: req.CookingTime,
		Difficulty:  req.Difficulty,
		CuisineID:   req.CuisineID,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Tags:        req.Tags,
	}

	id, err := h.recipeService.AddRecipe(c.Context(), newRecipe)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipe, err)
	}
	h.recipeService.ResetAddRecipeState()

	newRecipe.ID = id
	return presenters.SuccessResponse(c, recipeToResponse(newRecipe), fiber.StatusCreated, domain.MessageSuccessAddRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	req := new(domain.UpdateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	updated := entities.Recipe{
		ID:          uint(id),
		UserID:      userID,
		ImageURI:    req.ImageURI,
		Title:       req.Title,
		Description: req.Description,
		CookingTime: req.CookingTime,
		Difficulty:  req.Difficulty,
		CuisineID:   req.CuisineID,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Tags:        req.Tags,
	}

	if err := h.recipeService.UpdateRecipe(c.Context(), updated); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), entities.Recipe{ID: uint(id)}); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

// UploadRecipeImage persists a picked image and returns the URI the
// client stores on the recipe.
func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	filename := "recipe_" + uuid.New().String() + ext

	uri, err := h.mediaStorage.PersistImage(c.Context(), filename, file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	res := domain.UploadImageResponse{ImageURI: uri}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
