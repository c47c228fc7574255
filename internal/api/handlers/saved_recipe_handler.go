package handlers

import (
	"strconv"

	"cooktok/domain"
	"cooktok/internal/api/presenters"
	"cooktok/pkg/savedrecipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SavedRecipeHandler interface {
		GetSavedRecipes(c *fiber.Ctx) error
		SaveRecipe(c *fiber.Ctx) error
		UnsaveRecipe(c *fiber.Ctx) error
	}

	savedRecipeHandler struct {
		savedRecipeService savedrecipe.SavedRecipeService
		validator          *validator.Validate
	}
)

func NewSavedRecipeHandler(savedRecipeService savedrecipe.SavedRecipeService, validator *validator.Validate) SavedRecipeHandler {
	return &savedRecipeHandler{
		savedRecipeService: savedRecipeService,
		validator:          validator,
	}
}

func (h *savedRecipeHandler) GetSavedRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	saved, err := h.savedRecipeService.SavedRecipesFor(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSavedRecipes, err)
	}
	res := make([]domain.RecipeResponse, 0, len(saved))
	for _, r := range saved {
		res = append(res, recipeToResponse(r))
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSavedRecipes)
}

func (h *savedRecipeHandler) SaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	if err := h.savedRecipeService.SaveRecipe(c.Context(), userID, req.RecipeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSaveRecipe)
}

func (h *savedRecipeHandler) UnsaveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	recipeID, err := strconv.ParseUint(c.Params("recipeId"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnsaveRecipe, err)
	}

	if err := h.savedRecipeService.UnsaveRecipe(c.Context(), userID, uint(recipeID)); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnsaveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsaveRecipe)
}
