package handlers

import (
	"strconv"

	"cooktok/domain"
	"cooktok/entities"
	"cooktok/internal/api/presenters"
	"cooktok/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		GetMealPlans(c *fiber.Ctx) error
		GetWeekPlan(c *fiber.Ctx) error
		AddMealPlan(c *fiber.Ctx) error
		UpdateMealPlan(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func mealPlanToResponse(m entities.MealPlan) domain.MealPlanResponse {
	return domain.MealPlanResponse{
		ID:       m.ID,
		UserID:   m.UserID,
		Date:     m.Date,
		MealType: m.MealType,
		RecipeID: m.RecipeID,
	}
}

// GetMealPlans returns the user's full plan, or a single day's rows when
// the date query parameter is present.
func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var (
		plans []entities.MealPlan
		err   error
	)
	if date := c.Query("date"); date != "" {
		plans, err = h.mealPlanService.MealPlansForDate(c.Context(), date, userID)
	} else {
		plans, err = h.mealPlanService.AllMealPlans(c.Context(), userID)
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealPlans, err)
	}

	res := make([]domain.MealPlanResponse, 0, len(plans))
	for _, m := range plans {
		res = append(res, mealPlanToResponse(m))
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) GetWeekPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	anchor := c.Query("date")

	week, err := h.mealPlanService.WeekPlan(c.Context(), userID, anchor)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWeekPlan, err)
	}

	return presenters.SuccessResponse(c, week, fiber.StatusOK, domain.MessageSuccessGetWeekPlan)
}

func (h *mealPlanHandler) AddMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	req := new(domain.AddMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealPlan, err)
	}

	// Zero-id sentinel: the store assigns a fresh identifier.
	newPlan := entities.MealPlan{
		UserID:   userID,
		Date:     req.Date,
		MealType: req.MealType,
		RecipeID: req.RecipeID,
	}
	id, err := h.mealPlanService.InsertMealPlan(c.Context(), newPlan)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealPlan, err)
	}

	newPlan.ID = id
	return presenters.SuccessResponse(c, mealPlanToResponse(newPlan), fiber.StatusCreated, domain.MessageSuccessAddMealPlan)
}

func (h *mealPlanHandler) UpdateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, err)
	}

	req := new(domain.UpdateMealPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, err)
	}

	updated := entities.MealPlan{
		ID:       uint(id),
		UserID:   userID,
		Date:     req.Date,
		MealType: req.MealType,
		RecipeID: req.RecipeID,
	}
	if err := h.mealPlanService.UpdateMealPlan(c.Context(), updated); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMealPlan)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMealPlan, err)
	}

	if err := h.mealPlanService.DeleteMealPlan(c.Context(), entities.MealPlan{ID: uint(id)}); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealPlan)
}
