package handlers

import (
	"strconv"

	"cooktok/domain"
	"cooktok/entities"
	"cooktok/internal/api/presenters"
	"cooktok/pkg/cuisine"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CuisineHandler interface {
		GetCuisines(c *fiber.Ctx) error
		AddCuisine(c *fiber.Ctx) error
		UpdateCuisine(c *fiber.Ctx) error
		DeleteCuisine(c *fiber.Ctx) error
	}

	cuisineHandler struct {
		cuisineService cuisine.CuisineService
		validator      *validator.Validate
	}
)

func NewCuisineHandler(cuisineService cuisine.CuisineService, validator *validator.Validate) CuisineHandler {
	return &cuisineHandler{
		cuisineService: cuisineService,
		validator:      validator,
	}
}

func (h *cuisineHandler) GetCuisines(c *fiber.Ctx) error {
	if err := h.cuisineService.LoadCuisines(c.Context()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCuisines, err)
	}

	cuisines := h.cuisineService.Cuisines()
	res := make([]domain.CuisineResponse, 0, len(cuisines))
	for _, item := range cuisines {
		res = append(res, domain.CuisineResponse{ID: item.ID, Name: item.Name})
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCuisines)
}

func (h *cuisineHandler) AddCuisine(c *fiber.Ctx) error {
	req := new(domain.AddCuisineRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCuisine, err)
	}

	if err := h.cuisineService.AddCuisine(c.Context(), req.Name); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCuisine, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddCuisine)
}

func (h *cuisineHandler) UpdateCuisine(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCuisine, err)
	}

	req := new(domain.UpdateCuisineRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCuisine, err)
	}

	updated := entities.Cuisine{ID: uint(id), Name: req.Name}
	if err := h.cuisineService.UpdateCuisine(c.Context(), updated); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCuisine, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCuisine)
}

func (h *cuisineHandler) DeleteCuisine(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCuisine, err)
	}

	if err := h.cuisineService.DeleteCuisine(c.Context(), entities.Cuisine{ID: uint(id)}); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCuisine, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCuisine)
}
