package handlers

import (
	"cooktok/domain"
	"cooktok/internal/api/presenters"
	"cooktok/pkg/jwt"
	"cooktok/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	userHandler struct {
		authService user.AuthService
		validator   *validator.Validate
		jwtService  jwt.JWTService
	}
)

func NewUserHandler(authService user.AuthService, validator *validator.Validate, jwtService jwt.JWTService) UserHandler {
	return &userHandler{
		authService: authService,
		validator:   validator,
		jwtService:  jwtService,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.SignupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	created, err := h.authService.Signup(c.Context(), req.DisplayName, req.Email, req.Password)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res := domain.AuthResponse{
		User: domain.UserResponse{
			ID:          created.ID,
			DisplayName: created.DisplayName,
			Email:       created.Email,
		},
		Token: h.jwtService.GenerateTokenUser(created.ID),
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	loggedIn, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
	}

	res := domain.AuthResponse{
		User: domain.UserResponse{
			ID:          loggedIn.ID,
			DisplayName: loggedIn.DisplayName,
			Email:       loggedIn.Email,
		},
		Token: h.jwtService.GenerateTokenUser(loggedIn.ID),
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	current, err := h.authService.Resume(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMe, err)
	}
	if current == nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMe, domain.ErrUserNotFound)
	}

	res := domain.UserResponse{
		ID:          current.ID,
		DisplayName: current.DisplayName,
		Email:       current.Email,
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMe)
}
