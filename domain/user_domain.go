package domain

import "errors"

var (
	MessageSuccessRegister = "account created successfully"
	MessageSuccessLogin    = "login success"
	MessageSuccessGetMe    = "success get current user"

	MessageFailedRegister = "failed to create account"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetMe    = "failed to get current user"

	// User-facing auth errors. The wording is part of the contract the
	// screens display verbatim.
	ErrCredentialsRequired = errors.New("Please enter both email and password")
	ErrFieldsRequired      = errors.New("Please fill all fields")
	ErrInvalidCredentials  = errors.New("Invalid email or password")
	ErrCreateAccount       = errors.New("Failed to create account")
	ErrUserNotFound        = errors.New("user not found")
)

type (
	SignupRequest struct {
		DisplayName string `json:"display_name" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID          uint   `json:"id"`
		DisplayName string `json:"display_name"`
		Email       string `json:"email"`
	}

	AuthResponse struct {
		User  UserResponse `json:"user"`
		Token string       `json:"token"`
	}
)
