// Package handler contains the HTTP handlers for the store API.
package handler

import (
	"log/slog"
	"net/http"

	"recyclemart/internal/delivery/api/middleware"
	"recyclemart/internal/delivery/api/response"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	UserUC    usecase.UserUsecase
	Logger    *slog.Logger
}

// AuthHandler handles signup and the login session.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	userUC    usecase.UserUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		userUC:    params.UserUC,
		logger:    params.Logger,
	}
}

// SignupRequest represents the request body for customer signup
type SignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup registers a new customer account.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	user, err := h.userUC.Signup(c.Request().Context(), usecase.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// Login verifies the credentials and opens the session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	user, err := h.sessionUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// Logout closes the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// Me returns the logged-in user.
func (h *AuthHandler) Me(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), actor.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
