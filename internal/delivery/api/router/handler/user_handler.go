package handler

import (
	"log/slog"
	"net/http"

	"recyclemart/internal/delivery/api/middleware"
	"recyclemart/internal/delivery/api/response"
	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler handles profiles, points and notifications.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// AwardPointsRequest represents the request body for a points adjustment
type AwardPointsRequest struct {
	Delta int `json:"delta"`
}

// GetProfile returns the caller's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
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

// GetUser returns any user's profile (admin).
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetProfile(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile merges the supplied fields into the caller's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var update entity.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ChangePassword rotates the caller's password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err.Error())
	}

	err := h.userUC.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

// ListUsers returns every account (admin).
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// AwardPoints adjusts a user's points balance (admin).
func (h *UserHandler) AwardPoints(c echo.Context) error {
	var req AwardPointsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid points input")
	}

	points, err := h.userUC.AwardPoints(c.Request().Context(), c.Param("email"), req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"points": points})
}

// ListNotifications returns the caller's notifications.
func (h *UserHandler) ListNotifications(c echo.Context) error {
	notifications, err := h.userUC.ListNotifications(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// MarkNotificationsRead marks every caller notification as read.
func (h *UserHandler) MarkNotificationsRead(c echo.Context) error {
	marked, err := h.userUC.MarkNotificationsRead(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"marked": marked})
}
