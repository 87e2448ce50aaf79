package delivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/minhtran/phimhub/internal/domain/users"
	"github.com/minhtran/phimhub/pkg/jwt"
	"github.com/minhtran/phimhub/pkg/middleware"
	"github.com/minhtran/phimhub/pkg/response"
	"github.com/rs/zerolog"
)

type UserUsecase interface {
	Register(ctx context.Context, payload users.RegisterRequest) (*users.RegisterResponse, error)
	Login(ctx context.Context, payload users.LoginRequest) (*users.LoginResponse, error)
	GetProfile(ctx context.Context, userExtID string) (*users.Profile, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*users.RefreshResponse, error)
}

type UserHandler struct {
	ctx     context.Context
	usecase UserUsecase
}

func NewUserHandler(ctx context.Context, usecase UserUsecase) *UserHandler {
	return &UserHandler{
		ctx:     ctx,
		usecase: usecase,
	}
}

// Register creates a new account.
// POST /api/v1/users/register
func (h *UserHandler) Register(c echo.Context) error {
	logger := middleware.GetLogger(c)
	ctx := h.ctx

	var req users.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
	}

	result, err := h.usecase.Register(ctx, req)
	if err != nil {
		return writeUsecaseError(c, logger, err, "registration failed")
	}

	return response.Success(c, http.StatusCreated, "user_registered", result)
}

// Login exchanges credentials for an access token and a refresh token.
// POST /api/v1/users/login
func (h *UserHandler) Login(c echo.Context) error {
	logger := middleware.GetLogger(c)
	ctx := h.ctx

	var req users.LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
	}

	result, err := h.usecase.Login(ctx, req)
	if err != nil {
		return writeUsecaseError(c, logger, err, "login failed")
	}

	return response.Success(c, http.StatusOK, "login_successful", result)
}

// Logout revokes a refresh token.
// POST /api/v1/users/logout
func (h *UserHandler) Logout(c echo.Context) error {
	logger := middleware.GetLogger(c)
	ctx := h.ctx

	var req users.LogoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
	}

	if err := h.usecase.Logout(ctx, req.RefreshToken); err != nil {
		return writeUsecaseError(c, logger, err, "logout failed")
	}

	return response.Success(c, http.StatusOK, "logged_out", nil)
}

// Refresh issues a new access token for a valid refresh token.
// POST /api/v1/users/refresh
func (h *UserHandler) Refresh(c echo.Context) error {
	logger := middleware.GetLogger(c)
	ctx := h.ctx

	var req users.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid_request_body", err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
	}

	result, err := h.usecase.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return writeUsecaseError(c, logger, err, "token refresh failed")
	}

	return response.Success(c, http.StatusOK, "token_refreshed", result)
}

// GetMe serves the authenticated user's profile.
// GET /api/v1/users/me
func (h *UserHandler) GetMe(c echo.Context) error {
	logger := middleware.GetLogger(c)
	ctx := h.ctx

	extID, err := jwt.GetUserExtIDFromContext(c)
	if err != nil {
		return response.Error(c, http.StatusUnauthorized, "unauthorized", err.Error())
	}

	profile, err := h.usecase.GetProfile(ctx, extID)
	if err != nil {
		return writeUsecaseError(c, logger, err, "profile lookup failed")
	}

	return response.Success(c, http.StatusOK, "success", profile)
}

func writeUsecaseError(c echo.Context, logger *zerolog.Logger, err error, msg string) error {
	var apiErr *response.APIError
	if errors.As(err, &apiErr) {
		logger.Warn().Err(err).Msg(msg)
		return response.Error(c, apiErr.Code, apiErr.Message, apiErr.Details)
	}
	logger.Error().Err(err).Msg(msg)
	return response.Error(c, http.StatusInternalServerError, "internal_server_error", err.Error())
}
