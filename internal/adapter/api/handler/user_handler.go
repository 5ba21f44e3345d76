package handler

import (
	"github.com/labstack/echo/v4"

	"gomarket/internal/usecase"
	"gomarket/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// GetMe returns the caller's profile with the current favorite set. The
// client seeds its local favorite view from this on session start.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID := c.Get("uid").(string)

	profile, err := h.userUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

type updateProfileRequest struct {
	Username string `json:"username" validate:"omitempty,min=3"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), userID, req.Username)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
