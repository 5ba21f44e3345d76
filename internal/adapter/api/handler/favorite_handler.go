package handler

import (
	"github.com/labstack/echo/v4"

	"gomarket/internal/usecase"
	"gomarket/pkg/errors"
	"gomarket/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

type favoritesResponse struct {
	Favorites []string `json:"favorites"`
}

// AddFavorite is idempotent: re-adding a present product succeeds with
// the set unchanged, so client retries and double-submits are harmless.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	productID := c.Param("id")

	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	favorites, err := h.favoriteUseCase.AddFavorite(c.Request().Context(), userID, productID, originSession(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favoritesResponse{Favorites: favorites})
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	productID := c.Param("id")

	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	favorites, err := h.favoriteUseCase.RemoveFavorite(c.Request().Context(), userID, productID, originSession(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favoritesResponse{Favorites: favorites})
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID := c.Get("uid").(string)

	favorites, err := h.favoriteUseCase.GetFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favoritesResponse{Favorites: favorites})
}

func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	productID := c.Param("id")

	isFavorite, err := h.favoriteUseCase.IsFavorite(c.Request().Context(), userID, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"product_id":  productID,
		"is_favorite": isFavorite,
	})
}

// originSession identifies the mutating session so the favorites push
// skips it.
func originSession(c echo.Context) string {
	return c.Request().Header.Get("X-Session-ID")
}
