package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarket/internal/adapter/repository"
	"gomarket/internal/domain/entity"
	"gomarket/internal/usecase"
	apperrors "gomarket/pkg/errors"
)

type listingBody struct {
	Success bool `json:"success"`
	Data    struct {
		Items       []json.RawMessage `json:"items"`
		Total       int64             `json:"total"`
		CurrentPage int               `json:"currentPage"`
		PageSize    int               `json:"pageSize"`
		TotalPages  int               `json:"totalPages"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type favoritesBody struct {
	Success bool `json:"success"`
	Data    struct {
		Favorites []string `json:"favorites"`
	} `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func seededProductHandler(t *testing.T, titles []string) *ProductHandler {
	t.Helper()
	repo := repository.NewMemoryProductRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range titles {
		require.NoError(t, repo.Create(context.Background(), &entity.Product{
			ID:        fmt.Sprintf("p%03d", i),
			Title:     title,
			Price:     20,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	return NewProductHandler(usecase.NewProductUseCase(repo))
}

func phoneTitles(matching, other int) []string {
	titles := make([]string, 0, matching+other)
	for i := 0; i < matching; i++ {
		titles = append(titles, fmt.Sprintf("Smartphone %d", i))
	}
	for i := 0; i < other; i++ {
		titles = append(titles, fmt.Sprintf("Keyboard %d", i))
	}
	return titles
}

func listRequest(t *testing.T, h *ProductHandler, rawQuery string) (*httptest.ResponseRecorder, listingBody) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/products?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProducts(c))

	var body listingBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestListProductsHandlerPaginates(t *testing.T) {
	h := seededProductHandler(t, phoneTitles(25, 5))

	rec, body := listRequest(t, h, "search=phone&page=1&limit=10")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Len(t, body.Data.Items, 10)
	assert.Equal(t, int64(25), body.Data.Total)
	assert.Equal(t, 3, body.Data.TotalPages)
	assert.Equal(t, 1, body.Data.CurrentPage)
	assert.Equal(t, 10, body.Data.PageSize)
}

func TestListProductsHandlerPastEndPage(t *testing.T) {
	h := seededProductHandler(t, phoneTitles(25, 5))

	rec, body := listRequest(t, h, "search=phone&page=4&limit=10")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Empty(t, body.Data.Items)
	assert.Equal(t, 3, body.Data.TotalPages)
	assert.Equal(t, 4, body.Data.CurrentPage)
}

func TestListProductsHandlerDefaultsAbsentParams(t *testing.T) {
	h := seededProductHandler(t, phoneTitles(25, 5))

	rec, body := listRequest(t, h, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body.Data.Items, 10)
	assert.Equal(t, int64(30), body.Data.Total)
	assert.Equal(t, 1, body.Data.CurrentPage)
}

func TestListProductsHandlerRejectsBadPaging(t *testing.T) {
	h := seededProductHandler(t, phoneTitles(5, 0))

	rec, body := listRequest(t, h, "page=0&limit=10")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)

	rec, body = listRequest(t, h, "page=1&limit=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}

func favoriteFixture(t *testing.T) (*FavoriteHandler, *repository.MemoryFavoriteRepository) {
	t.Helper()
	productRepo := repository.NewMemoryProductRepository()
	require.NoError(t, productRepo.Create(context.Background(), &entity.Product{
		ID:    "prod-1",
		Title: "Desk Lamp",
		Price: 24.99,
	}))
	favoriteRepo := repository.NewMemoryFavoriteRepository()
	uc := usecase.NewFavoriteUseCase(favoriteRepo, productRepo, nil)
	return NewFavoriteHandler(uc), favoriteRepo
}

func favoriteRequest(t *testing.T, h func(echo.Context) error, method, productID string) (*httptest.ResponseRecorder, favoritesBody) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/v1/products/"+productID+"/favorite", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/products/:id/favorite")
	c.SetParamNames("id")
	c.SetParamValues(productID)
	c.Set("uid", "user-1")

	require.NoError(t, h(c))

	var body favoritesBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestAddFavoriteHandlerIdempotent(t *testing.T) {
	h, _ := favoriteFixture(t)

	rec, body := favoriteRequest(t, h.AddFavorite, http.MethodPost, "prod-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"prod-1"}, body.Data.Favorites)

	rec, body = favoriteRequest(t, h.AddFavorite, http.MethodPost, "prod-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"prod-1"}, body.Data.Favorites)
}

func TestRemoveFavoriteHandlerIdempotent(t *testing.T) {
	h, _ := favoriteFixture(t)

	_, _ = favoriteRequest(t, h.AddFavorite, http.MethodPost, "prod-1")

	rec, body := favoriteRequest(t, h.RemoveFavorite, http.MethodDelete, "prod-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body.Data.Favorites)

	rec, body = favoriteRequest(t, h.RemoveFavorite, http.MethodDelete, "prod-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body.Data.Favorites)
}

func TestAddFavoriteHandlerUnknownProduct(t *testing.T) {
	h, _ := favoriteFixture(t)

	rec, body := favoriteRequest(t, h.AddFavorite, http.MethodPost, "missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestFavoriteHandlerStoreOutage(t *testing.T) {
	h, favoriteRepo := favoriteFixture(t)
	favoriteRepo.Unavailable = apperrors.Unavailable("favorite store unreachable", nil)

	rec, body := favoriteRequest(t, h.AddFavorite, http.MethodPost, "prod-1")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "STORE_UNAVAILABLE", body.Error.Code)
}
