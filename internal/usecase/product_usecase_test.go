package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomarket/internal/adapter/repository"
	"gomarket/internal/domain/entity"
	apperrors "gomarket/pkg/errors"
)

func seedCatalog(t *testing.T, repo *repository.MemoryProductRepository, titles []string) {
	t.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range titles {
		err := repo.Create(context.Background(), &entity.Product{
			ID:        fmt.Sprintf("p%03d", i),
			Title:     title,
			Price:     10.0,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}
}

func phoneCatalog(t *testing.T) *repository.MemoryProductRepository {
	t.Helper()
	repo := repository.NewMemoryProductRepository()
	titles := make([]string, 0, 30)
	for i := 0; i < 25; i++ {
		titles = append(titles, fmt.Sprintf("Phone Model %d", i))
	}
	for i := 0; i < 5; i++ {
		titles = append(titles, fmt.Sprintf("Laptop Model %d", i))
	}
	seedCatalog(t, repo, titles)
	return repo
}

func TestListProductsPagination(t *testing.T) {
	uc := NewProductUseCase(phoneCatalog(t))

	page, err := uc.ListProducts(context.Background(), entity.ListingQuery{
		Search: "phone",
		Page:   1,
		Limit:  10,
	})
	require.NoError(t, err)

	assert.Len(t, page.Items, 10)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestListProductsLastPartialPage(t *testing.T) {
	uc := NewProductUseCase(phoneCatalog(t))

	page, err := uc.ListProducts(context.Background(), entity.ListingQuery{
		Search: "phone",
		Page:   3,
		Limit:  10,
	})
	require.NoError(t, err)

	assert.Len(t, page.Items, 5)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.CurrentPage)
}

func TestListProductsPageBeyondEnd(t *testing.T) {
	uc := NewProductUseCase(phoneCatalog(t))

	page, err := uc.ListProducts(context.Background(), entity.ListingQuery{
		Search: "phone",
		Page:   4,
		Limit:  10,
	})
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 4, page.CurrentPage)
}

func TestListProductsCaseInsensitiveMatch(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	seedCatalog(t, repo, []string{"Wireless HEADPHONES", "USB-C Cable", "headphone stand"})
	uc := NewProductUseCase(repo)

	page, err := uc.ListProducts(context.Background(), entity.ListingQuery{
		Search: "HeAdPhOnE",
		Page:   1,
		Limit:  10,
	})
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
}

func TestListProductsEmptyTermMatchesAll(t *testing.T) {
	uc := NewProductUseCase(phoneCatalog(t))

	page, err := uc.ListProducts(context.Background(), entity.ListingQuery{
		Page:  1,
		Limit: 100,
	})
	require.NoError(t, err)

	assert.Len(t, page.Items, 30)
	assert.Equal(t, 1, page.TotalPages)
}

func TestListProductsEmptyCatalog(t *testing.T) {
	uc := NewProductUseCase(repository.NewMemoryProductRepository())

	page, err := uc.ListProducts(context.Background(), entity.ListingQuery{
		Page:  1,
		Limit: 10,
	})
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, int64(0), page.Total)
}

// Walking all pages of one query must visit every match exactly once;
// the ordering key is creation time, so pages never skip or repeat.
func TestListProductsStableOrderAcrossPages(t *testing.T) {
	uc := NewProductUseCase(phoneCatalog(t))

	seen := make(map[string]int)
	for pageNum := 1; pageNum <= 3; pageNum++ {
		page, err := uc.ListProducts(context.Background(), entity.ListingQuery{
			Search: "phone",
			Page:   pageNum,
			Limit:  10,
		})
		require.NoError(t, err)
		for _, product := range page.Items {
			seen[product.ID]++
		}
	}

	assert.Len(t, seen, 25)
	for id, count := range seen {
		assert.Equalf(t, 1, count, "product %s appeared %d times", id, count)
	}
}

func TestListProductsRejectsBadPaging(t *testing.T) {
	uc := NewProductUseCase(phoneCatalog(t))

	_, err := uc.ListProducts(context.Background(), entity.ListingQuery{Page: 0, Limit: 10})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	_, err = uc.ListProducts(context.Background(), entity.ListingQuery{Page: 1, Limit: 0})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	_, err = uc.ListProducts(context.Background(), entity.ListingQuery{Page: 1, Limit: -5})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func TestCreateProductValidation(t *testing.T) {
	uc := NewProductUseCase(repository.NewMemoryProductRepository())

	_, err := uc.CreateProduct(context.Background(), ProductInput{Title: "", Price: 10})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	_, err = uc.CreateProduct(context.Background(), ProductInput{Title: "Cable", Price: -1})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func TestUpdateProductKeepsUnsetFields(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	uc := NewProductUseCase(repo)

	created, err := uc.CreateProduct(context.Background(), ProductInput{
		Title:       "Speaker",
		Description: "Bluetooth speaker",
		Price:       49.99,
		Image:       "speaker.jpg",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(context.Background(), created.ID, ProductInput{Price: 39.99})
	require.NoError(t, err)

	assert.Equal(t, "Speaker", updated.Title)
	assert.Equal(t, "Bluetooth speaker", updated.Description)
	assert.Equal(t, 39.99, updated.Price)
	assert.Equal(t, "speaker.jpg", updated.Image)
}

func TestDeleteProductThenGet(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	uc := NewProductUseCase(repo)

	created, err := uc.CreateProduct(context.Background(), ProductInput{Title: "Stand", Price: 34.99})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(context.Background(), created.ID))

	_, err = uc.GetProductByID(context.Background(), created.ID)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))

	err = uc.DeleteProduct(context.Background(), created.ID)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}
