package usecase

import (
	"context"

	"gomarket/internal/domain/entity"
	"gomarket/internal/domain/repository"
	"gomarket/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

type ProductInput struct {
	Title       string
	Description string
	Price       float64
	Image       string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error) {
	if input.Title == "" {
		return nil, errors.BadRequest("Title is required", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must not be negative", nil)
	}

	product := &entity.Product{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct applies a partial update: zero-valued fields keep the
// stored value.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must not be negative", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		product.Title = input.Title
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price != 0 {
		product.Price = input.Price
	}
	if input.Image != "" {
		product.Image = input.Image
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	if id == "" {
		return nil, errors.BadRequest("Product ID is required", nil)
	}
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.productRepo.Delete(ctx, id)
}

// ListProducts resolves one catalog page. A page past the end is a valid
// empty result with the real totalPages, never an error.
func (uc *ProductUseCase) ListProducts(ctx context.Context, query entity.ListingQuery) (*entity.ListingPage, error) {
	if query.Page < 1 {
		return nil, errors.BadRequest("Page must be 1 or greater", nil)
	}
	if query.Limit < 1 {
		return nil, errors.BadRequest("Page size must be positive", nil)
	}

	offset := (query.Page - 1) * query.Limit
	items, total, err := uc.productRepo.Search(ctx, query.Search, query.Limit, offset)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return &entity.ListingPage{
		Items:       items,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: query.Page,
	}, nil
}
