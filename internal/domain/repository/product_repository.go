package repository

import (
	"context"

	"gomarket/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// Search returns the contiguous slice [offset, offset+limit) of the
	// products whose title contains the term (case-insensitive; empty term
	// matches all), plus the total match count. Ordering is by creation
	// time then ID, so it is stable across pages of one query.
	Search(ctx context.Context, term string, limit, offset int) ([]*entity.Product, int64, error)
}
