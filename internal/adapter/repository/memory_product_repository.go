package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"gomarket/internal/domain/entity"
	"gomarket/internal/domain/repository"
	"gomarket/pkg/errors"
)

// MemoryProductRepository keeps the catalog in process memory. Used by
// tests and by local runs without Firestore credentials.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]*entity.Product),
	}
}

var _ repository.ProductRepository = (*MemoryProductRepository)(nil)

func (r *MemoryProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	stored := *product
	r.products[product.ID] = &stored
	return nil
}

func (r *MemoryProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}

	copied := *product
	return &copied, nil
}

func (r *MemoryProductRepository) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return errors.NotFound("Product", nil)
	}

	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	stored := *product
	r.products[product.ID] = &stored
	return nil
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}

	delete(r.products, id)
	return nil
}

func (r *MemoryProductRepository) Search(ctx context.Context, term string, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.RLock()
	matched := make([]*entity.Product, 0, len(r.products))
	for _, product := range r.products {
		if matchTitle(product.Title, term) {
			copied := *product
			matched = append(matched, &copied)
		}
	}
	r.mu.RUnlock()

	sortByCreation(matched)
	total := int64(len(matched))
	return paginate(matched, limit, offset), total, nil
}
