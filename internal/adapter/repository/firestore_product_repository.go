package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"gomarket/internal/domain/entity"
	"gomarket/internal/domain/repository"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return mapStoreError("Product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		return nil, mapStoreError("Product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, mapStoreError("Product", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return mapStoreError("Product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return mapStoreError("Product", err)
	}

	return nil
}

// Search fetches a creation-ordered snapshot and filters titles in memory.
// Firestore has no case-insensitive contains query, so matching happens
// client-side over one consistent snapshot; the snapshot also keeps the
// ordering stable between pages even while the collection is mutated.
func (r *firestoreProductRepository) Search(ctx context.Context, term string, limit, offset int) ([]*entity.Product, int64, error) {
	query := r.client.Collection("products").
		OrderBy("createdAt", firestore.Asc).
		OrderBy("id", firestore.Asc)

	iter := query.Documents(ctx)
	var matched []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, mapStoreError("Product", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			continue
		}
		if matchTitle(product.Title, term) {
			matched = append(matched, &product)
		}
	}

	total := int64(len(matched))
	return paginate(matched, limit, offset), total, nil
}
